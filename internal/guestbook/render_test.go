package guestbook

import (
	"html"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/portfolio/internal/model"
)

func TestHTMLRendererDateKeepsOffsetSign(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{name: "utc", loc: time.UTC, want: "Tue Nov 14 2023 22:13:20 GMT+0000 (UTC)"},
		{name: "half hour east", loc: time.FixedZone("IST", 5*3600+1800), want: "Wed Nov 15 2023 03:43:20 GMT+0530 (IST)"},
		{name: "west", loc: time.FixedZone("EST", -5*3600), want: "Tue Nov 14 2023 17:13:20 GMT-0500 (EST)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewHTMLRenderer(tt.loc).Comment(model.Comment{Name: "Ann", Mood: 90, Timestamp: 1700000000000})
			assert.Contains(t, out, "<h5>"+tt.want+"</h5>")
			assert.NotContains(t, out, "&#43;")
			assert.Contains(t, html.UnescapeString(out), tt.want)
		})
	}
}

func TestHTMLRendererEscapesCommentFields(t *testing.T) {
	out := NewHTMLRenderer(time.UTC).Comment(model.Comment{
		Name: "<b>Ann</b>",
		Mood: 50,
		Text: `<script>alert("x")</script>`,
	})
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.Contains(t, html.UnescapeString(out), `<script>alert("x")</script>`)
}
