package content

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders without html.WithUnsafe so raw HTML in copy is dropped.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown renders page copy to HTML. Rendering errors fall back to the
// escaped source text.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
