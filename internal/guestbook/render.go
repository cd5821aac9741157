package guestbook

import (
	"bytes"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/model"
)

// EmptyMessage is shown in place of the list when there are no comments.
const EmptyMessage = "No comments to show : ("

// DateLayout formats comment timestamps the way browsers print a Date.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Renderer turns comments and moods into region content.
type Renderer interface {
	Comment(c model.Comment) string
	Empty() string
	Gauge(mood int) string
	Feedback(mood int) string
}

// FormatMood prints a mood without trailing zeros.
func FormatMood(mood float64) string {
	return strconv.FormatFloat(mood, 'f', -1, 64)
}

var htmlTemplates = template.Must(template.New("guestbook").Parse(`
{{define "comment"}}<li class="comment" style="border: 1px solid black; margin: 0.5%;">
  <h4>{{.Name}}</h4>
  <h5>Mood: <span style="color: {{.Color}}">{{.Mood}}</span>/100</h5>
  <h5>{{.Date}}</h5>
  <p>{{.Text}}</p>
</li>{{end}}
{{define "empty"}}<p>{{.}}</p>{{end}}
{{define "feedback"}}Average mood is <span style="color: {{.Color}}">{{.Mood}}</span>{{.Message}}{{end}}
{{define "gauge"}}<svg class="gauge" viewBox="0 0 200 120" width="100%" height="100%" role="img" aria-label="Mood {{.Mood}}">
  <path d="{{.Track}}" fill="none" stroke="#e6e6e6" stroke-width="16"/>
  <path d="{{.Green}}" fill="none" stroke="#109618" stroke-width="16"/>
  <line x1="100" y1="100" x2="{{.NeedleX}}" y2="{{.NeedleY}}" stroke="#dc3912" stroke-width="3"/>
  <circle cx="100" cy="100" r="6" fill="#4684ee"/>
  <text x="100" y="118" text-anchor="middle">{{.Mood}}</text>
</svg>{{end}}
`))

// HTMLRenderer renders escaped HTML fragments.
type HTMLRenderer struct {
	Location *time.Location
}

// NewHTMLRenderer creates a renderer printing dates in loc (local time if nil).
func NewHTMLRenderer(loc *time.Location) *HTMLRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &HTMLRenderer{Location: loc}
}

func (r *HTMLRenderer) Comment(c model.Comment) string {
	return r.exec("comment", map[string]any{
		"Name":  DisplayName(c),
		"Color": TierFor(c.Mood).Color(),
		"Mood":  FormatMood(c.Mood),
		"Date":  preEscaped(c.Time().In(r.location()).Format(DateLayout)),
		"Text":  c.Text,
	})
}

func (r *HTMLRenderer) Empty() string {
	return r.exec("empty", EmptyMessage)
}

func (r *HTMLRenderer) Feedback(mood int) string {
	tier := TierFor(float64(mood))
	return r.exec("feedback", map[string]any{
		"Color":   tier.Color(),
		"Mood":    mood,
		"Message": tier.Message(),
	})
}

func (r *HTMLRenderer) Gauge(mood int) string {
	const cx, cy, radius = 100.0, 100.0, 80.0
	nx, ny := gaugePoint(cx, cy, radius-10, float64(mood))
	return r.exec("gauge", map[string]any{
		"Mood":    mood,
		"Track":   arcPath(cx, cy, radius, 0, GaugeMax),
		"Green":   arcPath(cx, cy, radius, GreenFrom, GaugeMax),
		"NeedleX": fmtCoord(nx),
		"NeedleY": fmtCoord(ny),
	})
}

// preEscaped escapes only the HTML metacharacters, so zone offsets keep a
// literal "+" instead of html/template's &#43;.
func preEscaped(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func (r *HTMLRenderer) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r *HTMLRenderer) exec(name string, data any) string {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		// Templates are fixed at init; a failure here is a programming error.
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// gaugePoint maps a value on the 0..GaugeMax scale onto the upper half circle.
func gaugePoint(cx, cy, radius, value float64) (float64, float64) {
	value = math.Max(0, math.Min(GaugeMax, value))
	theta := math.Pi * (1 - value/GaugeMax)
	return cx + radius*math.Cos(theta), cy - radius*math.Sin(theta)
}

func arcPath(cx, cy, radius, from, to float64) string {
	x1, y1 := gaugePoint(cx, cy, radius, from)
	x2, y2 := gaugePoint(cx, cy, radius, to)
	r := fmtCoord(radius)
	return "M " + fmtCoord(x1) + " " + fmtCoord(y1) + " A " + r + " " + r + " 0 0 1 " + fmtCoord(x2) + " " + fmtCoord(y2)
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
