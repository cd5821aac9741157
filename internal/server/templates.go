package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"markdown": content.Markdown,
		"formatMillis": func(ms int64) string {
			return time.UnixMilli(ms).Format("2006-01-02 15:04")
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
