package web

import (
	"embed"
	"html/template"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}
