// Package web embeds the public site's templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/bhagyamlottery/agency-backend/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// LayoutTemplate wraps every page's rendered content
const LayoutTemplate = "layout.html"

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"displayDate": utils.DisplayDate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the embedded assets rooted at the static directory
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
