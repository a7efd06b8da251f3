// Package web embeds the map page served at the root path.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// IndexTemplate is the name of the map page template.
const IndexTemplate = "index.html"

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
