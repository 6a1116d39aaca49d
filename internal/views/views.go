package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Load parses the embedded page templates. Each page is addressable by its
// file name, e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
