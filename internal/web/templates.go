// Package web holds the server-side HTML templates of the catalog pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap is available to every template.
//
// raw marks a value as safe markup. Text fields go through the form
// sanitizer before they are stored, so printing them through the regular
// escaper would escape them a second time.
var FuncMap = template.FuncMap{
	"raw": func(s string) template.HTML {
		return template.HTML(s)
	},
}

// Templates parses every embedded page. Pages are looked up by the name of
// their define block, e.g. "author_list" or "error".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("catalog").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
