// Package web holds the server-rendered pages and their static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.html"

var funcs = template.FuncMap{
	"inc":        func(i int) int { return i + 1 },
	"join":       strings.Join,
	"pathEscape": url.PathEscape,
}

// Templates renders pages inside the shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses every page in templates/ against the layout. Page
// names are the file names without extension.
func LoadTemplates() (*Templates, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[name] = t
	}
	return &Templates{pages: pages}, nil
}

func MustLoadTemplates() *Templates {
	t, err := LoadTemplates()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Templates) Render(w io.Writer, name string, data any) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
