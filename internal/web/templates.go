package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// templates holds one parsed template per page, each sharing the layout.
type templates struct {
	pages map[string]*template.Template
}

func loadTemplates() (*templates, error) {
	funcMap := template.FuncMap{
		// "2024-01-15" -> "Monday, January 15, 2024"; unparseable input is
		// shown as-is rather than dropped.
		"formatDate": func(date string) string {
			t, err := time.Parse("2006-01-02", date)
			if err != nil {
				return date
			}
			return t.Format("Monday, January 2, 2006")
		},
		"formatTimestamp": func(ts string) string {
			t, err := time.Parse("2006-01-02T15:04:05", ts)
			if err != nil {
				return ts
			}
			return t.Format("January 2, 2006 3:04 PM")
		},
		"derefInt": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		"derefFloat": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"notNilInt": func(p *int) bool { return p != nil },
		"notNilFloat": func(p *float64) bool {
			return p != nil
		},
		"dash": func(p *string) string {
			if p == nil || *p == "" {
				return "-"
			}
			return *p
		},
		"lower":      strings.ToLower,
		"capitalize": capitalize,
	}

	base, err := template.New("base").Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	pageFiles, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob page templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, f := range pageFiles {
		name := filepath.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base template: %w", err)
		}
		if _, err := clone.ParseFS(templatesFS, f); err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &templates{pages: pages}, nil
}

func (t *templates) render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 32
	}
	return string(r)
}
