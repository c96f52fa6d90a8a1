package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// templateSet holds the parsed layout plus one clone per page so each page
// can define its own "content" block.
type templateSet struct {
	pages map[string]*template.Template
	frags *template.Template
}

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on every request.
	devMode   bool
	tmplCache *templateSet
)

func parseTemplates() (*templateSet, error) {
	funcMap := template.FuncMap{
		"now":  time.Now,
		"add1": func(i int) int { return i + 1 },
	}

	collect := func(dir string) ([]string, error) {
		var files []string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
				files = append(files, path)
			}
			return nil
		})
		return files, err
	}

	layout, err := collect(filepath.Join(templatesDir, "layout"))
	if err != nil {
		return nil, err
	}
	fragFiles, err := collect(filepath.Join(templatesDir, "fragments"))
	if err != nil {
		return nil, err
	}
	pageFiles, err := collect(filepath.Join(templatesDir, "pages"))
	if err != nil {
		return nil, err
	}
	if len(layout) == 0 || len(pageFiles) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}

	root, err := template.New("_root").Funcs(funcMap).ParseFiles(append(layout, fragFiles...)...)
	if err != nil {
		return nil, err
	}

	ts := &templateSet{pages: make(map[string]*template.Template), frags: root}
	for _, pf := range pageFiles {
		name := strings.TrimSuffix(filepath.Base(pf), ".tmpl")
		clone, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(pf); err != nil {
			return nil, err
		}
		ts.pages[name] = clone
	}
	return ts, nil
}

func templates(w http.ResponseWriter) *templateSet {
	if devMode {
		ts, err := parseTemplates()
		if err != nil {
			logger.Error("template parse", zap.Error(err))
			http.Error(w, "template parse error", http.StatusInternalServerError)
			return nil
		}
		return ts
	}
	if tmplCache == nil {
		http.Error(w, "templates not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes the base layout with the named page's content block.
func renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	ts := templates(w)
	if ts == nil {
		return
	}
	t, ok := ts.pages[page]
	if !ok {
		logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		logger.Error("template exec", zap.String("page", page), zap.Error(err))
	}
}

// renderTemplate executes a named fragment, used for htmx partial swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	ts := templates(w)
	if ts == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ts.frags.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("template exec", zap.String("fragment", name), zap.Error(err))
	}
}
