// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public blog.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"devfolio/internal/blog"
	"devfolio/internal/markdown"
	"devfolio/internal/models"
)

//go:embed templates/blog/*.html
var blogFS embed.FS

// PageData holds all data passed to blog templates.
type PageData struct {
	Title       string // Page title for <title> tag
	Description string // meta description
	Canonical   string // absolute URL of the page, empty to omit
	Data        any    // page-specific view
}

// IndexView is the data of the blog listing page.
type IndexView struct {
	Listing     blog.Listing
	Unavailable bool // the store could not be read
}

// ArticleView is the data of an article detail page.
type ArticleView struct {
	Article *models.Article
	HTML    template.HTML
	TOC     []markdown.Heading
	Share   blog.ShareLinks
	Related []models.Article
}

// Renderer handles template parsing and execution for blog pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// pages lists the page templates; each is paired with base.html.
var pages = []string{"index", "article", "not_found"}

// New creates a Renderer by parsing the blog templates from the embedded
// filesystem. When devMode is true, pages ask crawlers not to index them.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"date": func(t time.Time) string {
				return t.Format("January 2, 2006")
			},
			"isoDate": func(t time.Time) string {
				return t.Format(time.RFC3339)
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			"isDev": func() bool {
				return devMode
			},
			// initial returns the uppercased first letter of a name, for
			// avatar fallbacks.
			"initial": func(name string) string {
				r, _ := utf8.DecodeRuneInString(name)
				if r == utf8.RuneError {
					return "?"
				}
				return string(unicode.ToUpper(r))
			},
			"filterURL": FilterURL,
			"uncategorized": func() string {
				return blog.Uncategorized
			},
			"tocIndent": func(level int) string {
				if level > 2 {
					return "toc-nested"
				}
				return ""
			},
		},
	}

	for _, name := range pages {
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			blogFS, "templates/blog/base.html", "templates/blog/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Page renders a full blog page or, for HTMX requests, only its "content"
// block. The output is buffered so a template error yields a clean 500.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	execName := "base.html"
	if isHTMX(r) {
		execName = "content"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		slog.Error("template execution failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// FilterURL returns the listing URL for a category and search query.
// "All" and empty values are omitted.
func FilterURL(category, query string) string {
	v := url.Values{}
	if category != "" && category != blog.AllCategories {
		v.Set("category", category)
	}
	if q := strings.TrimSpace(query); q != "" {
		v.Set("q", q)
	}
	if len(v) == 0 {
		return "/blog"
	}
	return "/blog?" + v.Encode()
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
