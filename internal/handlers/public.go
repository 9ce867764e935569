// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/blog"
	"devfolio/internal/feed"
	"devfolio/internal/render"
)

// Public groups handlers for the server-rendered blog pages, the RSS feed
// and the sitemap.
type Public struct {
	*Content
	renderer *render.Renderer
	feedCfg  feed.Config
}

// NewPublic creates a new Public handler group.
func NewPublic(content *Content, renderer *render.Renderer, feedCfg feed.Config) *Public {
	return &Public{Content: content, renderer: renderer, feedCfg: feedCfg}
}

// BlogIndex renders the listing page. The "category" and "q" query
// parameters narrow the visible articles. If the store cannot be read the
// page still renders, empty, with a notice.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	articles, err := p.Blog.ListArticles(r.Context(), blog.ListOptions{})
	if err != nil {
		slog.Error("list articles failed", "error", err)
	}
	p.resolveImages(articles)

	listing := blog.BuildListing(articles, q.Get("category"), strings.TrimSpace(q.Get("q")))
	p.renderer.Page(w, r, http.StatusOK, "index", &render.PageData{
		Title:       "Blog | " + p.feedCfg.Title,
		Description: p.feedCfg.Description,
		Canonical:   strings.TrimRight(p.SiteURL, "/") + "/blog",
		Data:        &render.IndexView{Listing: listing, Unavailable: err != nil},
	})
}

// Article renders one article. A missing article and a failed lookup both
// render the not-found page.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	a, err := p.Blog.ArticleBySlug(ctx, slugParam)
	if err != nil {
		var storeErr *blog.StoreError
		if errors.As(err, &storeErr) {
			slog.Error("find article failed", "slug", slugParam, "error", err)
		}
		p.NotFound(w, r)
		return
	}

	d, err := p.detail(ctx, a)
	if err != nil {
		slog.Error("render article failed", "slug", slugParam, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderer.Page(w, r, http.StatusOK, "article", &render.PageData{
		Title:       a.Title + " | " + p.feedCfg.Title,
		Description: a.Excerpt,
		Canonical:   d.Share.URL,
		Data: &render.ArticleView{
			Article: a,
			HTML:    template.HTML(d.HTML), // sanitised by markdown.ToHTML
			TOC:     d.TOC,
			Share:   d.Share,
			Related: d.Related,
		},
	})
}

// NotFound renders the not-found page with a 404 status.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, r, http.StatusNotFound, "not_found", &render.PageData{
		Title: "Article Not Found | " + p.feedCfg.Title,
	})
}

// RSS serves the RSS 2.0 feed of all articles.
func (p *Public) RSS(w http.ResponseWriter, r *http.Request) {
	articles, err := p.Blog.ListArticles(r.Context(), blog.ListOptions{})
	if err != nil {
		slog.Error("rss: list articles failed", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	out, err := feed.RSS(p.feedCfg, articles, time.Now())
	if err != nil {
		slog.Error("rss: generate failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write([]byte(out))
}

// Sitemap serves a sitemap of the blog index and every article.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	slugs, err := p.Blog.Slugs(r.Context())
	if err != nil {
		slog.Error("sitemap: list slugs failed", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	out, err := feed.Sitemap(p.SiteURL, slugs)
	if err != nil {
		slog.Error("sitemap: generate failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(out)
}
