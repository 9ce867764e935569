// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"devfolio/internal/blog"
	"devfolio/internal/cache"
	"devfolio/internal/markdown"
	"devfolio/internal/models"
	"devfolio/internal/storage"
)

// Content is what the HTML pages and the JSON API share for presenting
// articles. Renders and Storage may be nil.
type Content struct {
	Blog    *blog.Service
	Renders *cache.RenderCache
	Storage *storage.Client
	SiteURL string
}

// articleDetail is an article prepared for its detail view.
type articleDetail struct {
	HTML    string
	TOC     []markdown.Heading
	Share   blog.ShareLinks
	Related []models.Article
}

// resolveImages rewrites featured_image storage keys to public URLs.
func (c *Content) resolveImages(articles []models.Article) {
	for i := range articles {
		articles[i].FeaturedImage = c.Storage.ResolveImage(articles[i].FeaturedImage)
	}
}

// detail renders the article body (through the render cache) and gathers
// its table of contents, share links and related articles.
func (c *Content) detail(ctx context.Context, a *models.Article) (*articleDetail, error) {
	html, err := c.Renders.GetOrRender(ctx, cache.ArticleKey(a.ID, a.UpdatedAt), func() (string, error) {
		return markdown.ToHTML(a.Content)
	})
	if err != nil {
		return nil, fmt.Errorf("render article %s: %w", a.Slug, err)
	}

	related := c.Blog.RelatedArticles(ctx, a, blog.DefaultRelatedLimit)
	if related == nil {
		related = []models.Article{}
	}
	c.resolveImages(related)
	a.FeaturedImage = c.Storage.ResolveImage(a.FeaturedImage)

	toc := markdown.Headings(a.Content)
	if toc == nil {
		toc = []markdown.Heading{}
	}

	return &articleDetail{
		HTML:    html,
		TOC:     toc,
		Share:   blog.ShareLinksFor(c.SiteURL, a.Slug, a.Title),
		Related: related,
	}, nil
}

// writeJSON serialises data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError sends {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
