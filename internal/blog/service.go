// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog implements article retrieval on top of a Repository and the
// pure listing filters used by the blog pages.
package blog

import (
	"context"
	"log/slog"

	"devfolio/internal/models"
	"devfolio/internal/slug"
)

// DefaultRelatedLimit is how many related articles a detail page shows.
const DefaultRelatedLimit = 3

// Service answers the blog's read queries. Every call goes to the
// repository; nothing is cached and failures are not retried.
type Service struct {
	repo Repository
}

// NewService creates a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ArticleBySlug returns one article with its author, category and tags.
// A missing row, a malformed slug and a store failure all yield an error
// matching ErrNotFound; store failures also match *StoreError.
func (s *Service) ArticleBySlug(ctx context.Context, articleSlug string) (*models.Article, error) {
	if !slug.Valid(articleSlug) {
		return nil, ErrNotFound
	}

	article, err := s.repo.FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, unavailable("find article by slug", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// ListArticles returns all articles, newest first, with author and category
// attached. On failure it returns an empty, non-nil slice together with a
// *StoreError, so an empty result must not be read as success without
// checking the error.
func (s *Service) ListArticles(ctx context.Context, opts ListOptions) ([]models.Article, error) {
	articles, err := s.repo.List(ctx, opts)
	if err != nil {
		return []models.Article{}, &StoreError{Op: "list articles", Err: err}
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

// RelatedArticles returns up to limit other articles from the same
// category. Lookup failures are logged and produce an empty result.
func (s *Service) RelatedArticles(ctx context.Context, article *models.Article, limit int) []models.Article {
	if article == nil || article.Category == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related, err := s.repo.ListRelated(ctx, article.CategoryID, article.ID, limit)
	if err != nil {
		slog.Warn("related articles lookup failed", "slug", article.Slug, "error", err)
		return nil
	}
	return related
}

// Slugs returns every article slug.
func (s *Service) Slugs(ctx context.Context) ([]string, error) {
	slugs, err := s.repo.ListSlugs(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list slugs", Err: err}
	}
	return slugs, nil
}
