// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blogtest provides an in-memory blog.Repository for tests.
package blogtest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"devfolio/internal/blog"
	"devfolio/internal/models"
)

// MemoryRepository is a blog.Repository over a fixed set of articles.
// Setting Err makes every method fail with it.
type MemoryRepository struct {
	mu       sync.Mutex
	articles []models.Article
	Err      error
	Calls    int
}

// NewMemoryRepository returns a repository seeded with articles.
func NewMemoryRepository(articles ...models.Article) *MemoryRepository {
	return &MemoryRepository{articles: articles}
}

func (m *MemoryRepository) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return m.Err
}

// FindBySlug implements blog.Repository.
func (m *MemoryRepository) FindBySlug(_ context.Context, slug string) (*models.Article, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	for _, a := range m.articles {
		if a.Slug == slug {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// List implements blog.Repository. Articles come back newest first.
func (m *MemoryRepository) List(_ context.Context, opts blog.ListOptions) ([]models.Article, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	out := make([]models.Article, len(m.articles))
	copy(out, m.articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if !opts.IncludeTags {
		for i := range out {
			out[i].Tags = nil
		}
	}
	return out, nil
}

// ListRelated implements blog.Repository.
func (m *MemoryRepository) ListRelated(_ context.Context, categoryID, excludeID uuid.UUID, limit int) ([]models.Article, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	var out []models.Article
	for _, a := range m.articles {
		if a.CategoryID != categoryID || a.ID == excludeID {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListSlugs implements blog.Repository.
func (m *MemoryRepository) ListSlugs(_ context.Context) ([]string, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(m.articles))
	for _, a := range m.articles {
		slugs = append(slugs, a.Slug)
	}
	return slugs, nil
}
