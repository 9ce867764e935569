// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// ListOptions controls which relations List embeds.
type ListOptions struct {
	// IncludeTags attaches each article's tags. The listing page leaves it
	// off; the JSON API turns it on.
	IncludeTags bool
}

// Repository is the read-only view of the content store. It has one method
// per access pattern.
type Repository interface {
	// FindBySlug returns the article with the given slug, with author,
	// category and tags attached. It returns (nil, nil) when no row matches.
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)

	// List returns every article with author and category attached,
	// newest first by creation time.
	List(ctx context.Context, opts ListOptions) ([]models.Article, error)

	// ListRelated returns up to limit articles in categoryID, excluding
	// excludeID.
	ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]models.Article, error)

	// ListSlugs returns the slug of every article.
	ListSlugs(ctx context.Context) ([]string, error)
}
