// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the blog entities read from the content store.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderImage is served when an article has no featured image.
const PlaceholderImage = "/static/img/placeholder.svg"

// Article is a blog post with its embedded relations. Author and Category
// are nil when the referenced row is missing; Tags is only populated by
// queries that ask for it.
type Article struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image"`
	AuthorID      uuid.UUID `json:"author_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ReadingTime   int       `json:"reading_time"`
	IsFeatured    bool      `json:"is_featured"`

	Author   *Author      `json:"author,omitempty"`
	Category *Category    `json:"category,omitempty"`
	Tags     []ArticleTag `json:"tags,omitempty"`
}

// CategoryName returns the category label, or fallback when the article
// has no category attached.
func (a *Article) CategoryName(fallback string) string {
	if a.Category == nil || a.Category.Name == "" {
		return fallback
	}
	return a.Category.Name
}

// AuthorName returns the author's name or "Anonymous".
func (a *Article) AuthorName() string {
	if a.Author == nil || a.Author.Name == "" {
		return "Anonymous"
	}
	return a.Author.Name
}

// ImageOrPlaceholder returns the featured image, or the placeholder when empty.
func (a *Article) ImageOrPlaceholder() string {
	if a.FeaturedImage == "" {
		return PlaceholderImage
	}
	return a.FeaturedImage
}

// TagList returns the article's tags in join order, skipping join rows
// whose tag could not be resolved.
func (a *Article) TagList() []Tag {
	tags := make([]Tag, 0, len(a.Tags))
	for _, at := range a.Tags {
		if at.Tag != nil {
			tags = append(tags, *at.Tag)
		}
	}
	return tags
}
