// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"strings"

	"devfolio/internal/models"
)

const (
	// AllCategories is the category selection that disables the category filter.
	AllCategories = "All"

	// Uncategorized labels articles without a category.
	Uncategorized = "Uncategorized"
)

// FilterArticles returns the articles in selectedCategory whose title or
// excerpt contains query, compared case-insensitively. An empty or "All"
// category and an empty query match everything. Input order is kept.
func FilterArticles(articles []models.Article, selectedCategory, query string) []models.Article {
	if selectedCategory == "" {
		selectedCategory = AllCategories
	}
	needle := strings.ToLower(query)

	visible := make([]models.Article, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		if selectedCategory != AllCategories && a.CategoryName(Uncategorized) != selectedCategory {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Excerpt), needle) {
			continue
		}
		visible = append(visible, *a)
	}
	return visible
}

// ExtractCategories returns "All" followed by the distinct category names of
// articles in order of first appearance.
func ExtractCategories(articles []models.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	categories := []string{AllCategories}
	for i := range articles {
		name := articles[i].CategoryName(Uncategorized)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, name)
	}
	return categories
}

// PickFeatured returns the first featured article, or nil.
func PickFeatured(articles []models.Article) *models.Article {
	for i := range articles {
		if articles[i].IsFeatured {
			featured := articles[i]
			return &featured
		}
	}
	return nil
}

// PartitionFeatured splits off the featured pick. rest holds every article
// whose ID differs from it; without a featured article rest is articles.
func PartitionFeatured(articles []models.Article) (*models.Article, []models.Article) {
	featured := PickFeatured(articles)
	if featured == nil {
		return nil, articles
	}

	rest := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID != featured.ID {
			rest = append(rest, a)
		}
	}
	return featured, rest
}

// Listing is everything a blog index needs from one list of articles.
type Listing struct {
	Categories []string
	Selected   string
	Query      string
	Featured   *models.Article
	Rest       []models.Article
	Visible    []models.Article
}

// Filtered reports whether a category or query narrows the listing.
func (l Listing) Filtered() bool {
	return (l.Selected != "" && l.Selected != AllCategories) || l.Query != ""
}

// BuildListing derives categories, the featured split and the filtered
// subset from articles.
func BuildListing(articles []models.Article, selectedCategory, query string) Listing {
	if selectedCategory == "" {
		selectedCategory = AllCategories
	}
	featured, rest := PartitionFeatured(articles)
	return Listing{
		Categories: ExtractCategories(articles),
		Selected:   selectedCategory,
		Query:      query,
		Featured:   featured,
		Rest:       rest,
		Visible:    FilterArticles(articles, selectedCategory, query),
	}
}
