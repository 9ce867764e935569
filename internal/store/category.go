// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"devfolio/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by name, with article counts.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	query, args, err := psql.Select(
		"c.id", "c.name", "c.slug", "c.created_at", "c.updated_at",
		"COUNT(a.id) AS article_count",
	).
		From("categories c").
		LeftJoin("articles a ON a.category_id = c.id").
		GroupBy("c.id").
		OrderBy("c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list categories: build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt, &c.ArticleCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
