// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"devfolio/internal/blog"
	"devfolio/internal/models"
)

// psql builds PostgreSQL queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ArticleStore reads articles and their relations. It implements
// blog.Repository.
type ArticleStore struct {
	db *sql.DB
}

var _ blog.Repository = (*ArticleStore)(nil)

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// articleSelect joins author and category so that a dangling reference
// leaves the relation nil instead of dropping the article.
func articleSelect() sq.SelectBuilder {
	return psql.Select(
		"a.id", "a.title", "a.slug", "a.content", "a.excerpt", "a.featured_image",
		"a.author_id", "a.category_id", "a.reading_time", "a.is_featured",
		"a.created_at", "a.updated_at",
		"au.id", "au.name", "au.avatar_url", "au.bio", "au.created_at", "au.updated_at",
		"c.id", "c.name", "c.slug", "c.created_at", "c.updated_at",
	).
		From("articles a").
		LeftJoin("authors au ON au.id = a.author_id").
		LeftJoin("categories c ON c.id = a.category_id")
}

// scanArticle scans one articleSelect row.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var (
		a                    models.Article
		authorRef, catRef    uuid.NullUUID
		authorID, catID      uuid.NullUUID
		authorName           sql.NullString
		avatar, bio          *string
		authorCreated        sql.NullTime
		authorUpdated        sql.NullTime
		catName, catSlug     sql.NullString
		catCreated, catUpdtd sql.NullTime
	)
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.FeaturedImage,
		&authorRef, &catRef, &a.ReadingTime, &a.IsFeatured,
		&a.CreatedAt, &a.UpdatedAt,
		&authorID, &authorName, &avatar, &bio, &authorCreated, &authorUpdated,
		&catID, &catName, &catSlug, &catCreated, &catUpdtd,
	)
	if err != nil {
		return nil, err
	}

	a.AuthorID = authorRef.UUID
	a.CategoryID = catRef.UUID
	if authorID.Valid {
		a.Author = &models.Author{
			ID:        authorID.UUID,
			Name:      authorName.String,
			AvatarURL: avatar,
			Bio:       bio,
			CreatedAt: authorCreated.Time,
			UpdatedAt: authorUpdated.Time,
		}
	}
	if catID.Valid {
		a.Category = &models.Category{
			ID:        catID.UUID,
			Name:      catName.String,
			Slug:      catSlug.String,
			CreatedAt: catCreated.Time,
			UpdatedAt: catUpdtd.Time,
		}
	}
	return &a, nil
}

// queryArticles runs a built select and scans every row.
func (s *ArticleStore) queryArticles(ctx context.Context, b sq.SelectBuilder) ([]models.Article, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindBySlug retrieves an article with author, category and tags.
// Returns nil if not found.
func (s *ArticleStore) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query, args, err := articleSelect().Where(sq.Eq{"a.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("find article by slug: build query: %w", err)
	}

	a, err := scanArticle(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}

	tags, err := s.tagsFor(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	a.Tags = tags[a.ID]
	return a, nil
}

// List returns all articles, newest first. Tags are attached only when
// opts.IncludeTags is set.
func (s *ArticleStore) List(ctx context.Context, opts blog.ListOptions) ([]models.Article, error) {
	items, err := s.queryArticles(ctx, articleSelect().OrderBy("a.created_at DESC", "a.id"))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	if opts.IncludeTags && len(items) > 0 {
		ids := make([]uuid.UUID, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		tags, err := s.tagsFor(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		for i := range items {
			items[i].Tags = tags[items[i].ID]
		}
	}
	return items, nil
}

// ListRelated returns up to limit newest articles in the category, other
// than excludeID.
func (s *ArticleStore) ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]models.Article, error) {
	b := articleSelect().
		Where(sq.Eq{"a.category_id": categoryID}).
		Where(sq.NotEq{"a.id": excludeID}).
		OrderBy("a.created_at DESC").
		Limit(uint64(limit))

	items, err := s.queryArticles(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list related articles: %w", err)
	}
	return items, nil
}

// ListSlugs returns every article slug, newest first.
func (s *ArticleStore) ListSlugs(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("slug").From("articles").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list slugs: build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// tagsFor loads the tags of the given articles in one query, keyed by
// article id and kept in the order they were attached.
func (s *ArticleStore) tagsFor(ctx context.Context, articleIDs []uuid.UUID) (map[uuid.UUID][]models.ArticleTag, error) {
	ids := make([]string, len(articleIDs))
	for i, id := range articleIDs {
		ids[i] = id.String()
	}

	query, args, err := psql.Select(
		"at.article_id", "at.tag_id",
		"t.id", "t.name", "t.slug", "t.created_at", "t.updated_at",
	).
		From("article_tags at").
		LeftJoin("tags t ON t.id = at.tag_id").
		Where("at.article_id = ANY(?::uuid[])", ids).
		OrderBy("at.article_id", "at.position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("load tags: build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]models.ArticleTag, len(articleIDs))
	for rows.Next() {
		var (
			at               models.ArticleTag
			tagID            uuid.NullUUID
			name, slug       sql.NullString
			created, updated sql.NullTime
		)
		if err := rows.Scan(&at.ArticleID, &at.TagID, &tagID, &name, &slug, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		if tagID.Valid {
			at.Tag = &models.Tag{
				ID:        tagID.UUID,
				Name:      name.String,
				Slug:      slug.String,
				CreatedAt: created.Time,
				UpdatedAt: updated.Time,
			}
		}
		out[at.ArticleID] = append(out[at.ArticleID], at)
	}
	return out, rows.Err()
}
