// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"devfolio/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "devfolio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "devfolio")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// fixture is a set of rows created for one test under a unique suffix.
type fixture struct {
	suffix     string
	authorID   uuid.UUID
	categoryID uuid.UUID
	tagIDs     []uuid.UUID
}

// newFixture inserts an author, a category and tags named after a random
// suffix and removes them (and any article in the category) on cleanup.
func newFixture(t *testing.T, db *sql.DB, tagNames ...string) *fixture {
	t.Helper()
	f := &fixture{suffix: uuid.NewString()[:8]}

	if err := db.QueryRow(
		`INSERT INTO authors (name) VALUES ($1) RETURNING id`, "Author "+f.suffix,
	).Scan(&f.authorID); err != nil {
		t.Fatalf("insert author: %v", err)
	}
	if err := db.QueryRow(
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		"Category "+f.suffix, "category-"+f.suffix,
	).Scan(&f.categoryID); err != nil {
		t.Fatalf("insert category: %v", err)
	}
	for _, name := range tagNames {
		var id uuid.UUID
		if err := db.QueryRow(
			`INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id`,
			name, "tag-"+name+"-"+f.suffix,
		).Scan(&id); err != nil {
			t.Fatalf("insert tag: %v", err)
		}
		f.tagIDs = append(f.tagIDs, id)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM articles WHERE category_id = $1", f.categoryID)
		for _, id := range f.tagIDs {
			db.Exec("DELETE FROM tags WHERE id = $1", id)
		}
		db.Exec("DELETE FROM categories WHERE id = $1", f.categoryID)
		db.Exec("DELETE FROM authors WHERE id = $1", f.authorID)
	})
	return f
}

// addArticle inserts an article in the fixture category created ageDays
// ago and attaches tags in the given order.
func (f *fixture) addArticle(t *testing.T, db *sql.DB, name string, ageDays int, tagIDs ...uuid.UUID) (uuid.UUID, string) {
	t.Helper()
	slug := name + "-" + f.suffix

	var id uuid.UUID
	if err := db.QueryRow(`
		INSERT INTO articles (title, slug, content, author_id, category_id, reading_time, created_at)
		VALUES ($1, $2, $3, $4, $5, 3, NOW() - make_interval(days => $6))
		RETURNING id
	`, "Title "+name, slug, "## Body", f.authorID, f.categoryID, ageDays).Scan(&id); err != nil {
		t.Fatalf("insert article: %v", err)
	}
	for _, tagID := range tagIDs {
		if _, err := db.Exec(`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`, id, tagID); err != nil {
			t.Fatalf("attach tag: %v", err)
		}
	}
	return id, slug
}
