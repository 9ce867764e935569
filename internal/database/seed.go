// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const seedAuthorID = "4f62d14a-456d-4946-9c25-7581259e37d1"

type seedArticle struct {
	id, title, slug, content, excerpt, image, categoryID string
	readingTime                                         int
	featured                                            bool
	tagIDs                                              []string
}

var seedCategories = []struct{ id, name, slug string }{
	{"d5b42c5a-7f62-4229-8c79-05cecbde9584", "Security", "security"},
	{"a93c121d-2d7c-4012-9d3e-c90c39616103", "Development", "development"},
	{"f76e3dd5-553f-4f0b-a0c5-56b563128bf9", "AI & Security", "ai-security"},
}

var seedTags = []struct{ id, name, slug string }{
	{"7d32f2c8-2d71-4d1e-bc8e-93061a10a2b5", "Cybersecurity", "cybersecurity"},
	{"c9e52d4a-e381-4fca-a136-0d15b9bf5120", "Network Security", "network-security"},
	{"b4f62a78-9c30-4f05-b36e-d22af4a79691", "Web Development", "web-development"},
	{"e2c7d4b1-3f8a-4b02-9a5d-156789c04328", "AI", "ai"},
	{"a1d3e5f7-9b2c-4d0e-8f6a-123456789abc", "Machine Learning", "machine-learning"},
	{"f9e8d7c6-b5a4-3210-9876-543210fedcba", "Next.js", "nextjs"},
}

// Articles are listed oldest first; each insert gets a later created_at.
var seedArticles = []seedArticle{
	{
		id:    "81c4d9e6-72f3-49b0-a5e1-123456789012",
		title: "Advanced Network Security: Protecting Against Modern Threats",
		slug:  "advanced-network-security",
		content: "# Advanced Network Security: Protecting Against Modern Threats\n\n" +
			"## Introduction\n\nIn today's interconnected world, network security has become more critical than ever.\n\n" +
			"## Understanding Modern Threats\n\n### Advanced Persistent Threats (APTs)\n\n" +
			"APTs are long-term targeted attacks where attackers keep unauthorized access to a network.\n\n" +
			"- They're difficult to detect\n- They can cause significant damage over time\n- They often target sensitive data\n\n" +
			"### Zero-Day Exploits\n\n```python\ndef scan_for_vulnerabilities(network):\n    vulnerabilities = []\n" +
			"    for node in network.nodes:\n        if node.patch_level < latest_patch:\n" +
			"            vulnerabilities.append({\"node\": node, \"risk_level\": \"high\"})\n    return vulnerabilities\n```\n",
		excerpt:     "A comprehensive guide to protecting your network against modern security threats including APTs and zero-day exploits.",
		image:       "/images/network-security.jpeg",
		categoryID:  "d5b42c5a-7f62-4229-8c79-05cecbde9584",
		readingTime: 8,
		featured:    true,
		tagIDs:      []string{"7d32f2c8-2d71-4d1e-bc8e-93061a10a2b5", "c9e52d4a-e381-4fca-a136-0d15b9bf5120"},
	},
	{
		id:    "a2c4d9e6-72f3-49b0-a5e1-123456789013",
		title: "Web Security Best Practices for Developers",
		slug:  "web-security-best-practices",
		content: "# Web Security Best Practices for Developers\n\n" +
			"## Essential Security Practices\n\n### Input Validation and Sanitization\n\n" +
			"```javascript\nconst query = 'SELECT * FROM users WHERE username = ?';\ndb.execute(query, [sanitizeInput(userInput)]);\n```\n\n" +
			"### Use HTTPS Everywhere\n\n- Obtain certificates from trusted authorities\n- Implement HSTS\n\n" +
			"## Conclusion\n\nWeb security is not a one-time implementation but an ongoing process.\n",
		excerpt:     "Learn essential web security practices every developer should implement to protect applications from common vulnerabilities and attacks.",
		image:       "/images/featured/web-security.jpg",
		categoryID:  "d5b42c5a-7f62-4229-8c79-05cecbde9584",
		readingTime: 7,
		tagIDs:      []string{"7d32f2c8-2d71-4d1e-bc8e-93061a10a2b5", "b4f62a78-9c30-4f05-b36e-d22af4a79691"},
	},
	{
		id:    "a3c4d9e6-72f3-49b0-a5e1-123456789014",
		title: "AI in Cybersecurity: Revolutionizing Threat Detection",
		slug:  "ai-in-cybersecurity",
		content: "# AI in Cybersecurity: Revolutionizing Threat Detection\n\n" +
			"## How AI is Transforming Cybersecurity\n\n### Enhanced Threat Detection\n\n" +
			"```python\ndef detect_anomalies(traffic):\n    model = train_anomaly_detection_model(history)\n" +
			"    return [p for p in traffic if model.predict(p) > THRESHOLD]\n```\n\n" +
			"## Conclusion\n\nAI is not a silver bullet for cybersecurity, but it is becoming an essential component of modern security strategies.\n",
		excerpt:     "Discover how artificial intelligence and machine learning are revolutionizing cybersecurity threat detection and response capabilities.",
		image:       "/images/featured/ai-security.jpg",
		categoryID:  "f76e3dd5-553f-4f0b-a0c5-56b563128bf9",
		readingTime: 9,
		tagIDs: []string{
			"7d32f2c8-2d71-4d1e-bc8e-93061a10a2b5",
			"e2c7d4b1-3f8a-4b02-9a5d-156789c04328",
			"a1d3e5f7-9b2c-4d0e-8f6a-123456789abc",
		},
	},
	{
		id:    "a4c4d9e6-72f3-49b0-a5e1-123456789015",
		title: "Mastering Next.js App Router: A Comprehensive Guide",
		slug:  "nextjs-app-router",
		content: "# Mastering Next.js App Router: A Comprehensive Guide\n\n" +
			"## Server Components\n\nServer components render on the server and ship no JavaScript to the client.\n\n" +
			"```tsx\nexport default async function Page() {\n  const posts = await getPosts()\n  return <PostList posts={posts} />\n}\n```\n\n" +
			"## Conclusion\n\nThe App Router enables more performant and maintainable React applications.\n",
		excerpt:     "Learn how to leverage the powerful features of Next.js App Router to build more efficient and maintainable React applications.",
		image:       "/images/featured/nextjs.jpg",
		categoryID:  "a93c121d-2d7c-4012-9d3e-c90c39616103",
		readingTime: 12,
		tagIDs:      []string{"b4f62a78-9c30-4f05-b36e-d22af4a79691", "f9e8d7c6-b5a4-3210-9876-543210fedcba"},
	},
}

// Seed populates the database with the sample author, categories, tags and
// articles. It does nothing when any article already exists.
func Seed(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return fmt.Errorf("seed check articles: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping", "articles", count)
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO authors (id, name, avatar_url, bio)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, seedAuthorID, "Andre Sarr", "/images/profile-picture.png",
		"Full Stack Developer & Security Enthusiast. Passionate about cybersecurity, web development, and innovative technologies.",
	); err != nil {
		return fmt.Errorf("seed insert author: %w", err)
	}

	for _, c := range seedCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			c.id, c.name, c.slug,
		); err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.slug, err)
		}
	}

	for _, tg := range seedTags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			tg.id, tg.name, tg.slug,
		); err != nil {
			return fmt.Errorf("seed insert tag %s: %w", tg.slug, err)
		}
	}

	n := len(seedArticles)
	for i, a := range seedArticles {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO articles (id, title, slug, content, excerpt, featured_image,
				author_id, category_id, reading_time, is_featured, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				NOW() - make_interval(days => $11), NOW() - make_interval(days => $11))
		`, a.id, a.title, a.slug, a.content, a.excerpt, a.image,
			seedAuthorID, a.categoryID, a.readingTime, a.featured, n-i,
		); err != nil {
			return fmt.Errorf("seed insert article %s: %w", a.slug, err)
		}

		for _, tagID := range a.tagIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
				a.id, tagID,
			); err != nil {
				return fmt.Errorf("seed link tag for %s: %w", a.slug, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample articles", "articles", n)
	return nil
}
