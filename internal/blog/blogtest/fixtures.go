// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blogtest

import (
	"time"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// Fixture IDs are stable so tests can refer to them.
var (
	SecurityID    = uuid.MustParse("d5b42c5a-7f62-4229-8c79-05cecbde9584")
	DevelopmentID = uuid.MustParse("a93c121d-2d7c-4012-9d3e-c90c39616103")
	AISecurityID  = uuid.MustParse("f76e3dd5-553f-4f0b-a0c5-56b563128bf9")
	AuthorID      = uuid.MustParse("4f62d14a-456d-4946-9c25-7581259e37d1")
)

// Articles returns the three-article fixture, newest first:
// "advanced-network-security" (featured), "web-security-best-practices"
// and "ai-in-cybersecurity".
func Articles() []models.Article {
	author := &models.Author{ID: AuthorID, Name: "Andre Sarr"}
	security := &models.Category{ID: SecurityID, Name: "Security", Slug: "security"}
	development := &models.Category{ID: DevelopmentID, Name: "Development", Slug: "development"}
	aiSecurity := &models.Category{ID: AISecurityID, Name: "AI & Security", Slug: "ai-security"}

	cyber := &models.Tag{ID: uuid.MustParse("7d32f2c8-2d71-4d1e-bc8e-93061a10a2b5"), Name: "Cybersecurity", Slug: "cybersecurity"}
	network := &models.Tag{ID: uuid.MustParse("c9e52d4a-e381-4fca-a136-0d15b9bf5120"), Name: "Network Security", Slug: "network-security"}

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	networkID := uuid.MustParse("81c4d9e6-72f3-49b0-a5e1-123456789012")

	return []models.Article{
		{
			ID:          networkID,
			Title:       "Advanced Network Security: Protecting Against Modern Threats",
			Slug:        "advanced-network-security",
			Content:     "# Advanced Network Security\n\n## Introduction\n\nIn today's interconnected world...",
			Excerpt:     "Explore cutting-edge network security strategies and learn how to protect your infrastructure against sophisticated cyber threats.",
			AuthorID:    AuthorID,
			CategoryID:  SecurityID,
			CreatedAt:   base,
			UpdatedAt:   base,
			ReadingTime: 8,
			IsFeatured:  true,
			Author:      author,
			Category:    security,
			Tags: []models.ArticleTag{
				{ArticleID: networkID, TagID: network.ID, Tag: network},
				{ArticleID: networkID, TagID: cyber.ID, Tag: cyber},
			},
		},
		{
			ID:          uuid.MustParse("92d5e0f7-83a4-4ab1-b6f2-234567890123"),
			Title:       "Web Security Best Practices for Developers",
			Slug:        "web-security-best-practices",
			Content:     "# Web Security Best Practices\n\n## Input Validation\n\nNever trust user input.",
			Excerpt:     "A guide to the essential security practices every web developer should follow.",
			AuthorID:    AuthorID,
			CategoryID:  DevelopmentID,
			CreatedAt:   base.Add(-24 * time.Hour),
			UpdatedAt:   base.Add(-24 * time.Hour),
			ReadingTime: 7,
			Author:      author,
			Category:    development,
		},
		{
			ID:          uuid.MustParse("a3e6f108-94b5-4bc2-87a3-345678901234"),
			Title:       "AI in Cybersecurity: Revolutionizing Threat Detection",
			Slug:        "ai-in-cybersecurity",
			Content:     "# AI in Cybersecurity\n\n## Machine Learning Models\n\nAnomaly detection at scale.",
			Excerpt:     "How machine learning is changing the way we detect and respond to threats.",
			AuthorID:    AuthorID,
			CategoryID:  AISecurityID,
			CreatedAt:   base.Add(-48 * time.Hour),
			UpdatedAt:   base.Add(-48 * time.Hour),
			ReadingTime: 9,
			Author:      author,
			Category:    aiSecurity,
		},
	}
}
