// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed renders the blog's RSS feed and sitemap.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"devfolio/internal/models"
)

// Config holds the channel metadata.
type Config struct {
	Title       string
	Description string
	Author      string
	SiteURL     string
}

// ArticleURL returns the absolute URL of an article page.
func ArticleURL(siteURL, slug string) string {
	return strings.TrimRight(siteURL, "/") + "/blog/" + slug
}

// RSS renders an RSS 2.0 document for articles, which are expected newest
// first. now stamps the channel.
func RSS(cfg Config, articles []models.Article, now time.Time) (string, error) {
	f := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: strings.TrimRight(cfg.SiteURL, "/") + "/blog"},
		Description: cfg.Description,
		Author:      &feeds.Author{Name: cfg.Author},
		Created:     now,
	}

	f.Items = make([]*feeds.Item, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		link := ArticleURL(cfg.SiteURL, a.Slug)
		item := &feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: a.Excerpt,
			Author:      &feeds.Author{Name: a.AuthorName()},
			Created:     a.CreatedAt,
			Updated:     a.UpdatedAt,
		}
		f.Items = append(f.Items, item)
	}

	rss, err := f.ToRss()
	if err != nil {
		return "", fmt.Errorf("generate rss: %w", err)
	}
	return rss, nil
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders a sitemap listing the blog index and one entry per slug.
func Sitemap(siteURL string, slugs []string) ([]byte, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: strings.TrimRight(siteURL, "/") + "/blog"})
	for _, s := range slugs {
		set.URLs = append(set.URLs, sitemapURL{Loc: ArticleURL(siteURL, s)})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generate sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
