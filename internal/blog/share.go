// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"net/url"
	"strings"
	"unicode"
)

// ShareLinks are the social sharing URLs shown next to an article.
type ShareLinks struct {
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
}

// ShareLinksFor builds sharing URLs for the article at siteURL/blog/slug.
func ShareLinksFor(siteURL, articleSlug, title string) ShareLinks {
	link := strings.TrimRight(siteURL, "/") + "/blog/" + articleSlug
	u := url.QueryEscape(link)
	t := url.QueryEscape(title)
	return ShareLinks{
		URL:      link,
		Twitter:  "https://twitter.com/intent/tweet?url=" + u + "&text=" + t,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/shareArticle?mini=true&url=" + u + "&title=" + t,
	}
}

// wordsPerMinute is the reading speed behind EstimateReadingTime.
const wordsPerMinute = 200

// EstimateReadingTime returns the minutes needed to read content, never
// less than one.
func EstimateReadingTime(content string) int {
	words := len(strings.FieldsFunc(content, unicode.IsSpace))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
