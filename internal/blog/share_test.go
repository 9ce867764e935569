// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"devfolio/internal/blog"
)

func TestShareLinksFor(t *testing.T) {
	links := blog.ShareLinksFor("https://example.dev/", "ai-in-cybersecurity", "AI & Security")

	assert.Equal(t, "https://example.dev/blog/ai-in-cybersecurity", links.URL)
	assert.Equal(t,
		"https://twitter.com/intent/tweet?url=https%3A%2F%2Fexample.dev%2Fblog%2Fai-in-cybersecurity&text=AI+%26+Security",
		links.Twitter)
	assert.True(t, strings.HasPrefix(links.Facebook, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2F"))
	assert.Contains(t, links.LinkedIn, "mini=true")
	assert.Contains(t, links.LinkedIn, "&title=AI+%26+Security")
}

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{name: "empty", words: 0, want: 1},
		{name: "short", words: 50, want: 1},
		{name: "exact minute", words: 200, want: 1},
		{name: "just over", words: 201, want: 2},
		{name: "long", words: 1800, want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("word ", tt.words)
			assert.Equal(t, tt.want, blog.EstimateReadingTime(content))
		})
	}
}
