// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and checks the URL-safe identifiers used in
// article, category and tag URLs.
package slug

import (
	"regexp"
	"strings"
)

// MaxLen is the longest slug accepted in a URL.
const MaxLen = 200

var (
	// disallowed matches anything that isn't a lowercase letter, digit, space or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// separators collapses runs of whitespace and hyphens into one hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
	// wellFormed is the shape of a valid slug: hyphen-separated lowercase words.
	wellFormed = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate turns a title into a slug.
// Example: "AI in Cybersecurity: Revolutionizing Threat Detection" →
// "ai-in-cybersecurity-revolutionizing-threat-detection".
func Generate(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	return s
}

// Valid reports whether s is a well-formed slug no longer than MaxLen.
func Valid(s string) bool {
	return len(s) > 0 && len(s) <= MaxLen && wellFormed.MatchString(s)
}
