// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "article title", input: "Advanced Network Security: Protecting Against Modern Threats", want: "advanced-network-security-protecting-against-modern-threats"},
		{name: "ampersand", input: "AI & Security", want: "ai-security"},
		{name: "dotted name", input: "Next.js", want: "nextjs"},
		{name: "already a slug", input: "web-security-best-practices", want: "web-security-best-practices"},
		{name: "surrounding space", input: "  Machine Learning  ", want: "machine-learning"},
		{name: "tabs and newlines", input: "Zero\tDay\nExploits", want: "zero-day-exploits"},
		{name: "repeated hyphens", input: "a -- b", want: "a-b"},
		{name: "non ascii dropped", input: "Café Sécurité", want: "caf-scurit"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateTruncates(t *testing.T) {
	got := Generate(strings.Repeat("ab ", 150))
	if len(got) > MaxLen {
		t.Fatalf("len = %d, want <= %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug ends with hyphen: %q", got)
	}
	if !Valid(got) {
		t.Errorf("truncated slug is not valid: %q", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"advanced-network-security", true},
		{"nextjs", true},
		{"2026-recap", true},
		{"", false},
		{"Upper-Case", false},
		{"trailing-", false},
		{"-leading", false},
		{"double--hyphen", false},
		{"with space", false},
		{"../etc/passwd", false},
		{"slug%20encoded", false},
		{strings.Repeat("a", MaxLen), true},
		{strings.Repeat("a", MaxLen+1), false},
	}

	for _, tt := range tests {
		if got := Valid(tt.input); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestGenerateProducesValid checks Generate output always passes Valid
// when non-empty.
func TestGenerateProducesValid(t *testing.T) {
	inputs := []string{
		"Web Security Best Practices for Developers",
		"Mastering Next.js App Router: A Comprehensive Guide",
		"  --weird--  input  ",
		"C++ & Rust",
	}
	for _, in := range inputs {
		if s := Generate(in); s != "" && !Valid(s) {
			t.Errorf("Generate(%q) = %q is not valid", in, s)
		}
	}
}
