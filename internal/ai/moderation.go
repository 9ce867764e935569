// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// ModerationResult contains the outcome of a prompt safety check.
type ModerationResult struct {
	Safe       bool     // true if the prompt passes moderation
	Categories []string // sorted flagged category names (empty when safe)
}

// Moderator checks chat input for policy violations before it is sent
// to a provider.
type Moderator interface {
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// httpModerator calls an OpenAI-style moderation endpoint
// (POST {baseURL}/moderations). OpenAI's is free for key holders;
// Mistral's is paid and carries no top-level flag.
type httpModerator struct {
	label   string
	model   string
	apiKey  string
	url     string
	client  *http.Client
	topFlag bool
}

// newOpenAIModerator creates a moderator that uses OpenAI's moderation API.
func newOpenAIModerator(apiKey, baseURL string) *httpModerator {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &httpModerator{
		label:   "moderation",
		model:   "omni-moderation-latest",
		apiKey:  apiKey,
		url:     baseURL + "/moderations",
		client:  &http.Client{Timeout: 15 * time.Second},
		topFlag: true,
	}
}

// newMistralModerator creates a moderator using Mistral's moderation API.
func newMistralModerator(apiKey, baseURL string) *httpModerator {
	if baseURL == "" {
		baseURL = "https://api.mistral.ai/v1"
	}
	return &httpModerator{
		label:  "mistral moderation",
		model:  "mistral-moderation-latest",
		apiKey: apiKey,
		url:    baseURL + "/moderations",
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *httpModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	var result modResponse
	headers := map[string]string{"Authorization": "Bearer " + m.apiKey}
	if err := postJSON(ctx, m.client, m.label, m.url, headers, modRequest{Model: m.model, Input: text}, &result); err != nil {
		return nil, err
	}

	if len(result.Results) == 0 {
		return &ModerationResult{Safe: true}, nil
	}
	r := result.Results[0]
	if m.topFlag && !r.Flagged {
		return &ModerationResult{Safe: true}, nil
	}

	flagged := flaggedCategories(r.Categories)
	return &ModerationResult{Safe: len(flagged) == 0 && !r.Flagged, Categories: flagged}, nil
}

// flaggedCategories returns readable names of the true entries, sorted.
// "hate/threatening" becomes "hate (threatening)".
func flaggedCategories(cats map[string]bool) []string {
	var out []string
	for cat, isFlagged := range cats {
		if !isFlagged {
			continue
		}
		display := cat
		if strings.Contains(cat, "/") {
			display = strings.ReplaceAll(cat, "/", " (") + ")"
		}
		out = append(out, strings.ReplaceAll(display, "_", " "))
	}
	sort.Strings(out)
	return out
}

// fallbackModerator tries primary and switches to secondary for good once
// primary rejects the key (401/403), as project-scoped OpenAI keys do.
type fallbackModerator struct {
	primary, secondary Moderator
	useSecondary       atomic.Bool
}

func newFallbackModerator(primary, secondary Moderator) *fallbackModerator {
	return &fallbackModerator{primary: primary, secondary: secondary}
}

func (f *fallbackModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	if f.useSecondary.Load() {
		return f.secondary.CheckSafety(ctx, text)
	}

	res, err := f.primary.CheckSafety(ctx, text)
	var apiErr *apiError
	if errors.As(err, &apiErr) && (apiErr.status == http.StatusUnauthorized || apiErr.status == http.StatusForbidden) {
		slog.Warn("primary moderator rejected credentials, switching to fallback", "error", err)
		f.useSecondary.Store(true)
		return f.secondary.CheckSafety(ctx, text)
	}
	return res, err
}

// --- Request/Response types ---

type modRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type modResponse struct {
	Results []modResult `json:"results"`
}

type modResult struct {
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
}
