// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"net/http"
	"time"
)

// newMistral creates a Mistral provider. Mistral's chat completions API is
// OpenAI-compatible, so it reuses the OpenAI client with another base URL.
func newMistral(cfg ProviderConfig) *openAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistral-small-latest"
	}
	return &openAIProvider{
		label:  "mistral",
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}
