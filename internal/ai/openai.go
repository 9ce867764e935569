// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// openAIProvider implements the Provider interface using the OpenAI
// chat completions API (POST /v1/chat/completions).
type openAIProvider struct {
	label  string
	config ProviderConfig
	client *http.Client
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	return &openAIProvider{
		label:  "openai",
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *openAIProvider) Name() string { return p.label }

// Chat sends a chat completion request with the system prompt first and
// returns the assistant's reply.
func (p *openAIProvider) Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	msgs := make([]openAIMessage, 0, len(messages)+1)
	if systemPrompt != "" {
		msgs = append(msgs, openAIMessage{Role: RoleSystem, Content: systemPrompt})
	}
	for _, m := range messages {
		msgs = append(msgs, openAIMessage{Role: m.Role, Content: m.Content})
	}

	body := openAIRequest{
		Model:       p.config.Model,
		Messages:    msgs,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}

	var result openAIResponse
	headers := map[string]string{"Authorization": "Bearer " + p.config.APIKey}
	if err := postJSON(ctx, p.client, p.label, p.config.BaseURL+"/chat/completions", headers, body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", p.label)
	}
	return result.Choices[0].Message.Content, nil
}

// --- OpenAI-compatible request/response types ---
// Used by both OpenAI and Mistral providers.

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}
