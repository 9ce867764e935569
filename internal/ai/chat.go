// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// SystemPrompt introduces the assistant to every conversation.
const SystemPrompt = `You are an AI assistant for Andre Sarr, a Full Stack Developer & Security Enthusiast.

Context about Andre:
- Full Stack Developer with expertise in Next.js, React, Python/Django, and Flutter
- Security enthusiast with certifications in cybersecurity
- Has worked on projects including Django applications, AI models for sign language recognition, and web development
- Has certifications from Google, Cisco, TryHackMe, and others
- Passionate about technology, innovation, and creation

Respond as Andre's AI assistant. Be helpful, friendly, and informative. Keep responses concise.`

// ErrFlagged is returned when moderation rejects the latest user message.
var ErrFlagged = errors.New("ai: message flagged by moderation")

// Assistant answers chat conversations using the registry's active provider.
type Assistant struct {
	registry *Registry
}

// NewAssistant creates an Assistant backed by registry.
func NewAssistant(registry *Registry) *Assistant {
	return &Assistant{registry: registry}
}

// Reply moderates the most recent user message and forwards the whole
// history, unmodified, after SystemPrompt. A moderation outage does not
// block the reply.
func (a *Assistant) Reply(ctx context.Context, history []Message) (string, error) {
	if last := lastUserMessage(history); last != "" {
		res, err := a.registry.CheckPrompt(ctx, last)
		switch {
		case err != nil:
			slog.Warn("chat moderation unavailable", "error", err)
		case !res.Safe:
			return "", fmt.Errorf("%w: %s", ErrFlagged, strings.Join(res.Categories, ", "))
		}
	}

	reply, err := a.registry.Chat(ctx, SystemPrompt, history)
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	return reply, nil
}

func lastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}
