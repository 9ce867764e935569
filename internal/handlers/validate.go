// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"devfolio/internal/ai"
	"devfolio/internal/mail"
)

// Validation limits for chat and contact input.
const (
	maxChatMessages   = 50
	maxChatContentLen = 4_000
	maxNameLen        = 100
	maxEmailLen       = 254
	maxMessageLen     = 5_000
)

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Messages []ai.Message `json:"messages"`
}

// Validate checks the conversation: at least one message, known roles and
// bounded content.
func (r chatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Messages,
			validation.Required.Error("messages are required"),
			validation.Length(1, maxChatMessages),
			validation.Each(validation.By(validateChatMessage)),
		),
	)
}

func validateChatMessage(v any) error {
	m, ok := v.(ai.Message)
	if !ok {
		return errors.New("must be a message")
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.Role,
			validation.Required,
			validation.In(ai.RoleUser, ai.RoleAssistant, ai.RoleSystem).Error("must be user, assistant or system"),
		),
		validation.Field(&m.Content,
			validation.Required,
			validation.RuneLength(1, maxChatContentLen),
		),
	)
}

// normalizeContact trims surrounding whitespace from every field.
func normalizeContact(m mail.ContactMessage) mail.ContactMessage {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	return m
}

// validateContact checks a contact form submission.
func validateContact(m mail.ContactMessage) error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLen),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email is required"),
			validation.Length(3, maxEmailLen),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&m.Message,
			validation.Required.Error("message is required"),
			validation.RuneLength(1, maxMessageLen),
		),
	)
}
