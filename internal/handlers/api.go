// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/ai"
	"devfolio/internal/blog"
	"devfolio/internal/mail"
	"devfolio/internal/models"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// CategoryLister lists categories with article counts.
type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Replier answers a chat conversation.
type Replier interface {
	Reply(ctx context.Context, history []ai.Message) (string, error)
}

// API groups the JSON endpoints under /api.
type API struct {
	*Content
	categories CategoryLister
	chat       Replier
	mailer     mail.Sender
}

// NewAPI creates a new API handler group.
func NewAPI(content *Content, categories CategoryLister, chat Replier, mailer mail.Sender) *API {
	return &API{Content: content, categories: categories, chat: chat, mailer: mailer}
}

// articlesResponse is the body of GET /api/articles.
type articlesResponse struct {
	Success    bool             `json:"success"`
	Count      int              `json:"count"`
	Articles   []models.Article `json:"articles"`
	Categories []string         `json:"categories"`
	Featured   *models.Article  `json:"featured"`
}

// Articles lists articles with tags, filtered by the "category" and "q"
// query parameters.
func (a *API) Articles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.Blog.ListArticles(r.Context(), blog.ListOptions{IncludeTags: true})
	if err != nil {
		slog.Error("api: list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	a.resolveImages(articles)

	q := r.URL.Query()
	listing := blog.BuildListing(articles, q.Get("category"), strings.TrimSpace(q.Get("q")))
	writeJSON(w, http.StatusOK, articlesResponse{
		Success:    true,
		Count:      len(listing.Visible),
		Articles:   listing.Visible,
		Categories: listing.Categories,
		Featured:   listing.Featured,
	})
}

// Article returns one article with its rendered body, table of contents,
// share links and related articles.
func (a *API) Article(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	article, err := a.Blog.ArticleBySlug(ctx, slugParam)
	if err != nil {
		var storeErr *blog.StoreError
		if errors.As(err, &storeErr) {
			slog.Error("api: find article failed", "slug", slugParam, "error", err)
		}
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}

	d, err := a.detail(ctx, article)
	if err != nil {
		slog.Error("api: render article failed", "slug", slugParam, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render article")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"article": article,
		"html":    d.HTML,
		"toc":     d.TOC,
		"share":   d.Share,
		"related": d.Related,
	})
}

// Categories lists categories with their article counts.
func (a *API) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.categories.List(r.Context())
	if err != nil {
		slog.Error("api: list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

// Chat forwards the conversation to the assistant and returns its reply.
func (a *API) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "Invalid request", "fields": err})
		return
	}

	reply, err := a.chat.Reply(r.Context(), req.Messages)
	if errors.Is(err, ai.ErrFlagged) {
		slog.Warn("chat message flagged", "error", err)
		writeError(w, http.StatusBadRequest, "Message violates content policy")
		return
	}
	if err != nil {
		slog.Error("chat reply failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": reply})
}

// Contact relays a contact form submission to the site owner.
func (a *API) Contact(w http.ResponseWriter, r *http.Request) {
	var msg mail.ContactMessage
	if !decodeJSON(w, r, &msg) {
		return
	}
	msg = normalizeContact(msg)
	if err := validateContact(msg); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "Invalid request", "fields": err})
		return
	}

	if err := a.mailer.Send(r.Context(), msg); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error sending email"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes
// a 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
