// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers run against the in-memory blog repository and fake collaborators.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/ai"
	"devfolio/internal/blog"
	"devfolio/internal/blog/blogtest"
	"devfolio/internal/feed"
	"devfolio/internal/mail"
	"devfolio/internal/models"
	"devfolio/internal/render"
)

const testSiteURL = "https://devfolio.test"

var errStoreDown = errors.New("connection refused")

// fakeReplier implements Replier.
type fakeReplier struct {
	reply   string
	err     error
	history []ai.Message
}

func (f *fakeReplier) Reply(_ context.Context, history []ai.Message) (string, error) {
	f.history = history
	return f.reply, f.err
}

// fakeMailer implements mail.Sender and records what it was asked to send.
type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.ContactMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m mail.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

// fakeCategories implements CategoryLister.
type fakeCategories struct {
	cats []models.Category
	err  error
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	return f.cats, f.err
}

// testEnv wires the handler groups to an in-memory repository.
type testEnv struct {
	repo    *blogtest.MemoryRepository
	replier *fakeReplier
	mailer  *fakeMailer
	cats    *fakeCategories
	public  *Public
	api     *API
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	repo := blogtest.NewMemoryRepository(blogtest.Articles()...)
	content := &Content{Blog: blog.NewService(repo), SiteURL: testSiteURL}

	env := &testEnv{
		repo:    repo,
		replier: &fakeReplier{reply: "Andre works on network security."},
		mailer:  &fakeMailer{},
		cats: &fakeCategories{cats: []models.Category{
			{ID: blogtest.SecurityID, Name: "Security", Slug: "security", ArticleCount: 1},
		}},
	}
	env.public = NewPublic(content, renderer, feed.Config{
		Title:       "Andre Sarr",
		Description: "Articles on security and development",
		Author:      "Andre Sarr",
		SiteURL:     testSiteURL,
	})
	env.api = NewAPI(content, env.cats, env.replier, env.mailer)
	return env
}

// withChiURLParam adds a chi URL parameter to the request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}
