// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"devfolio/internal/ai"
	"devfolio/internal/blog"
	"devfolio/internal/blog/blogtest"
	"devfolio/internal/feed"
	"devfolio/internal/handlers"
	"devfolio/internal/mail"
	"devfolio/internal/middleware"
	"devfolio/internal/models"
	"devfolio/internal/render"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthHandlerMethods(t *testing.T) {
	// Health endpoint only accepts GET.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}

// --- Full routing table ---

type stubReplier struct{}

func (stubReplier) Reply(context.Context, []ai.Message) (string, error) { return "hello", nil }

type stubMailer struct{}

func (stubMailer) Send(context.Context, mail.ContactMessage) error { return nil }

type stubCategories struct{}

func (stubCategories) List(context.Context) ([]models.Category, error) { return nil, nil }

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()

	renderer, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	content := &handlers.Content{
		Blog:    blog.NewService(blogtest.NewMemoryRepository(blogtest.Articles()...)),
		SiteURL: "https://devfolio.test",
	}
	public := handlers.NewPublic(content, renderer, feed.Config{Title: "Andre Sarr", SiteURL: "https://devfolio.test"})
	api := handlers.NewAPI(content, stubCategories{}, stubReplier{}, stubMailer{})
	return New(public, api, opts)
}

func TestRoutes(t *testing.T) {
	opts := Options{
		Metrics: middleware.NewMetrics(),
		Static:  fstest.MapFS{"css/blog.css": {Data: []byte("body{}")}},
	}
	r := newTestRouter(t, opts)

	tests := []struct {
		method, path string
		body         string
		wantStatus   int
		wantType     string
	}{
		{"GET", "/health", "", http.StatusOK, "application/json"},
		{"GET", "/", "", http.StatusFound, ""},
		{"GET", "/blog", "", http.StatusOK, "text/html"},
		{"GET", "/blog/advanced-network-security", "", http.StatusOK, "text/html"},
		{"GET", "/blog/missing-article", "", http.StatusNotFound, "text/html"},
		{"GET", "/blog/rss.xml", "", http.StatusOK, "application/rss+xml"},
		{"GET", "/sitemap.xml", "", http.StatusOK, "application/xml"},
		{"GET", "/api/articles", "", http.StatusOK, "application/json"},
		{"GET", "/api/articles/ai-in-cybersecurity", "", http.StatusOK, "application/json"},
		{"GET", "/api/articles/nope", "", http.StatusNotFound, "application/json"},
		{"GET", "/api/categories", "", http.StatusOK, "application/json"},
		{"POST", "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`, http.StatusOK, "application/json"},
		{"POST", "/api/contact", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`, http.StatusOK, "application/json"},
		{"GET", "/static/css/blog.css", "", http.StatusOK, "text/css"},
		{"GET", "/no/such/page", "", http.StatusNotFound, "text/html"},
		{"GET", "/metrics", "", http.StatusOK, "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d (body %q)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.wantType) {
				t.Errorf("content-type: got %q, want prefix %q", ct, tt.wantType)
			}
			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("security headers missing")
			}
		})
	}
}

func TestContactRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	r := newTestRouter(t, Options{ContactLimiter: limiter})

	body := `{"name":"Jane","email":"jane@example.com","message":"Hi"}`
	var codes []int
	for range 2 {
		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:4000"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes: got %v, want [200 429]", codes)
	}
}

func TestRateLimitUsesForwardedClient(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	r := newTestRouter(t, Options{ChatLimiter: limiter})

	body := `{"messages":[{"role":"user","content":"hi"}]}`
	for i, ip := range []string{"198.51.100.1", "198.51.100.2"} {
		req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set("X-Real-IP", ip)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("request %d from %s: got %d, want 200", i+1, ip, rr.Code)
		}
	}
}

func TestMetricsRouteDisabled(t *testing.T) {
	r := newTestRouter(t, Options{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}
