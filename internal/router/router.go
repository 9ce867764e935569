// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// devfolio server. Routes are organised into the server-rendered blog and
// the JSON API.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"devfolio/internal/handlers"
	"devfolio/internal/middleware"
)

// Options carries the router's shared infrastructure. A nil Metrics
// disables instrumentation and /metrics; a nil limiter leaves its route
// unlimited; a nil Static disables /static/.
type Options struct {
	Metrics        *middleware.Metrics
	ChatLimiter    *middleware.RateLimiter
	ContactLimiter *middleware.RateLimiter
	Static         fs.FS
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, api *handlers.API, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/health", healthHandler)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	// Server-rendered blog.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blog", http.StatusFound)
	})
	r.Get("/sitemap.xml", public.Sitemap)
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", public.BlogIndex)
		r.Get("/rss.xml", public.RSS)
		r.Get("/{slug}", public.Article)
	})

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", api.Articles)
		r.Get("/articles/{slug}", api.Article)
		r.Get("/categories", api.Categories)

		r.With(limit(opts.ChatLimiter)).Post("/chat", api.Chat)
		r.With(limit(opts.ContactLimiter)).Post("/contact", api.Contact)
	})

	r.NotFound(public.NotFound)

	return r
}

// limit returns rl's middleware, or a pass-through when rl is nil.
func limit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
