// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the devfolio blog server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/ai"
	"devfolio/internal/blog"
	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/database"
	"devfolio/internal/feed"
	"devfolio/internal/handlers"
	"devfolio/internal/mail"
	"devfolio/internal/middleware"
	"devfolio/internal/render"
	"devfolio/internal/router"
	"devfolio/internal/storage"
	"devfolio/internal/store"
	"devfolio/web"
)

func main() {
	// Load configuration from the environment and .env files.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	if cfg.Env == "production" {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"site_url", cfg.SiteURL,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed sample content (no-op if articles already exist).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Valkey is optional; without it articles are rendered on every request.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	if valkeyClient != nil {
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured, render cache disabled")
	}

	// S3 storage is optional; featured_image keys are then served as-is.
	storageClient, err := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured, image keys will not be resolved")
	}

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"claude":  {APIKey: cfg.ClaudeAPIKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralAPIKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})
	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.EmailUser,
		Password: cfg.EmailPass,
	})
	if cfg.EmailUser == "" {
		slog.Warn("EMAIL_USER not set, contact form disabled")
	}

	content := &handlers.Content{
		Blog:    blog.NewService(store.NewArticleStore(db)),
		Renders: cache.NewRenderCache(valkeyClient, cache.DefaultRenderTTL),
		Storage: storageClient,
		SiteURL: cfg.SiteURL,
	}
	publicHandlers := handlers.NewPublic(content, renderer, feed.Config{
		Title:       cfg.FeedTitle,
		Description: cfg.FeedDescription,
		Author:      cfg.FeedAuthor,
		SiteURL:     cfg.SiteURL,
	})
	apiHandlers := handlers.NewAPI(content, store.NewCategoryStore(db), ai.NewAssistant(aiRegistry), mailer)

	chatLimiter := middleware.NewRateLimiter(cfg.ChatRateLimit, time.Minute)
	defer chatLimiter.Stop()
	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, time.Minute)
	defer contactLimiter.Stop()

	r := router.New(publicHandlers, apiHandlers, router.Options{
		Metrics:        middleware.NewMetrics(),
		ChatLimiter:    chatLimiter,
		ContactLimiter: contactLimiter,
		Static:         web.StaticFS(),
	})

	// WriteTimeout must accommodate chat requests that wait on the LLM.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
