// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host    string
	Port    string
	Env     string // "development", "production", "testing"
	SiteURL string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). An empty host disables the cache.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI chat providers
	AIProvider     string // "openai", "claude", "mistral"
	OpenAIAPIKey   string
	OpenAIModel    string
	OpenAIBaseURL  string
	ClaudeAPIKey   string
	ClaudeModel    string
	ClaudeBaseURL  string
	MistralAPIKey  string
	MistralModel   string
	MistralBaseURL string

	// SMTP relay for the contact form
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string

	// S3-compatible object storage for featured images
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// RSS feed metadata
	FeedTitle       string
	FeedDescription string
	FeedAuthor      string

	// Requests per minute per client IP
	ChatRateLimit    int
	ContactRateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Values from .env.local and .env are
// loaded first; variables already set in the environment take precedence.
// Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:    envOrDefault("APP_HOST", "0.0.0.0"),
		Port:    envOrDefault("APP_PORT", "8080"),
		Env:     envOrDefault("APP_ENV", "development"),
		SiteURL: envOrDefault("SITE_URL", "http://localhost:8080"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "devfolio"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "devfolio"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider:     envOrDefault("AI_PROVIDER", "openai"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		ClaudeAPIKey:   os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:    os.Getenv("CLAUDE_MODEL"),
		ClaudeBaseURL:  os.Getenv("CLAUDE_BASE_URL"),
		MistralAPIKey:  os.Getenv("MISTRAL_API_KEY"),
		MistralModel:   os.Getenv("MISTRAL_MODEL"),
		MistralBaseURL: os.Getenv("MISTRAL_BASE_URL"),

		SMTPHost:  envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  envOrDefault("SMTP_PORT", "587"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		FeedTitle:       envOrDefault("FEED_TITLE", "Andre Sarr"),
		FeedDescription: envOrDefault("FEED_DESCRIPTION", "Articles on security, development and AI"),
		FeedAuthor:      envOrDefault("FEED_AUTHOR", "Andre Sarr"),
	}

	var err error
	if cfg.ChatRateLimit, err = intOrDefault("CHAT_RATE_LIMIT", 20); err != nil {
		return nil, err
	}
	if cfg.ContactRateLimit, err = intOrDefault("CONTACT_RATE_LIMIT", 5); err != nil {
		return nil, err
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// loadDotEnv loads each file that exists, in order. Earlier files win over
// later ones, and the process environment wins over both.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", f, err)
	}
	return nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intOrDefault reads a positive integer environment variable.
func intOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
