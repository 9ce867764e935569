// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// render.go caches article markdown rendered to HTML. Keys embed the
// article's updated_at, so an edited article misses and is re-rendered;
// stale entries simply expire. Article rows themselves are never cached.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	renderKeyPrefix = "render:"

	// DefaultRenderTTL is how long rendered HTML stays cached.
	DefaultRenderTTL = 24 * time.Hour
)

// RenderCache stores rendered article HTML in Valkey. A nil *RenderCache
// is valid and always misses.
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache creates a render cache backed by client. It returns nil
// when client is nil.
func NewRenderCache(client *redis.Client, ttl time.Duration) *RenderCache {
	if client == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultRenderTTL
	}
	return &RenderCache{client: client, ttl: ttl}
}

// ArticleKey returns the cache key for an article revision.
func ArticleKey(id uuid.UUID, updatedAt time.Time) string {
	return fmt.Sprintf("%s:%d", id, updatedAt.UnixNano())
}

// Get returns the cached HTML for key.
func (rc *RenderCache) Get(ctx context.Context, key string) (string, bool) {
	if rc == nil {
		return "", false
	}
	val, err := rc.client.Get(ctx, renderKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		slog.Warn("render cache get error", "key", key, "error", err)
		return "", false
	}
	slog.Debug("render cache hit", "key", key)
	return val, true
}

// Set stores html under key with the configured TTL.
func (rc *RenderCache) Set(ctx context.Context, key, html string) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, renderKeyPrefix+key, html, rc.ttl).Err(); err != nil {
		slog.Warn("render cache set error", "key", key, "error", err)
	}
}

// GetOrRender returns the cached HTML for key, or calls render and caches
// its result. Render errors are returned and nothing is cached.
func (rc *RenderCache) GetOrRender(ctx context.Context, key string, render func() (string, error)) (string, error) {
	if html, ok := rc.Get(ctx, key); ok {
		return html, nil
	}
	html, err := render()
	if err != nil {
		return "", err
	}
	rc.Set(ctx, key, html)
	return html, nil
}

// InvalidateAll removes every cached rendering and returns how many keys
// were deleted.
func (rc *RenderCache) InvalidateAll(ctx context.Context) (int, error) {
	if rc == nil {
		return 0, nil
	}
	var cursor uint64
	var deleted int
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, renderKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("render cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, fmt.Errorf("render cache delete: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("render cache cleared", "deleted", deleted)
	}
	return deleted, nil
}
