// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, renderKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConnectValkeyDisabled(t *testing.T) {
	client, err := ConnectValkey("", "6379", "")
	if err != nil {
		t.Fatalf("ConnectValkey: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when host is empty")
	}
}

func TestNilRenderCache(t *testing.T) {
	rc := NewRenderCache(nil, 0)
	if rc != nil {
		t.Fatal("expected nil cache for nil client")
	}

	ctx := context.Background()
	if _, ok := rc.Get(ctx, "k"); ok {
		t.Error("nil cache should miss")
	}
	rc.Set(ctx, "k", "<p>x</p>")

	calls := 0
	html, err := rc.GetOrRender(ctx, "k", func() (string, error) {
		calls++
		return "<p>fresh</p>", nil
	})
	if err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}
	if html != "<p>fresh</p>" || calls != 1 {
		t.Errorf("got %q after %d calls", html, calls)
	}

	if n, err := rc.InvalidateAll(ctx); n != 0 || err != nil {
		t.Errorf("InvalidateAll: %d, %v", n, err)
	}
}

func TestArticleKeyChangesWithUpdate(t *testing.T) {
	id := uuid.New()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if ArticleKey(id, t0) == ArticleKey(id, t0.Add(time.Second)) {
		t.Error("key must change when the article is updated")
	}
	if ArticleKey(id, t0) != ArticleKey(id, t0) {
		t.Error("key must be stable for the same revision")
	}
}

func TestRenderCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, time.Minute)
	ctx := context.Background()

	key := ArticleKey(uuid.New(), time.Now())
	if _, ok := rc.Get(ctx, key); ok {
		t.Fatal("expected miss before Set")
	}

	rc.Set(ctx, key, "<h2>Hello</h2>")
	got, ok := rc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != "<h2>Hello</h2>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderCacheGetOrRender(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, time.Minute)
	ctx := context.Background()
	key := ArticleKey(uuid.New(), time.Now())

	calls := 0
	render := func() (string, error) {
		calls++
		return "<p>rendered</p>", nil
	}

	for i := 0; i < 3; i++ {
		html, err := rc.GetOrRender(ctx, key, render)
		if err != nil {
			t.Fatalf("GetOrRender: %v", err)
		}
		if html != "<p>rendered</p>" {
			t.Errorf("got %q", html)
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}

func TestRenderCacheErrorNotCached(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, time.Minute)
	ctx := context.Background()
	key := ArticleKey(uuid.New(), time.Now())

	boom := errors.New("boom")
	if _, err := rc.GetOrRender(ctx, key, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if _, ok := rc.Get(ctx, key); ok {
		t.Error("failed render must not be cached")
	}
}

func TestRenderCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, "a", "1")
	rc.Set(ctx, "b", "2")

	n, err := rc.InvalidateAll(ctx)
	if err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}
	if n < 2 {
		t.Errorf("deleted %d keys, want at least 2", n)
	}
	if _, ok := rc.Get(ctx, "a"); ok {
		t.Error("expected miss after InvalidateAll")
	}
}
