package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryCache_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	if err := cache.Set(ctx, "short", "a", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set(ctx, "forever", "b", 0); err != nil {
		t.Fatal(err)
	}

	if v, ok := cache.Get(ctx, "short"); !ok || v != "a" {
		t.Fatalf("expected hit, got %q %v", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := cache.Get(ctx, "short"); ok {
		t.Error("expected entry to expire")
	}
	if v, ok := cache.Get(ctx, "forever"); !ok || v != "b" {
		t.Errorf("entry without ttl should persist, got %q %v", v, ok)
	}
}

func TestMemoryCache_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	_ = cache.Set(ctx, "a", "1", time.Second)
	_ = cache.Set(ctx, "b", "2", time.Hour)
	now = now.Add(time.Minute)

	if removed := cache.Sweep(); removed != 1 {
		t.Errorf("expected 1 eviction, got %d", removed)
	}
	if _, ok := cache.Get(ctx, "b"); !ok {
		t.Error("unexpired entry was evicted")
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("DEAL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("DEAL_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	cache := NewRedisCache(client, "dealcalc-test-"+time.Now().Format("150405.000000"))
	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("expected miss")
	}
	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := cache.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("expected hit, got %q %v", v, ok)
	}
}
