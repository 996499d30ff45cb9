package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type payload struct {
	Country string `json:"country"`
	Total   int    `json:"total"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(rdb), mr
}

func TestCache_SetAndGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	stored := payload{Country: "Dominican Republic", Total: 42}
	if err := c.SetJSON(ctx, "insights:summary", stored, time.Minute); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	var loaded payload
	found, err := c.GetJSON(ctx, "insights:summary", &loaded)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if loaded != stored {
		t.Fatalf("expected %+v, got %+v", stored, loaded)
	}
}

func TestCache_GetJSON_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var loaded payload
	found, err := c.GetJSON(context.Background(), "absent", &loaded)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if found {
		t.Fatal("expected cache miss")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", payload{Total: 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	var loaded payload
	found, err := c.GetJSON(ctx, "k", &loaded)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if found {
		t.Fatal("expected expired key to miss")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "insights:summary", payload{Total: 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	if err := c.Invalidate(ctx, "insights:summary"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}

	var loaded payload
	found, err := c.GetJSON(ctx, "insights:summary", &loaded)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if found {
		t.Fatal("expected invalidated key to miss")
	}

	// Deleting an absent key is not an error.
	if err := c.Invalidate(ctx, "absent"); err != nil {
		t.Fatalf("Invalidate of absent key failed: %v", err)
	}
}

func TestCache_NilCacheIsDisabled(t *testing.T) {
	var c *Cache

	if err := c.SetJSON(context.Background(), "k", payload{}, time.Minute); err != nil {
		t.Fatalf("nil cache SetJSON should be a no-op, got %v", err)
	}
	var loaded payload
	found, err := c.GetJSON(context.Background(), "k", &loaded)
	if err != nil || found {
		t.Fatalf("nil cache GetJSON should miss silently, got found=%v err=%v", found, err)
	}
	if err := c.Invalidate(context.Background(), "k"); err != nil {
		t.Fatalf("nil cache Invalidate should be a no-op, got %v", err)
	}
}
