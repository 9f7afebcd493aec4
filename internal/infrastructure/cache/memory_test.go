package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	mc.Set(ctx, "/", `[{"id":"meeting-1"}]`, time.Minute)

	payload, ok := mc.Get(ctx, "/")
	if !ok || payload != `[{"id":"meeting-1"}]` {
		t.Fatalf("unexpected hit (%q, %v)", payload, ok)
	}

	if _, ok := mc.Get(ctx, "/meetings/unknown"); ok {
		t.Fatal("expected a miss for an unset path")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	mc.Set(ctx, "/", "payload", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := mc.Get(ctx, "/"); ok {
		t.Fatal("expected an expired entry to miss")
	}
}

func TestMemoryCache_Invalidate(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	mc.Set(ctx, "/", "a", time.Minute)
	mc.Set(ctx, "/meetings/new", "b", time.Minute)
	mc.Set(ctx, "/meetings/meeting-1", "c", time.Minute)

	mc.Invalidate(ctx, "/", "/meetings/new")

	if _, ok := mc.Get(ctx, "/"); ok {
		t.Fatal("dashboard view should be invalidated")
	}
	if _, ok := mc.Get(ctx, "/meetings/new"); ok {
		t.Fatal("form view should be invalidated")
	}
	if _, ok := mc.Get(ctx, "/meetings/meeting-1"); !ok {
		t.Fatal("untouched view should survive")
	}
}
