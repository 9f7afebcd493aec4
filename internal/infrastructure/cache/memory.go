package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a simple in-memory view cache with expiration. It is the
// default when Redis is disabled.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
}

type memoryItem struct {
	payload    string
	expireTime time.Time
}

// NewMemoryCache creates a new in-memory view cache
func NewMemoryCache() *MemoryCache {
	store := &MemoryCache{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Set stores a payload for path with an expiry
func (mc *MemoryCache) Set(ctx context.Context, path string, payload string, expiration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.items[path] = &memoryItem{
		payload:    payload,
		expireTime: time.Now().Add(expiration),
	}
}

// Get retrieves a cached payload by path (misses if absent or expired)
func (mc *MemoryCache) Get(ctx context.Context, path string) (string, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	item, exists := mc.items[path]
	if !exists {
		return "", false
	}

	// Check if expired
	if time.Now().After(item.expireTime) {
		return "", false
	}

	return item.payload, true
}

// Invalidate drops the given paths
func (mc *MemoryCache) Invalidate(ctx context.Context, paths ...string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, path := range paths {
		delete(mc.items, path)
	}
}

// cleanupExpired periodically removes expired items
func (mc *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		mc.mu.Lock()
		now := time.Now()
		for path, item := range mc.items {
			if now.After(item.expireTime) {
				delete(mc.items, path)
			}
		}
		mc.mu.Unlock()
	}
}
