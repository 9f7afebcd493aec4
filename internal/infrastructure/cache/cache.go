package cache

import (
	"context"
	"time"
)

// ViewCache holds rendered view payloads keyed by their request path.
// Mutations call Invalidate with every path whose rendering they changed,
// mirroring how the dashboard and detail pages are revalidated.
type ViewCache interface {
	// Get returns the cached payload for path, if present and fresh.
	Get(ctx context.Context, path string) (string, bool)

	// Set stores a payload for path with an expiry.
	Set(ctx context.Context, path string, payload string, expiration time.Duration)

	// Invalidate drops the given paths. Unknown paths are ignored.
	Invalidate(ctx context.Context, paths ...string)
}
