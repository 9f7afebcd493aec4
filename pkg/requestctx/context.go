// Package requestctx carries per-request credentials through context so the
// remote store can forward the caller's session cookie on outbound calls.
package requestctx

import (
	"context"
)

type contextKey string

const (
	keySessionCookie contextKey = "session_cookie"
	keyUserID        contextKey = "user_id"
)

// WithSessionCookie attaches the caller's raw Cookie header value.
func WithSessionCookie(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, keySessionCookie, cookie)
}

// SessionCookie extracts the raw Cookie header value, empty when absent.
func SessionCookie(ctx context.Context) string {
	cookie, _ := ctx.Value(keySessionCookie).(string)
	return cookie
}

// WithUserID attaches the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

// UserID extracts the authenticated user id from context.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(keyUserID).(string)
	return userID, ok
}
