package middleware

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SessionIDKey is the context key for the wizard session ID.
const SessionIDKey contextKey = "session_id"

// WithSessionID returns a context carrying the session ID.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

// GetSessionID extracts the session ID from the context.
// Returns empty string if not found.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
