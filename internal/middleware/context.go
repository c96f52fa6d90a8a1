package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID      ctxKey = "req_id"
	ctxKeyIsHTMX         ctxKey = "is_htmx"
	ctxKeySession        ctxKey = "session"
	ctxKeyBackendSession ctxKey = "backend_session"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithBackendSession stores the opaque backend session token in context.
func WithBackendSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyBackendSession, token)
}

// BackendSessionFromContext returns the backend session token, empty when
// the visitor is not signed in.
func BackendSessionFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyBackendSession).(string)
	return v
}
