package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/salesdash/proxy-api/internal/service/auth"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

const (
	// ClaimsContextKey is the context key for the authenticated caller's claims
	ClaimsContextKey ContextKey = "claims"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context. Trace IDs correlate the
// server-side log entries with the (deliberately uninformative) error
// responses sent to clients.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetClaims adds validated token claims to the context.
func SetClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// GetClaims retrieves the authenticated caller's claims from the context.
// Returns nil and false when the request carried no validated token.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
