package auth

import (
	"context"
	"time"
)

// JWTService defines operations for validating and minting JWT bearer tokens.
type JWTService interface {
	// ValidateToken validates the provided token string against the
	// configured signing key, issuer, audience, and expiry, and extracts
	// the claims. Returns the claims if the token passes every check, or
	// an error describing which check failed. The error detail is for
	// server-side diagnostics only and must never reach a client.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateToken creates a signed token carrying the given subject and
	// role, shaped exactly like the tokens the identity process issues.
	// Used for development fixtures and tests; the gateway itself never
	// issues tokens on the login path.
	GenerateToken(ctx context.Context, subject, role string) (string, error)
}

// Claims represents the attributes asserted by a validated token.
type Claims struct {
	// Subject is the unique identifier of the user the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Role is the caller's role claim. It is carried through to handlers
	// but not enforced by the authorization gate.
	Role string `json:"role,omitempty"`

	// Standard registered JWT claims
	Issuer    string    `json:"iss,omitempty"`
	Audience  string    `json:"aud,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
