package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/salesdash/proxy-api/internal/api/shared"
	"github.com/salesdash/proxy-api/internal/service/auth"
)

// unauthorizedMessage is the only body detail a rejected caller ever sees.
// Which validation step failed is logged server-side and never echoed.
const unauthorizedMessage = "Unauthorized"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the caller's claims to the request context. Requests that fail any check
// are short-circuited with an opaque 401 before reaching the handler, so a
// denied request never triggers a downstream call.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			slog.Debug("request rejected: missing Authorization header",
				"path", r.URL.Path, "trace_id", shared.GetTraceID(r.Context()))
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			slog.Debug("request rejected: malformed Authorization header",
				"path", r.URL.Path, "trace_id", shared.GetTraceID(r.Context()))
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			// The sentinel error says which check failed; that detail
			// stays in the log.
			slog.Debug("request rejected: token validation failed",
				"error", err,
				"path", r.URL.Path,
				"trace_id", shared.GetTraceID(r.Context()))
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		ctx := shared.SetClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts the authenticated caller's claims from the request.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	return shared.GetClaims(r.Context())
}
