package api

import (
	"log/slog"
	"net/http"

	"github.com/salesdash/proxy-api/internal/api/shared"
	"github.com/salesdash/proxy-api/internal/downstream"
)

// UserHandler handles the user endpoints whose outcome mapping differs from
// the generic dispatch contract.
type UserHandler struct {
	client downstream.Client
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(client downstream.Client) *UserHandler {
	return &UserHandler{client: client}
}

// loginResponse is the payload a successful login returns to the dashboard.
type loginResponse struct {
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserRole  string `json:"userRole"`
	Token     string `json:"token"`
}

// Login handles POST /api/users/login. Credentials are resolved by the
// downstream service; credentials that resolve to no user are a business
// outcome, answered with 401 "Invalid Credentials" rather than the opaque
// token-validation body. Downstream failures map to the normalized 500 like
// every other route.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req downstream.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.client.Login(r.Context(), req)
	if err != nil {
		respondDownstreamFailure(w, r, "Login", err)
		return
	}

	if user == nil {
		slog.Debug("login rejected: credentials resolve to no user",
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, loginResponse{
		UserID:    user.UserID,
		UserName:  user.UserName,
		UserEmail: user.UserEmail,
		UserRole:  user.UserRole,
		Token:     user.Token,
	})
}
