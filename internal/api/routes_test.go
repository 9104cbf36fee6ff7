package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/salesdash/proxy-api/internal/api/middleware"
	"github.com/salesdash/proxy-api/internal/downstream"
	"github.com/salesdash/proxy-api/internal/mocks"
	"github.com/salesdash/proxy-api/internal/service/auth"
)

// validTestToken is the only token the test JWT service accepts.
const validTestToken = "valid-test-token"

// newTestRouter assembles a router over the route table the same way the
// server does: public entries registered directly, authenticated entries
// behind the auth middleware.
func newTestRouter(client downstream.Client) http.Handler {
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			if tokenString == validTestToken {
				return &auth.Claims{Subject: "7", Role: "admin"}, nil
			}
			return nil, auth.ErrInvalidToken
		},
	}

	r := chi.NewRouter()
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService)

	routes := Routes(client)
	for _, route := range routes {
		if route.Tier == TierPublic {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	}
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		for _, route := range routes {
			if route.Tier == TierAuthenticated {
				r.Method(route.Method, route.Pattern, route.Handler)
			}
		}
	})

	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	t.Parallel()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/inventories"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/revenues/total-revenue/2023"},
		{http.MethodGet, "/api/salesperformances/popular-product/2023"},
		{http.MethodPost, "/api/products"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodPatch, "/api/products/1"},
	}

	for _, route := range protected {
		route := route
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRecordingClient(json.RawMessage(`[]`))
			router := newTestRouter(client)

			recorder := doRequest(t, router, route.method, route.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, recorder.Body.String())
			assert.Zero(t, client.TotalCalls(), "downstream must not be invoked for a denied request")
		})
	}
}

func TestProtectedRoutes_RejectInvalidToken(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(json.RawMessage(`{}`))
	router := newTestRouter(client)

	recorder := doRequest(t, router, http.MethodGet, "/api/revenues/total-revenue/2023", "expired-or-garbage", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, client.CallCount("TotalRevenue"))
}

func TestPublicRoutes_ForwardWithoutToken(t *testing.T) {
	t.Parallel()

	payload := `[{"id":1,"name":"Widget","price":4.5}]`
	client := mocks.NewRecordingClient(json.RawMessage(payload))
	router := newTestRouter(client)

	tests := []struct {
		path      string
		operation string
	}{
		{"/api/products", "Products"},
		{"/api/products/42", "ProductByID"},
		{"/api/products/category/tools", "ProductsByCategory"},
	}

	for _, tt := range tests {
		recorder := doRequest(t, router, http.MethodGet, tt.path, "", "")

		assert.Equal(t, http.StatusOK, recorder.Code, tt.path)
		assert.JSONEq(t, payload, recorder.Body.String(), "payload must be forwarded unmodified")
		assert.Equal(t, 1, client.CallCount(tt.operation))
	}
}

func TestAuthenticatedFetch_ForwardsPayload(t *testing.T) {
	t.Parallel()

	payload := `{"year":2023,"totalRevenue":123456.78}`
	client := mocks.NewRecordingClient(json.RawMessage(payload))
	router := newTestRouter(client)

	recorder := doRequest(t, router, http.MethodGet, "/api/revenues/total-revenue/2023", validTestToken, "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, payload, recorder.Body.String())
	assert.Equal(t, 1, client.CallCount("TotalRevenue"))
}

func TestYearRangeRoutes_Dispatch(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(json.RawMessage(`[]`))
	router := newTestRouter(client)

	tests := []struct {
		path      string
		operation string
	}{
		{"/api/revenues/total-revenue/2020/2023", "TotalRevenueRange"},
		{"/api/revenues/cost-per-order/2020/2023", "CostPerOrderRange"},
		{"/api/salesperformances/aov/2020/2023", "AverageOrderValueRange"},
		{"/api/salesperformances/user-count/2020/2023", "UsersCountRange"},
		{"/api/salesperformances/unit-sold/2020/2023", "UnitsSoldRange"},
	}

	for _, tt := range tests {
		recorder := doRequest(t, router, http.MethodGet, tt.path, validTestToken, "")

		assert.Equal(t, http.StatusOK, recorder.Code, tt.path)
		assert.Equal(t, 1, client.CallCount(tt.operation), tt.path)
	}
}

func TestDownstreamFailure_NormalizedShapeIsInvariant(t *testing.T) {
	t.Parallel()

	failures := []struct {
		name string
		err  error
	}{
		{"downstream 404", &downstream.APIError{StatusCode: http.StatusNotFound, Body: "no such product"}},
		{"downstream 400", &downstream.APIError{StatusCode: http.StatusBadRequest, Body: `{"detail":"bad"}`}},
		{"downstream 409", &downstream.APIError{StatusCode: http.StatusConflict, Body: "conflict"}},
		{"downstream 500", &downstream.APIError{StatusCode: http.StatusInternalServerError, Body: "boom"}},
		{"transport failure", errors.New("dial tcp: connection refused")},
	}

	requests := []struct {
		method string
		path   string
		token  string
		body   string
	}{
		{http.MethodGet, "/api/products", "", ""},
		{http.MethodGet, "/api/orders", validTestToken, ""},
		{http.MethodGet, "/api/salesperformances/sales-growth/2023", validTestToken, ""},
		{http.MethodDelete, "/api/products/3", validTestToken, ""},
		{http.MethodPatch, "/api/users/3", validTestToken, `[{"op":"replace","path":"/userName","value":"x"}]`},
	}

	for _, failure := range failures {
		failure := failure
		t.Run(failure.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRecordingClient(nil)
			client.Err = failure.err
			router := newTestRouter(client)

			for _, req := range requests {
				recorder := doRequest(t, router, req.method, req.path, req.token, req.body)

				assert.Equal(t, http.StatusInternalServerError, recorder.Code,
					"%s %s", req.method, req.path)
				assert.JSONEq(t, `{"error":"Could not process due to some error"}`,
					recorder.Body.String(), "%s %s", req.method, req.path)
			}
		})
	}
}

func TestPatchProduct_TranslatesAndForwardsOperations(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(nil)
	router := newTestRouter(client)

	body := `[{"op":"replace","path":"/price","value":19.99}]`
	recorder := doRequest(t, router, http.MethodPatch, "/api/products/42", validTestToken, body)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	assert.Equal(t, int64(42), client.LastPatchID)
	require.Len(t, client.LastPatchOps, 1)
	op := client.LastPatchOps[0]
	assert.Equal(t, "replace", op.Op)
	assert.Equal(t, "/price", op.Path)
	assert.Empty(t, op.From)
	assert.JSONEq(t, `19.99`, string(op.Value))
}

func TestPatchUser_PreservesOperationOrder(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(nil)
	router := newTestRouter(client)

	body := `[
		{"op":"replace","path":"/userName","value":"alice"},
		{"op":"move","path":"/userEmail","from":"/contactEmail"},
		{"op":"remove","path":"/contactEmail"}
	]`
	recorder := doRequest(t, router, http.MethodPatch, "/api/users/7", validTestToken, body)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	require.Len(t, client.LastPatchOps, 3)
	assert.Equal(t, "replace", client.LastPatchOps[0].Op)
	assert.Equal(t, "move", client.LastPatchOps[1].Op)
	assert.Equal(t, "/contactEmail", client.LastPatchOps[1].From)
	assert.Equal(t, "remove", client.LastPatchOps[2].Op)
}

func TestCommandRoutes_SuccessStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		operation  string
	}{
		{
			name:       "create product responds 201 with no body",
			method:     http.MethodPost,
			path:       "/api/products",
			body:       `{"name":"Widget","category":"tools","price":4.5}`,
			wantStatus: http.StatusCreated,
			operation:  "CreateProduct",
		},
		{
			name:       "create order responds 200 with no body",
			method:     http.MethodPost,
			path:       "/api/orders",
			body:       `{"userId":7,"items":[{"productId":1,"quantity":2}]}`,
			wantStatus: http.StatusOK,
			operation:  "CreateOrder",
		},
		{
			name:       "reorder responds 200 with no body",
			method:     http.MethodPost,
			path:       "/api/inventories/reorder/5",
			wantStatus: http.StatusOK,
			operation:  "ReorderInventory",
		},
		{
			name:       "delete product responds 204",
			method:     http.MethodDelete,
			path:       "/api/products/5",
			wantStatus: http.StatusNoContent,
			operation:  "DeleteProduct",
		},
		{
			name:       "change password responds 204",
			method:     http.MethodPost,
			path:       "/api/users/7/change-password",
			body:       `{"oldPassword":"old-password","newPassword":"new-password"}`,
			wantStatus: http.StatusNoContent,
			operation:  "ChangePassword",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRecordingClient(nil)
			router := newTestRouter(client)

			recorder := doRequest(t, router, tt.method, tt.path, validTestToken, tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Empty(t, recorder.Body.String())
			assert.Equal(t, 1, client.CallCount(tt.operation))
		})
	}
}

func TestInvalidPathParameter_RejectedBeforeDownstream(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(nil)
	router := newTestRouter(client)

	recorder := doRequest(t, router, http.MethodGet, "/api/users/not-a-number", validTestToken, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, client.TotalCalls())
}

func TestRegister_ValidationRejectedBeforeDownstream(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(nil)
	router := newTestRouter(client)

	// Missing required fields never reach the downstream service.
	recorder := doRequest(t, router, http.MethodPost, "/api/users/register", "", `{"userName":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, client.CallCount("Register"))
}

func TestRegister_ForwardsWithoutToken(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(nil)
	router := newTestRouter(client)

	body := `{"userName":"alice","userEmail":"alice@example.com","password":"long-enough-password"}`
	recorder := doRequest(t, router, http.MethodPost, "/api/users/register", "", body)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, client.CallCount("Register"))
	assert.Equal(t, "alice@example.com", client.LastRegister.UserEmail)
}

func TestConcurrentRoutes_NoInteraction(t *testing.T) {
	t.Parallel()

	client := mocks.NewRecordingClient(json.RawMessage(`[]`))
	router := newTestRouter(client)

	const callers = 8
	var wg sync.WaitGroup
	codes := make([]int, callers*2)

	for i := 0; i < callers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			recorder := doRequest(t, router, http.MethodGet, "/api/orders", validTestToken, "")
			codes[i*2] = recorder.Code
		}(i)
		go func(i int) {
			defer wg.Done()
			recorder := doRequest(t, router, http.MethodGet, "/api/products", "", "")
			codes[i*2+1] = recorder.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
	assert.Equal(t, callers, client.CallCount("Orders"))
	assert.Equal(t, callers, client.CallCount("Products"))
}
