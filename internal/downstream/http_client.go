package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/salesdash/proxy-api/internal/config"
)

// HTTPClient is the Client implementation over the sales-data service's
// HTTP API. It holds no per-request state and is safe for concurrent use.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure HTTPClient implements the Client interface
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the sales-data service from
// configuration. The base URL and per-call timeout come from config; no
// other transport policy (retries, backoff) is applied.
func NewHTTPClient(cfg config.DownstreamConfig) (*HTTPClient, error) {
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid downstream base URL: %w", err)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// do performs one request against the downstream service and returns the
// response body. Any non-2xx status becomes an *APIError carrying the status
// and body; transport failures are returned as-is. The request context
// propagates cancellation to the in-flight call.
func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downstream request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read downstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// get performs a GET and returns the payload unmodified.
func (c *HTTPClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *HTTPClient) Inventories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/inventories")
}

func (c *HTTPClient) LowStockInventories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/inventories/low-stock")
}

func (c *HTTPClient) ReorderInventory(ctx context.Context, productID int64) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/inventories/reorder/%d", productID), nil)
	return err
}

func (c *HTTPClient) Orders(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/orders")
}

func (c *HTTPClient) OrdersByUser(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/orders/user/%d", userID))
}

func (c *HTTPClient) CreateOrder(ctx context.Context, order OrderRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/orders", order)
	return err
}

func (c *HTTPClient) Products(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/products")
}

func (c *HTTPClient) ProductByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (c *HTTPClient) ProductsByCategory(ctx context.Context, category string) (json.RawMessage, error) {
	return c.get(ctx, "/api/products/category/"+url.PathEscape(category))
}

func (c *HTTPClient) CreateProduct(ctx context.Context, product ProductRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/products", product)
	return err
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)
	return err
}

func (c *HTTPClient) PatchProduct(ctx context.Context, id int64, ops []Operation) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d", id), ops)
	return err
}

func (c *HTTPClient) TotalRevenue(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/total-revenue/%d", year))
}

func (c *HTTPClient) TotalRevenueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/total-revenue/%d/%d", startYear, endYear))
}

func (c *HTTPClient) RevenuePerOrder(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/revenue-per-order/%d", year))
}

func (c *HTTPClient) RevenuePerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/revenue-per-order/%d/%d", startYear, endYear))
}

func (c *HTTPClient) RevenueGrowthRate(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/revenue-growth-rate/%d", year))
}

func (c *HTTPClient) RevenueGrowthRateRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/revenue-growth-rate/%d/%d", startYear, endYear))
}

func (c *HTTPClient) TotalCost(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/total-cost/%d", year))
}

func (c *HTTPClient) TotalCostRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/total-cost/%d/%d", startYear, endYear))
}

func (c *HTTPClient) CostPerOrder(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/cost-per-order/%d", year))
}

func (c *HTTPClient) CostPerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/revenues/cost-per-order/%d/%d", startYear, endYear))
}

func (c *HTTPClient) TotalOrders(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/total-orders/%d", year))
}

func (c *HTTPClient) TotalOrdersRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/total-orders/%d/%d", startYear, endYear))
}

func (c *HTTPClient) AverageOrderValue(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/aov/%d", year))
}

func (c *HTTPClient) AverageOrderValueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/aov/%d/%d", startYear, endYear))
}

func (c *HTTPClient) UsersCount(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/users-count/%d", year))
}

func (c *HTTPClient) UsersCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/user-count/%d/%d", startYear, endYear))
}

func (c *HTTPClient) OrderedUserCount(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/ordered-user/%d", year))
}

func (c *HTTPClient) OrderedUserCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/ordered-user/%d/%d", startYear, endYear))
}

func (c *HTTPClient) UnitsSold(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/unit-sold/%d", year))
}

func (c *HTTPClient) UnitsSoldRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/unit-sold/%d/%d", startYear, endYear))
}

func (c *HTTPClient) SalesGrowth(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/sales-growth/%d", year))
}

func (c *HTTPClient) SalesGrowthRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/sales-growth/%d/%d", startYear, endYear))
}

func (c *HTTPClient) PopularProduct(ctx context.Context, year int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/salesperformances/popular-product/%d", year))
}

func (c *HTTPClient) Register(ctx context.Context, user RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/users/register", user)
	return err
}

// Login resolves credentials against the sales-data service. The service
// answers an empty or null body for credentials that resolve to no user;
// that case is reported as a nil result with a nil error.
func (c *HTTPClient) Login(ctx context.Context, credentials LoginRequest) (*LoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/users/login", credentials)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var result LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	return &result, nil
}

func (c *HTTPClient) Users(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/users")
}

func (c *HTTPClient) UserByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/api/users/%d", id))
}

func (c *HTTPClient) ChangePassword(ctx context.Context, id int64, change PasswordChangeRequest) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/users/%d/change-password", id), change)
	return err
}

func (c *HTTPClient) PatchUser(ctx context.Context, id int64, ops []Operation) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/users/%d", id), ops)
	return err
}
