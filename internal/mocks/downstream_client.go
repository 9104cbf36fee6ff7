package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/salesdash/proxy-api/internal/downstream"
)

// RecordingClient implements downstream.Client for testing. It counts every
// call per operation and records the arguments the gateway forwarded, so
// tests can verify both that the downstream was (or was not) invoked and
// exactly what it received.
type RecordingClient struct {
	mu    sync.Mutex
	calls map[string]int

	// Payload is returned by every fetch operation.
	Payload json.RawMessage

	// Err is returned by every operation when set.
	Err error

	// LoginResult is returned by Login; nil models credentials that
	// resolve to no user.
	LoginResult *downstream.LoginResult

	// Recorded arguments from the most recent calls
	LastPatchID    int64
	LastPatchOps   []downstream.Operation
	LastLogin      downstream.LoginRequest
	LastRegister   downstream.RegisterRequest
	LastOrder      downstream.OrderRequest
	LastProduct    downstream.ProductRequest
	LastReorderID  int64
	LastPassword   downstream.PasswordChangeRequest
	LastPasswordID int64
}

// Ensure RecordingClient implements the downstream.Client interface
var _ downstream.Client = (*RecordingClient)(nil)

// NewRecordingClient creates a recording client that answers every fetch
// with the given payload.
func NewRecordingClient(payload json.RawMessage) *RecordingClient {
	return &RecordingClient{
		calls:   make(map[string]int),
		Payload: payload,
	}
}

// record notes one invocation of the named operation.
func (c *RecordingClient) record(operation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[operation]++
}

// CallCount returns how often the named operation was invoked.
func (c *RecordingClient) CallCount(operation string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[operation]
}

// TotalCalls returns how often any operation was invoked.
func (c *RecordingClient) TotalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

func (c *RecordingClient) fetch(operation string) (json.RawMessage, error) {
	c.record(operation)
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Payload, nil
}

func (c *RecordingClient) command(operation string) error {
	c.record(operation)
	return c.Err
}

func (c *RecordingClient) Inventories(ctx context.Context) (json.RawMessage, error) {
	return c.fetch("Inventories")
}

func (c *RecordingClient) LowStockInventories(ctx context.Context) (json.RawMessage, error) {
	return c.fetch("LowStockInventories")
}

func (c *RecordingClient) ReorderInventory(ctx context.Context, productID int64) error {
	c.mu.Lock()
	c.LastReorderID = productID
	c.mu.Unlock()
	return c.command("ReorderInventory")
}

func (c *RecordingClient) Orders(ctx context.Context) (json.RawMessage, error) {
	return c.fetch("Orders")
}

func (c *RecordingClient) OrdersByUser(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.fetch("OrdersByUser")
}

func (c *RecordingClient) CreateOrder(ctx context.Context, order downstream.OrderRequest) error {
	c.mu.Lock()
	c.LastOrder = order
	c.mu.Unlock()
	return c.command("CreateOrder")
}

func (c *RecordingClient) Products(ctx context.Context) (json.RawMessage, error) {
	return c.fetch("Products")
}

func (c *RecordingClient) ProductByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.fetch("ProductByID")
}

func (c *RecordingClient) ProductsByCategory(ctx context.Context, category string) (json.RawMessage, error) {
	return c.fetch("ProductsByCategory")
}

func (c *RecordingClient) CreateProduct(ctx context.Context, product downstream.ProductRequest) error {
	c.mu.Lock()
	c.LastProduct = product
	c.mu.Unlock()
	return c.command("CreateProduct")
}

func (c *RecordingClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.command("DeleteProduct")
}

func (c *RecordingClient) PatchProduct(ctx context.Context, id int64, ops []downstream.Operation) error {
	c.mu.Lock()
	c.LastPatchID = id
	c.LastPatchOps = ops
	c.mu.Unlock()
	return c.command("PatchProduct")
}

func (c *RecordingClient) TotalRevenue(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("TotalRevenue")
}

func (c *RecordingClient) TotalRevenueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("TotalRevenueRange")
}

func (c *RecordingClient) RevenuePerOrder(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("RevenuePerOrder")
}

func (c *RecordingClient) RevenuePerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("RevenuePerOrderRange")
}

func (c *RecordingClient) RevenueGrowthRate(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("RevenueGrowthRate")
}

func (c *RecordingClient) RevenueGrowthRateRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("RevenueGrowthRateRange")
}

func (c *RecordingClient) TotalCost(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("TotalCost")
}

func (c *RecordingClient) TotalCostRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("TotalCostRange")
}

func (c *RecordingClient) CostPerOrder(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("CostPerOrder")
}

func (c *RecordingClient) CostPerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("CostPerOrderRange")
}

func (c *RecordingClient) TotalOrders(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("TotalOrders")
}

func (c *RecordingClient) TotalOrdersRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("TotalOrdersRange")
}

func (c *RecordingClient) AverageOrderValue(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("AverageOrderValue")
}

func (c *RecordingClient) AverageOrderValueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("AverageOrderValueRange")
}

func (c *RecordingClient) UsersCount(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("UsersCount")
}

func (c *RecordingClient) UsersCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("UsersCountRange")
}

func (c *RecordingClient) OrderedUserCount(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("OrderedUserCount")
}

func (c *RecordingClient) OrderedUserCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("OrderedUserCountRange")
}

func (c *RecordingClient) UnitsSold(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("UnitsSold")
}

func (c *RecordingClient) UnitsSoldRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("UnitsSoldRange")
}

func (c *RecordingClient) SalesGrowth(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("SalesGrowth")
}

func (c *RecordingClient) SalesGrowthRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error) {
	return c.fetch("SalesGrowthRange")
}

func (c *RecordingClient) PopularProduct(ctx context.Context, year int) (json.RawMessage, error) {
	return c.fetch("PopularProduct")
}

func (c *RecordingClient) Register(ctx context.Context, user downstream.RegisterRequest) error {
	c.mu.Lock()
	c.LastRegister = user
	c.mu.Unlock()
	return c.command("Register")
}

func (c *RecordingClient) Login(ctx context.Context, credentials downstream.LoginRequest) (*downstream.LoginResult, error) {
	c.mu.Lock()
	c.LastLogin = credentials
	c.mu.Unlock()
	c.record("Login")
	if c.Err != nil {
		return nil, c.Err
	}
	return c.LoginResult, nil
}

func (c *RecordingClient) Users(ctx context.Context) (json.RawMessage, error) {
	return c.fetch("Users")
}

func (c *RecordingClient) UserByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.fetch("UserByID")
}

func (c *RecordingClient) ChangePassword(ctx context.Context, id int64, change downstream.PasswordChangeRequest) error {
	c.mu.Lock()
	c.LastPasswordID = id
	c.LastPassword = change
	c.mu.Unlock()
	return c.command("ChangePassword")
}

func (c *RecordingClient) PatchUser(ctx context.Context, id int64, ops []downstream.Operation) error {
	c.mu.Lock()
	c.LastPatchID = id
	c.LastPatchOps = ops
	c.mu.Unlock()
	return c.command("PatchUser")
}
