package downstream

import (
	"context"
	"encoding/json"
)

// Client is the call surface of the sales-data service. Fetch operations
// return the service's payload as raw JSON; the gateway forwards it without
// reshaping. Every method performs exactly one call and returns either a
// value or an error; mutating operations return only an error.
type Client interface {
	// Inventory operations
	Inventories(ctx context.Context) (json.RawMessage, error)
	LowStockInventories(ctx context.Context) (json.RawMessage, error)
	ReorderInventory(ctx context.Context, productID int64) error

	// Order operations
	Orders(ctx context.Context) (json.RawMessage, error)
	OrdersByUser(ctx context.Context, userID int64) (json.RawMessage, error)
	CreateOrder(ctx context.Context, order OrderRequest) error

	// Product operations
	Products(ctx context.Context) (json.RawMessage, error)
	ProductByID(ctx context.Context, id int64) (json.RawMessage, error)
	ProductsByCategory(ctx context.Context, category string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, product ProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
	PatchProduct(ctx context.Context, id int64, ops []Operation) error

	// Revenue operations, each with a single-year and a year-range variant
	TotalRevenue(ctx context.Context, year int) (json.RawMessage, error)
	TotalRevenueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	RevenuePerOrder(ctx context.Context, year int) (json.RawMessage, error)
	RevenuePerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	RevenueGrowthRate(ctx context.Context, year int) (json.RawMessage, error)
	RevenueGrowthRateRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	TotalCost(ctx context.Context, year int) (json.RawMessage, error)
	TotalCostRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	CostPerOrder(ctx context.Context, year int) (json.RawMessage, error)
	CostPerOrderRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)

	// Sales performance operations
	TotalOrders(ctx context.Context, year int) (json.RawMessage, error)
	TotalOrdersRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	AverageOrderValue(ctx context.Context, year int) (json.RawMessage, error)
	AverageOrderValueRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	UsersCount(ctx context.Context, year int) (json.RawMessage, error)
	UsersCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	OrderedUserCount(ctx context.Context, year int) (json.RawMessage, error)
	OrderedUserCountRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	UnitsSold(ctx context.Context, year int) (json.RawMessage, error)
	UnitsSoldRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	SalesGrowth(ctx context.Context, year int) (json.RawMessage, error)
	SalesGrowthRange(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	PopularProduct(ctx context.Context, year int) (json.RawMessage, error)

	// User operations
	Register(ctx context.Context, user RegisterRequest) error
	Login(ctx context.Context, credentials LoginRequest) (*LoginResult, error)
	Users(ctx context.Context) (json.RawMessage, error)
	UserByID(ctx context.Context, id int64) (json.RawMessage, error)
	ChangePassword(ctx context.Context, id int64, change PasswordChangeRequest) error
	PatchUser(ctx context.Context, id int64, ops []Operation) error
}
