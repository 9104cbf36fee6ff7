package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/salesdash/proxy-api/internal/downstream"
)

// Tier is a route's authorization requirement. Two tiers exist: public
// routes execute regardless of token presence, authenticated routes only
// behind a validated bearer token. No finer-grained, per-role policy is
// applied; role claims are carried but not enforced.
type Tier int

const (
	// TierPublic marks routes that execute without a token
	TierPublic Tier = iota

	// TierAuthenticated marks routes that require a validated bearer token
	TierAuthenticated
)

// Route is one entry of the gateway's endpoint catalog: a method and path
// pattern, the authorization tier, and the handler instantiating the
// dispatch contract against one downstream operation.
type Route struct {
	Method  string
	Pattern string
	Tier    Tier
	Handler http.HandlerFunc
}

// Routes builds the complete endpoint catalog over the given downstream
// client. The table is constructed once at startup; every entry is one
// instantiation of the same dispatch contract, differing only in the
// downstream operation and the success-status policy.
func Routes(client downstream.Client) []Route {
	users := NewUserHandler(client)

	routes := []Route{
		// Inventories
		{http.MethodGet, "/api/inventories", TierAuthenticated,
			fetch("Inventories", client.Inventories)},
		{http.MethodGet, "/api/inventories/low-stock", TierAuthenticated,
			fetch("LowStockInventories", client.LowStockInventories)},
		{http.MethodPost, "/api/inventories/reorder/{productId}", TierAuthenticated,
			commandID("ReorderInventory", "productId", http.StatusOK, client.ReorderInventory)},

		// Orders
		{http.MethodGet, "/api/orders", TierAuthenticated,
			fetch("Orders", client.Orders)},
		{http.MethodGet, "/api/orders/user/{userId}", TierAuthenticated,
			fetchID("OrdersByUser", "userId", client.OrdersByUser)},
		{http.MethodPost, "/api/orders", TierAuthenticated,
			commandBody("CreateOrder", http.StatusOK, client.CreateOrder)},

		// Products. The catalog reads are public so the dashboard can
		// render a storefront view without a session. Creation responds
		// 201 with neither a body nor a Location header, matching the
		// behavior dashboard clients already depend on.
		{http.MethodGet, "/api/products", TierPublic,
			fetch("Products", client.Products)},
		{http.MethodGet, "/api/products/{id}", TierPublic,
			fetchID("ProductByID", "id", client.ProductByID)},
		{http.MethodGet, "/api/products/category/{category}", TierPublic,
			fetchString("ProductsByCategory", "category", client.ProductsByCategory)},
		{http.MethodPost, "/api/products", TierAuthenticated,
			commandBody("CreateProduct", http.StatusCreated, client.CreateProduct)},
		{http.MethodDelete, "/api/products/{id}", TierAuthenticated,
			commandID("DeleteProduct", "id", http.StatusNoContent, client.DeleteProduct)},
		{http.MethodPatch, "/api/products/{id}", TierAuthenticated,
			patchCommand("PatchProduct", "id", client.PatchProduct)},

		// Users
		{http.MethodPost, "/api/users/register", TierPublic,
			commandBody("Register", http.StatusOK, client.Register)},
		{http.MethodPost, "/api/users/login", TierPublic,
			users.Login},
		{http.MethodGet, "/api/users", TierAuthenticated,
			fetch("Users", client.Users)},
		{http.MethodGet, "/api/users/{id}", TierAuthenticated,
			fetchID("UserByID", "id", client.UserByID)},
		{http.MethodPost, "/api/users/{id}/change-password", TierAuthenticated,
			commandIDBody("ChangePassword", "id", http.StatusNoContent, client.ChangePassword)},
		{http.MethodPatch, "/api/users/{id}", TierAuthenticated,
			patchCommand("PatchUser", "id", client.PatchUser)},
	}

	return append(routes, metricRoutes(client)...)
}

// metricRoutes lists the revenue and sales-performance endpoints. Every
// metric is an authenticated read with a single-year variant and, except
// for popular-product, a year-range variant. The users-count range path
// spelling (user-count) differs from its single-year path; dashboard
// clients depend on both spellings as they are.
func metricRoutes(client downstream.Client) []Route {
	type metric struct {
		singlePath string
		rangePath  string
		operation  string
		single     func(ctx context.Context, year int) (json.RawMessage, error)
		byRange    func(ctx context.Context, startYear, endYear int) (json.RawMessage, error)
	}

	metrics := []metric{
		{"/api/revenues/total-revenue", "/api/revenues/total-revenue",
			"TotalRevenue", client.TotalRevenue, client.TotalRevenueRange},
		{"/api/revenues/revenue-per-order", "/api/revenues/revenue-per-order",
			"RevenuePerOrder", client.RevenuePerOrder, client.RevenuePerOrderRange},
		{"/api/revenues/revenue-growth-rate", "/api/revenues/revenue-growth-rate",
			"RevenueGrowthRate", client.RevenueGrowthRate, client.RevenueGrowthRateRange},
		{"/api/revenues/total-cost", "/api/revenues/total-cost",
			"TotalCost", client.TotalCost, client.TotalCostRange},
		{"/api/revenues/cost-per-order", "/api/revenues/cost-per-order",
			"CostPerOrder", client.CostPerOrder, client.CostPerOrderRange},
		{"/api/salesperformances/total-orders", "/api/salesperformances/total-orders",
			"TotalOrders", client.TotalOrders, client.TotalOrdersRange},
		{"/api/salesperformances/aov", "/api/salesperformances/aov",
			"AverageOrderValue", client.AverageOrderValue, client.AverageOrderValueRange},
		{"/api/salesperformances/users-count", "/api/salesperformances/user-count",
			"UsersCount", client.UsersCount, client.UsersCountRange},
		{"/api/salesperformances/ordered-user", "/api/salesperformances/ordered-user",
			"OrderedUserCount", client.OrderedUserCount, client.OrderedUserCountRange},
		{"/api/salesperformances/unit-sold", "/api/salesperformances/unit-sold",
			"UnitsSold", client.UnitsSold, client.UnitsSoldRange},
		{"/api/salesperformances/sales-growth", "/api/salesperformances/sales-growth",
			"SalesGrowth", client.SalesGrowth, client.SalesGrowthRange},
		{"/api/salesperformances/popular-product", "",
			"PopularProduct", client.PopularProduct, nil},
	}

	routes := make([]Route, 0, len(metrics)*2)
	for _, m := range metrics {
		routes = append(routes, Route{
			Method:  http.MethodGet,
			Pattern: m.singlePath + "/{year}",
			Tier:    TierAuthenticated,
			Handler: fetchYear(m.operation, m.single),
		})
		if m.byRange != nil {
			routes = append(routes, Route{
				Method:  http.MethodGet,
				Pattern: m.rangePath + "/{startYear}/{endYear}",
				Tier:    TierAuthenticated,
				Handler: fetchYearRange(m.operation+"Range", m.byRange),
			})
		}
	}
	return routes
}
