package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/salesdash/proxy-api/internal/api"
	apiMiddleware "github.com/salesdash/proxy-api/internal/api/middleware"
)

// setupRouter creates and configures the application router. The endpoint
// catalog comes from the route table in internal/api; public entries are
// registered directly, authenticated entries behind the auth middleware, so
// a denied request never reaches a handler or the downstream service.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// One configured dashboard origin, any method, any header.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{app.config.CORS.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	metrics := apiMiddleware.NewMetrics(app.metricsRegistry)
	r.Use(metrics.Instrument)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	routes := api.Routes(app.downstreamClient)
	for _, route := range routes {
		if route.Tier == api.TierPublic {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	}
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		for _, route := range routes {
			if route.Tier == api.TierAuthenticated {
				r.Method(route.Method, route.Pattern, route.Handler)
			}
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(app.metricsRegistry, promhttp.HandlerOpts{}))

	return r
}
