package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/wtwr-api/internal/api"
	apiMiddleware "github.com/phrazzld/wtwr-api/internal/api/middleware"
	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() (http.Handler, error) {
	metrics, err := apiMiddleware.NewMetrics(app.registry)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(metrics.Handler)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Recover)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.NotFound)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	userHandler := api.NewUserHandler(app.userService)
	itemHandler := api.NewItemHandler(app.itemService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public routes
	r.Post("/signup", api.Handle(authHandler.Signup))
	r.Post("/signin", api.Handle(authHandler.Signin))
	r.Get("/items", api.Handle(itemHandler.List))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users/me", api.Handle(userHandler.GetMe))
		r.Patch("/users/me", api.Handle(userHandler.UpdateMe))

		r.Post("/items", api.Handle(itemHandler.Create))
		r.Delete("/items/{id}", api.Handle(itemHandler.Delete))
		r.Put("/items/{id}/likes", api.Handle(itemHandler.Like))
		r.Patch("/items/{id}/likes", api.Handle(itemHandler.Like))
		r.Delete("/items/{id}/likes", api.Handle(itemHandler.Unlike))
	})

	r.Get("/health", app.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r, nil
}

// handleHealth reports 200 when the database answers a ping, 503 otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := app.deps.health.Ping(ctx); err != nil {
		app.logger.Warn("health check failed", "error", err)
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
