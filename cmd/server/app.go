package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wtwr-api/internal/config"
	"github.com/phrazzld/wtwr-api/internal/service"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/phrazzld/wtwr-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// healthChecker reports whether the backing database is reachable.
type healthChecker interface {
	Ping(ctx context.Context) error
}

// dependencies are the externally constructed resources the application
// runs on. Tests substitute in-memory stores.
type dependencies struct {
	userStore store.UserStore
	itemStore store.ItemStore
	health    healthChecker

	// closer releases the backing resources on shutdown. Optional.
	closer func(ctx context.Context) error
}

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	deps   dependencies

	registry *prometheus.Registry

	jwtService  auth.JWTService
	userService service.UserService
	itemService service.ItemService
}

// newApplication creates a new application instance with all services
// initialized on top of deps.
func newApplication(cfg *config.Config, logger *slog.Logger, deps dependencies) (*application, error) {
	if deps.userStore == nil || deps.itemStore == nil {
		return nil, errors.New("user and item stores are required")
	}
	if deps.health == nil {
		return nil, errors.New("health checker is required")
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		deps:     deps,
		registry: prometheus.NewRegistry(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime", cfg.Auth.TokenLifetime.String())

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if hasher.Cost() != cfg.Auth.BcryptCost {
		logger.Warn("bcrypt cost out of range, using default",
			"configured_cost", cfg.Auth.BcryptCost,
			"cost", hasher.Cost())
	}

	app.userService = service.NewUserService(deps.userStore, hasher, logger)
	app.itemService = service.NewItemService(deps.itemStore, logger)

	if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := app.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run builds the router and serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup(ctx context.Context) {
	if app.deps.closer != nil {
		if err := app.deps.closer(ctx); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
