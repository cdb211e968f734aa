// Package main implements the entry point for the What To Wear API server,
// which stores users and their clothing items in MongoDB and serves them
// over a JSON REST interface.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/wtwr-api/internal/config"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/phrazzld/wtwr-api/internal/platform/mongodb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("wtwr-api: %v", err)
	}
}

// run loads configuration, connects to MongoDB, wires the application and
// serves until ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	client, err := mongodb.Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.EnsureIndexes(ctx); err != nil {
		closeClient(appLogger, client, cfg)
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	app, err := newApplication(cfg, appLogger, dependencies{
		userStore: mongodb.NewMongoUserStore(client.Database(), appLogger),
		itemStore: mongodb.NewMongoItemStore(client.Database(), appLogger),
		health:    client,
		closer: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
	if err != nil {
		closeClient(appLogger, client, cfg)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

func closeClient(appLogger *slog.Logger, client *mongodb.Client, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := client.Close(ctx); err != nil {
		appLogger.Error("error closing database connection", "error", err)
	}
}
