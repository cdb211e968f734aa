package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wtwr-api/internal/config"
	"github.com/phrazzld/wtwr-api/internal/redact"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	UsersCollection = "users"
	ItemsCollection = "clothingitems"
)

// Client owns the driver connection pool and the application database handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Connect opens a connection pool and verifies it with a ping. The connect
// timeout from cfg bounds both steps.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("wtwr-api").
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %s", redact.Error(err))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %s", redact.Error(err))
	}

	logger.Info("connected to mongodb",
		"uri", redact.String(cfg.URI),
		"database", cfg.Name)

	return &Client{
		client: client,
		db:     client.Database(cfg.Name),
		logger: logger,
	}, nil
}

// Database returns the application database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	users := c.db.Collection(UsersCollection)
	name, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	items := c.db.Collection(ItemsCollection)
	if _, err := items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("created_at"),
	}); err != nil {
		return fmt.Errorf("failed to create items createdAt index: %w", err)
	}

	c.logger.Debug("mongodb indexes ensured", "users_index", name)
	return nil
}

// Close disconnects the pool.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
