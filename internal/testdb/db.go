package testdb

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/wtwr-api/internal/config"
	"github.com/phrazzld/wtwr-api/internal/platform/mongodb"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestTimeout bounds connection setup and teardown.
const TestTimeout = 10 * time.Second

// databasePrefix marks databases created by tests.
const databasePrefix = "wtwr_test_"

// TestDatabaseConfig returns a config naming a fresh database on uri.
func TestDatabaseConfig(uri string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:            uri,
		Name:           databasePrefix + primitive.NewObjectID().Hex(),
		ConnectTimeout: TestTimeout,
	}
}

// GetTestDBWithT connects to a new throwaway database with indexes applied,
// skipping the test when no test MongoDB is configured. Cleanup drops the
// database and closes the client.
func GetTestDBWithT(t *testing.T) *mongodb.Client {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skipf("%s not set - skipping MongoDB integration test", MongoURIEnv)
	}

	cfg := TestDatabaseConfig(GetTestDatabaseURL())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg, logger)
	require.NoError(t, err, "failed to connect to %s", maskDatabaseURL(cfg.URI))
	require.NoError(t, client.EnsureIndexes(ctx), "failed to create indexes")

	t.Cleanup(func() { CleanupDB(t, client) })

	return client
}

// CleanupDB drops the client's database and closes the connection.
func CleanupDB(t *testing.T, client *mongodb.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := client.Database().Drop(ctx); err != nil {
		t.Logf("warning: failed to drop test database %s: %v", client.Database().Name(), err)
	}
	if err := client.Close(ctx); err != nil {
		t.Logf("warning: failed to close test database connection: %v", err)
	}
}
