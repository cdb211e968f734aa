package testdb

import (
	"os"

	"github.com/phrazzld/wtwr-api/internal/redact"
)

// MongoURIEnv names the variable holding the test server's connection string.
const MongoURIEnv = "WTWR_TEST_MONGO_URI"

// GetTestDatabaseURL returns the MongoDB URI for tests, or "" when unset.
func GetTestDatabaseURL() string {
	return os.Getenv(MongoURIEnv)
}

// IsIntegrationTestEnvironment reports whether a test MongoDB is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest returns true when no test MongoDB is configured.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// maskDatabaseURL hides credentials so the URI can appear in test output.
func maskDatabaseURL(uri string) string {
	return redact.String(uri)
}
