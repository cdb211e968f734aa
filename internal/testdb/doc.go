// Package testdb provides utilities for MongoDB integration tests.
//
// Each test gets its own randomly named database with the production indexes
// applied. The database is dropped and the client closed when the test ends,
// so tests can run in parallel against one server without sharing state.
//
// Tests are skipped unless WTWR_TEST_MONGO_URI is set:
//
//	func TestMyStore(t *testing.T) {
//	    client := testdb.GetTestDBWithT(t)
//	    users := mongodb.NewMongoUserStore(client.Database(), slog.Default())
//	    ...
//	}
package testdb
