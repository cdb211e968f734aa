// Package mocks provides centralized test doubles for the service and store
// interfaces.
//
// Two styles are available:
//
//   - Function-field mocks (MockJWTService, MockPasswordHasher) whose
//     behavior is set per test through Fn fields or default values.
//   - Thread-safe in-memory stores (MockUserStore, MockItemStore) that honor
//     the store contracts, including unique emails and set semantics for likes,
//     so services and routers can be exercised end to end without MongoDB.
//
// TestifyMockUserStore and TestifyMockItemStore wrap testify/mock for tests
// that need to assert exact calls or inject store failures.
//
//	users := mocks.NewMockUserStore()
//	items := mocks.NewMockItemStore()
//	svc := service.NewItemService(items, logger)
package mocks
