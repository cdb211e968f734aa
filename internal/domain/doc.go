// Package domain contains the core entities of the What To Wear API: users,
// clothing items and the weather categories items are tagged with. It holds
// the invariants that must be true of any stored record, independent of the
// HTTP layer and of the document store.
package domain
