// Package mongodb implements the store interfaces on MongoDB using the
// official Go driver.
//
// Users live in the "users" collection with a unique index on email, which is
// how duplicate signups are detected. Items live in "clothingitems"; their like
// sets are maintained with $addToSet and $pull through FindOneAndUpdate, so a
// like or unlike is a single atomic document update that returns the new
// document.
//
// Driver errors are translated by MapError: ErrNoDocuments becomes
// store.ErrNotFound and duplicate key errors become store.ErrDuplicate.
package mongodb
