// Package store defines interfaces for data persistence operations.
// These interfaces abstract the document database from the application's
// core logic, and the sentinel errors here are the only store failures the
// service layer needs to understand.
package store
