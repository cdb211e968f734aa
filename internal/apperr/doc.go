// Package apperr defines the application error taxonomy. Services create an
// *Error at the point a precondition fails, and the HTTP layer turns it into a
// status code and a client-safe message without inspecting anything else.
package apperr
