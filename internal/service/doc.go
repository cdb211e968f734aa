// Package service contains the application use cases of the What To Wear API:
// account signup and sign-in, profile management, and the clothing item
// lifecycle (create, delete, like, unlike).
//
// Services sit between the HTTP layer and the store interfaces defined in
// internal/store. Every pipeline short-circuits on the first failure and
// returns an *apperr.Error describing the client-facing outcome; unexpected
// store failures are wrapped with apperr.Internal so the original cause is
// kept for server-side logging only.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete database driver.
package service
