// Package api handles incoming HTTP requests: decoding and validating bodies,
// extracting path ids and the caller identity, invoking the services, and
// formatting responses. Handlers return errors instead of writing them; the
// Handle adapter sends every failure through the shared error responder.
package api
