// Package middleware contains the HTTP middleware of the What To Wear API:
// the bearer-token Auth Gate, trace id propagation, structured request
// logging, panic recovery and Prometheus instrumentation.
//
// Recommended order, outermost first:
//
//	Trace -> RequestLogger -> Recover -> Metrics -> (router) -> Authenticate
//
// so every log line and error response produced further in carries the trace
// id, and panics are turned into the standard JSON error body.
package middleware
