// Package config handles configuration loading, parsing, and validation
// from .env files, an optional config.yaml and WTWR_ prefixed environment
// variables. The resulting Config is passed explicitly to the components that
// need it; nothing else in the application reads the environment.
package config
