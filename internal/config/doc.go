// Package config handles configuration loading, parsing, and validation
// from various sources (a .env file, a config.yaml, environment variables).
// It provides type-safe access to the server settings and keeps the launcher
// concerns (bind host, port, debug mode) out of the request-handling code.
package config
