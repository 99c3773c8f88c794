// Package server hosts the HTTP API: a Gin engine behind an h2c-enabled
// http.Server, the standard middleware stack, and graceful shutdown.
// Route handlers live in the endpoint subpackage.
package server
