// Package middleware provides the Gin middleware stack applied to every
// route: panic recovery, request IDs, CORS, body-size limiting, and
// request logging.
package middleware
