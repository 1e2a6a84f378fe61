// Package middleware holds the Echo middleware of the API.
//
// It covers the cross-cutting concerns: request ids, the request-scoped
// logger, access logging, New Relic tracing, CORS, rate limiting, panic
// recovery and the global error handler.
package middleware
