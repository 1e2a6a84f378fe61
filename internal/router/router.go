// Package router builds the Echo instance: global middleware, the system
// routes and the /api/v1 resource routes.
package router

import (
	"github.com/deppfellow/hbnb/internal/handler"
	"github.com/deppfellow/hbnb/internal/middleware"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// APIPrefix is where the resource routes are mounted.
const APIPrefix = "/api/v1"

// NewRouter wires middleware and routes.
//
// Middleware order matters: the request id and the New Relic transaction
// must exist before the context enhancer builds the request logger, and the
// access log wraps everything after it so it sees the final status.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.RateLimiter(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group(APIPrefix)
	registerV1Routes(v1, h)

	return router
}
