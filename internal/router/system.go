package router

import (
	"net/http"

	"github.com/deppfellow/hbnb/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the API
// resources: health, docs and the static files behind the docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/docs/openapi.json", handler.HandleFile(
		h.OpenAPI.Handler, h.OpenAPI.DownloadSpec, http.StatusOK,
		handler.NewRequest[handler.EmptyRequest], "openapi.json", echo.MIMEApplicationJSON,
	))
}
