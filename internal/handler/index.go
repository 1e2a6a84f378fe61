package handler

import (
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type IndexHandler struct {
	Handler
	index *service.IndexService
}

func NewIndexHandler(s *server.Server, index *service.IndexService) *IndexHandler {
	return &IndexHandler{
		Handler: NewHandler(s),
		index:   index,
	}
}

// Status serves GET /api/v1/status. Unlike the root /status health check it
// touches no dependency.
func (h *IndexHandler) Status(c echo.Context, _ *EmptyRequest) (map[string]string, error) {
	return map[string]string{"status": "OK"}, nil
}

// Stats serves GET /api/v1/stats with the number of stored objects per kind.
func (h *IndexHandler) Stats(c echo.Context, _ *EmptyRequest) (map[string]int, error) {
	return h.index.Stats(c.Request().Context())
}
