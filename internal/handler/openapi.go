package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/hbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// Files behind the documentation routes, relative to the working directory.
const (
	openAPIUIPath   = "static/openapi.html"
	openAPISpecPath = "static/openapi.json"
)

// OpenAPIHandler serves the API documentation: an HTML page that loads the
// Scalar API reference from a CDN and points it at static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI reads static/openapi.html and serves it as an HTML response.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(openAPIUIPath)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// DownloadSpec returns openapi.json as an attachment, for client generators.
func (h *OpenAPIHandler) DownloadSpec(c echo.Context, _ *EmptyRequest) ([]byte, error) {
	data, err := os.ReadFile(openAPISpecPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI spec: %w", err)
	}
	return data, nil
}
