package handler

import (
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type AmenityHandler struct {
	Handler
	amenities *service.AmenityService
}

func NewAmenityHandler(s *server.Server, amenities *service.AmenityService) *AmenityHandler {
	return &AmenityHandler{
		Handler:   NewHandler(s),
		amenities: amenities,
	}
}

func (h *AmenityHandler) List(c echo.Context, _ *EmptyRequest) ([]map[string]any, error) {
	amenities, err := h.amenities.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return serializeAll(amenities), nil
}

func (h *AmenityHandler) Get(c echo.Context, req *AmenityIDRequest) (map[string]any, error) {
	amenity, err := h.amenities.Get(c.Request().Context(), req.AmenityID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(amenity), nil
}

func (h *AmenityHandler) Create(c echo.Context, req *CreateAmenityRequest) (map[string]any, error) {
	amenity, err := h.amenities.Create(c.Request().Context(), req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(amenity), nil
}

func (h *AmenityHandler) Update(c echo.Context, req *UpdateAmenityRequest) (map[string]any, error) {
	amenity, err := h.amenities.Update(c.Request().Context(), req.AmenityID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(amenity), nil
}

// Delete removes the amenity and unlinks it from every place.
func (h *AmenityHandler) Delete(c echo.Context, req *AmenityIDRequest) (map[string]any, error) {
	if err := h.amenities.Delete(c.Request().Context(), req.AmenityID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
