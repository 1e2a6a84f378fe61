package handler

import (
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type CityHandler struct {
	Handler
	cities *service.CityService
}

func NewCityHandler(s *server.Server, cities *service.CityService) *CityHandler {
	return &CityHandler{
		Handler: NewHandler(s),
		cities:  cities,
	}
}

// ListByState serves GET /states/:state_id/cities.
func (h *CityHandler) ListByState(c echo.Context, req *StateIDRequest) ([]map[string]any, error) {
	cities, err := h.cities.ListByState(c.Request().Context(), req.StateID)
	if err != nil {
		return nil, err
	}
	return serializeAll(cities), nil
}

func (h *CityHandler) Get(c echo.Context, req *CityIDRequest) (map[string]any, error) {
	city, err := h.cities.Get(c.Request().Context(), req.CityID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(city), nil
}

func (h *CityHandler) Create(c echo.Context, req *CreateCityRequest) (map[string]any, error) {
	city, err := h.cities.Create(c.Request().Context(), req.StateID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(city), nil
}

func (h *CityHandler) Update(c echo.Context, req *UpdateCityRequest) (map[string]any, error) {
	city, err := h.cities.Update(c.Request().Context(), req.CityID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(city), nil
}

func (h *CityHandler) Delete(c echo.Context, req *CityIDRequest) (map[string]any, error) {
	if err := h.cities.Delete(c.Request().Context(), req.CityID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
