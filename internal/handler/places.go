package handler

import (
	"net/http"

	"github.com/deppfellow/hbnb/internal/middleware"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

// PlaceHandler serves places, their amenity links and places_search.
type PlaceHandler struct {
	Handler
	places *service.PlaceService
}

func NewPlaceHandler(s *server.Server, places *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		Handler: NewHandler(s),
		places:  places,
	}
}

// ListByCity serves GET /cities/:city_id/places.
func (h *PlaceHandler) ListByCity(c echo.Context, req *CityIDRequest) ([]map[string]any, error) {
	places, err := h.places.ListByCity(c.Request().Context(), req.CityID)
	if err != nil {
		return nil, err
	}
	return serializeAll(places), nil
}

func (h *PlaceHandler) Get(c echo.Context, req *PlaceIDRequest) (map[string]any, error) {
	place, err := h.places.Get(c.Request().Context(), req.PlaceID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(place), nil
}

func (h *PlaceHandler) Create(c echo.Context, req *CreatePlaceRequest) (map[string]any, error) {
	place, err := h.places.Create(c.Request().Context(), req.CityID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(place), nil
}

func (h *PlaceHandler) Update(c echo.Context, req *UpdatePlaceRequest) (map[string]any, error) {
	place, err := h.places.Update(c.Request().Context(), req.PlaceID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(place), nil
}

func (h *PlaceHandler) Delete(c echo.Context, req *PlaceIDRequest) (map[string]any, error) {
	if err := h.places.Delete(c.Request().Context(), req.PlaceID); err != nil {
		return nil, err
	}
	return deleted(), nil
}

// Search serves POST /places_search.
func (h *PlaceHandler) Search(c echo.Context, req *SearchPlacesRequest) ([]map[string]any, error) {
	filter, err := service.ParseSearchFilter(req.Body)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Debug().
		Int("states", len(filter.States)).
		Int("cities", len(filter.Cities)).
		Int("amenities", len(filter.Amenities)).
		Msg("searching places")

	return h.places.Search(c.Request().Context(), filter)
}

func (h *PlaceHandler) ListAmenities(c echo.Context, req *PlaceIDRequest) ([]map[string]any, error) {
	amenities, err := h.places.Amenities(c.Request().Context(), req.PlaceID)
	if err != nil {
		return nil, err
	}
	return serializeAll(amenities), nil
}

// LinkAmenity answers 201 when the link is new and 200 when it already existed.
func (h *PlaceHandler) LinkAmenity(c echo.Context, req *PlaceAmenityRequest) (map[string]any, int, error) {
	amenity, created, err := h.places.LinkAmenity(c.Request().Context(), req.PlaceID, req.AmenityID)
	if err != nil {
		return nil, 0, err
	}
	if created {
		return model.ToMap(amenity), http.StatusCreated, nil
	}
	return model.ToMap(amenity), http.StatusOK, nil
}

func (h *PlaceHandler) UnlinkAmenity(c echo.Context, req *PlaceAmenityRequest) (map[string]any, error) {
	if err := h.places.UnlinkAmenity(c.Request().Context(), req.PlaceID, req.AmenityID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
