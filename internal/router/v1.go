package router

import (
	"net/http"

	"github.com/deppfellow/hbnb/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	index := h.Index
	v1.GET("/status", handler.Handle(index.Handler, index.Status, http.StatusOK, handler.NewRequest[handler.EmptyRequest]))
	v1.GET("/stats", handler.Handle(index.Handler, index.Stats, http.StatusOK, handler.NewRequest[handler.EmptyRequest]))

	states := h.States
	v1.GET("/states", handler.Handle(states.Handler, states.List, http.StatusOK, handler.NewRequest[handler.EmptyRequest]))
	v1.POST("/states", handler.Handle(states.Handler, states.Create, http.StatusCreated, handler.NewRequest[handler.CreateStateRequest]))
	v1.GET("/states/:state_id", handler.Handle(states.Handler, states.Get, http.StatusOK, handler.NewRequest[handler.StateIDRequest]))
	v1.PUT("/states/:state_id", handler.Handle(states.Handler, states.Update, http.StatusOK, handler.NewRequest[handler.UpdateStateRequest]))
	v1.DELETE("/states/:state_id", handler.Handle(states.Handler, states.Delete, http.StatusOK, handler.NewRequest[handler.StateIDRequest]))

	cities := h.Cities
	v1.GET("/states/:state_id/cities", handler.Handle(cities.Handler, cities.ListByState, http.StatusOK, handler.NewRequest[handler.StateIDRequest]))
	v1.POST("/states/:state_id/cities", handler.Handle(cities.Handler, cities.Create, http.StatusCreated, handler.NewRequest[handler.CreateCityRequest]))
	v1.GET("/cities/:city_id", handler.Handle(cities.Handler, cities.Get, http.StatusOK, handler.NewRequest[handler.CityIDRequest]))
	v1.PUT("/cities/:city_id", handler.Handle(cities.Handler, cities.Update, http.StatusOK, handler.NewRequest[handler.UpdateCityRequest]))
	v1.DELETE("/cities/:city_id", handler.Handle(cities.Handler, cities.Delete, http.StatusOK, handler.NewRequest[handler.CityIDRequest]))

	places := h.Places
	v1.GET("/cities/:city_id/places", handler.Handle(places.Handler, places.ListByCity, http.StatusOK, handler.NewRequest[handler.CityIDRequest]))
	v1.POST("/cities/:city_id/places", handler.Handle(places.Handler, places.Create, http.StatusCreated, handler.NewRequest[handler.CreatePlaceRequest]))
	v1.GET("/places/:place_id", handler.Handle(places.Handler, places.Get, http.StatusOK, handler.NewRequest[handler.PlaceIDRequest]))
	v1.PUT("/places/:place_id", handler.Handle(places.Handler, places.Update, http.StatusOK, handler.NewRequest[handler.UpdatePlaceRequest]))
	v1.DELETE("/places/:place_id", handler.Handle(places.Handler, places.Delete, http.StatusOK, handler.NewRequest[handler.PlaceIDRequest]))
	v1.POST("/places_search", handler.Handle(places.Handler, places.Search, http.StatusOK, handler.NewRequest[handler.SearchPlacesRequest]))

	v1.GET("/places/:place_id/amenities", handler.Handle(places.Handler, places.ListAmenities, http.StatusOK, handler.NewRequest[handler.PlaceIDRequest]))
	v1.POST("/places/:place_id/amenities/:amenity_id", handler.HandleWithStatus(places.Handler, places.LinkAmenity, handler.NewRequest[handler.PlaceAmenityRequest]))
	v1.DELETE("/places/:place_id/amenities/:amenity_id", handler.Handle(places.Handler, places.UnlinkAmenity, http.StatusOK, handler.NewRequest[handler.PlaceAmenityRequest]))

	users := h.Users
	v1.GET("/users", handler.Handle(users.Handler, users.List, http.StatusOK, handler.NewRequest[handler.EmptyRequest]))
	v1.POST("/users", handler.Handle(users.Handler, users.Create, http.StatusCreated, handler.NewRequest[handler.CreateUserRequest]))
	v1.GET("/users/:user_id", handler.Handle(users.Handler, users.Get, http.StatusOK, handler.NewRequest[handler.UserIDRequest]))
	v1.PUT("/users/:user_id", handler.Handle(users.Handler, users.Update, http.StatusOK, handler.NewRequest[handler.UpdateUserRequest]))
	v1.DELETE("/users/:user_id", handler.Handle(users.Handler, users.Delete, http.StatusOK, handler.NewRequest[handler.UserIDRequest]))

	amenities := h.Amenities
	v1.GET("/amenities", handler.Handle(amenities.Handler, amenities.List, http.StatusOK, handler.NewRequest[handler.EmptyRequest]))
	v1.POST("/amenities", handler.Handle(amenities.Handler, amenities.Create, http.StatusCreated, handler.NewRequest[handler.CreateAmenityRequest]))
	v1.GET("/amenities/:amenity_id", handler.Handle(amenities.Handler, amenities.Get, http.StatusOK, handler.NewRequest[handler.AmenityIDRequest]))
	v1.PUT("/amenities/:amenity_id", handler.Handle(amenities.Handler, amenities.Update, http.StatusOK, handler.NewRequest[handler.UpdateAmenityRequest]))
	v1.DELETE("/amenities/:amenity_id", handler.Handle(amenities.Handler, amenities.Delete, http.StatusOK, handler.NewRequest[handler.AmenityIDRequest]))

	reviews := h.Reviews
	v1.GET("/places/:place_id/reviews", handler.Handle(reviews.Handler, reviews.ListByPlace, http.StatusOK, handler.NewRequest[handler.PlaceIDRequest]))
	v1.POST("/places/:place_id/reviews", handler.Handle(reviews.Handler, reviews.Create, http.StatusCreated, handler.NewRequest[handler.CreateReviewRequest]))
	v1.GET("/reviews/:review_id", handler.Handle(reviews.Handler, reviews.Get, http.StatusOK, handler.NewRequest[handler.ReviewIDRequest]))
	v1.PUT("/reviews/:review_id", handler.Handle(reviews.Handler, reviews.Update, http.StatusOK, handler.NewRequest[handler.UpdateReviewRequest]))
	v1.DELETE("/reviews/:review_id", handler.Handle(reviews.Handler, reviews.Delete, http.StatusOK, handler.NewRequest[handler.ReviewIDRequest]))
}
