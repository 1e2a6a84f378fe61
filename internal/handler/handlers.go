package handler

import (
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler

	Index     *IndexHandler
	States    *StateHandler
	Cities    *CityHandler
	Places    *PlaceHandler
	Users     *UserHandler
	Amenities *AmenityHandler
	Reviews   *ReviewHandler
}

// NewHandlers constructs the handler container from the business layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),

		Index:     NewIndexHandler(s, services.Index),
		States:    NewStateHandler(s, services.States),
		Cities:    NewCityHandler(s, services.Cities),
		Places:    NewPlaceHandler(s, services.Places),
		Users:     NewUserHandler(s, services.Users),
		Amenities: NewAmenityHandler(s, services.Amenities),
		Reviews:   NewReviewHandler(s, services.Reviews),
	}
}
