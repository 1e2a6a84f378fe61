package handler

import (
	"github.com/deppfellow/hbnb/internal/validation"
)

// JSONBody is embedded by requests that accept a JSON object body.
// Body is nil when the request carried no usable object.
type JSONBody struct {
	Body map[string]any
}

func (b *JSONBody) SetBody(body map[string]any) {
	b.Body = body
}

// EmptyRequest is used by routes without path parameters or body.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// ---- states ----------------------------------------------------------------

type StateIDRequest struct {
	StateID string `param:"state_id" validate:"required"`
}

func (r *StateIDRequest) Validate() error { return validation.Struct(r) }

type CreateStateRequest struct {
	JSONBody
}

func (r *CreateStateRequest) Validate() error { return nil }

type UpdateStateRequest struct {
	StateID string `param:"state_id" validate:"required"`
	JSONBody
}

func (r *UpdateStateRequest) Validate() error { return validation.Struct(r) }

// ---- cities ----------------------------------------------------------------

type CityIDRequest struct {
	CityID string `param:"city_id" validate:"required"`
}

func (r *CityIDRequest) Validate() error { return validation.Struct(r) }

// CreateCityRequest creates a city in the state named by the path.
type CreateCityRequest struct {
	StateID string `param:"state_id" validate:"required"`
	JSONBody
}

func (r *CreateCityRequest) Validate() error { return validation.Struct(r) }

type UpdateCityRequest struct {
	CityID string `param:"city_id" validate:"required"`
	JSONBody
}

func (r *UpdateCityRequest) Validate() error { return validation.Struct(r) }

// ---- places ----------------------------------------------------------------

type PlaceIDRequest struct {
	PlaceID string `param:"place_id" validate:"required"`
}

func (r *PlaceIDRequest) Validate() error { return validation.Struct(r) }

// CreatePlaceRequest creates a place in the city named by the path.
type CreatePlaceRequest struct {
	CityID string `param:"city_id" validate:"required"`
	JSONBody
}

func (r *CreatePlaceRequest) Validate() error { return validation.Struct(r) }

type UpdatePlaceRequest struct {
	PlaceID string `param:"place_id" validate:"required"`
	JSONBody
}

func (r *UpdatePlaceRequest) Validate() error { return validation.Struct(r) }

// SearchPlacesRequest carries the places_search filter object.
type SearchPlacesRequest struct {
	JSONBody
}

func (r *SearchPlacesRequest) Validate() error { return nil }

type PlaceAmenityRequest struct {
	PlaceID   string `param:"place_id" validate:"required"`
	AmenityID string `param:"amenity_id" validate:"required"`
}

func (r *PlaceAmenityRequest) Validate() error { return validation.Struct(r) }

// ---- users -----------------------------------------------------------------

type UserIDRequest struct {
	UserID string `param:"user_id" validate:"required"`
}

func (r *UserIDRequest) Validate() error { return validation.Struct(r) }

type CreateUserRequest struct {
	JSONBody
}

func (r *CreateUserRequest) Validate() error { return nil }

type UpdateUserRequest struct {
	UserID string `param:"user_id" validate:"required"`
	JSONBody
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

// ---- amenities -------------------------------------------------------------

type AmenityIDRequest struct {
	AmenityID string `param:"amenity_id" validate:"required"`
}

func (r *AmenityIDRequest) Validate() error { return validation.Struct(r) }

type CreateAmenityRequest struct {
	JSONBody
}

func (r *CreateAmenityRequest) Validate() error { return nil }

type UpdateAmenityRequest struct {
	AmenityID string `param:"amenity_id" validate:"required"`
	JSONBody
}

func (r *UpdateAmenityRequest) Validate() error { return validation.Struct(r) }

// ---- reviews ---------------------------------------------------------------

type ReviewIDRequest struct {
	ReviewID string `param:"review_id" validate:"required"`
}

func (r *ReviewIDRequest) Validate() error { return validation.Struct(r) }

// CreateReviewRequest creates a review of the place named by the path.
type CreateReviewRequest struct {
	PlaceID string `param:"place_id" validate:"required"`
	JSONBody
}

func (r *CreateReviewRequest) Validate() error { return validation.Struct(r) }

type UpdateReviewRequest struct {
	ReviewID string `param:"review_id" validate:"required"`
	JSONBody
}

func (r *UpdateReviewRequest) Validate() error { return validation.Struct(r) }
