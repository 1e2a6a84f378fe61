package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/errs"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
)

// placeOwnedKeys can't be changed once the place exists. "amenities" is the
// serialized link list, managed through the place amenity routes.
var placeOwnedKeys = []string{"user_id", "city_id", "amenities"}

type PlaceService struct {
	repos *repository.Repositories
}

func NewPlaceService(repos *repository.Repositories) *PlaceService {
	return &PlaceService{repos: repos}
}

// ListByCity returns the places of a city, or 404 if the city is unknown.
// A city without places yields an empty list.
func (s *PlaceService) ListByCity(ctx context.Context, cityID string) ([]*model.Place, error) {
	if _, err := s.repos.Cities.Get(ctx, cityID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Cities.Places(ctx, cityID)
}

func (s *PlaceService) Get(ctx context.Context, id string) (*model.Place, error) {
	place, err := s.repos.Places.Get(ctx, id)
	return place, notFound(err)
}

// Create checks, in order: the city exists, the body is a JSON object,
// name and user_id are present, the user exists. city_id always comes from
// the path.
func (s *PlaceService) Create(ctx context.Context, cityID string, body map[string]any) (*model.Place, error) {
	if _, err := s.repos.Cities.Get(ctx, cityID); err != nil {
		return nil, notFound(err)
	}
	if err := requireObject(body); err != nil {
		return nil, err
	}
	if err := requireKeys(body, "name", "user_id"); err != nil {
		return nil, err
	}
	userID, err := requireString(body, "user_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.Get(ctx, userID); err != nil {
		return nil, notFound(err)
	}

	place := model.New(model.KindPlace).(*model.Place)
	if err := applyFields(place, body, "city_id", "amenities"); err != nil {
		return nil, err
	}
	place.CityID = cityID

	if err := s.repos.Places.Save(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// Update applies every body key except id, user_id, city_id and the
// timestamps, which are ignored. Unknown keys are rejected.
func (s *PlaceService) Update(ctx context.Context, id string, body map[string]any) (*model.Place, error) {
	place, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(place, body, placeOwnedKeys...); err != nil {
		return nil, err
	}
	if err := s.repos.Places.Save(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// Delete removes the place and its reviews.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	place, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Places.Remove(ctx, place)
}

// Amenities lists the amenities linked to a place.
func (s *PlaceService) Amenities(ctx context.Context, placeID string) ([]*model.Amenity, error) {
	place, err := s.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return s.repos.Places.Amenities(ctx, place)
}

// LinkAmenity links an amenity to a place. created is false when the link
// already existed, in which case nothing is written.
func (s *PlaceService) LinkAmenity(ctx context.Context, placeID, amenityID string) (amenity *model.Amenity, created bool, err error) {
	place, amenity, err := s.placeAndAmenity(ctx, placeID, amenityID)
	if err != nil {
		return nil, false, err
	}

	if !place.AddAmenity(amenity.ID) {
		return amenity, false, nil
	}
	if err := s.repos.Places.Save(ctx, place); err != nil {
		return nil, false, err
	}
	return amenity, true, nil
}

// UnlinkAmenity removes the link, or returns 404 if there was none.
func (s *PlaceService) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	place, amenity, err := s.placeAndAmenity(ctx, placeID, amenityID)
	if err != nil {
		return err
	}

	if !place.RemoveAmenity(amenity.ID) {
		return errs.NotFound()
	}
	return s.repos.Places.Save(ctx, place)
}

func (s *PlaceService) placeAndAmenity(ctx context.Context, placeID, amenityID string) (*model.Place, *model.Amenity, error) {
	place, err := s.Get(ctx, placeID)
	if err != nil {
		return nil, nil, err
	}
	amenity, err := s.repos.Amenities.Get(ctx, amenityID)
	if err != nil {
		return nil, nil, notFound(err)
	}
	return place, amenity, nil
}
