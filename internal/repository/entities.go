package repository

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/storage"
)

type StateRepository struct{ store }

func NewStateRepository(engine storage.Engine) *StateRepository {
	return &StateRepository{store{engine}}
}

func (r *StateRepository) Get(ctx context.Context, id string) (*model.State, error) {
	return get[*model.State](ctx, r.engine, model.KindState, id)
}

func (r *StateRepository) All(ctx context.Context) ([]*model.State, error) {
	return list[*model.State](ctx, r.engine, model.KindState, nil)
}

// Cities returns the cities that belong to the state.
func (r *StateRepository) Cities(ctx context.Context, stateID string) ([]*model.City, error) {
	return list(ctx, r.engine, model.KindCity, func(c *model.City) bool {
		return c.StateID == stateID
	})
}

type CityRepository struct{ store }

func NewCityRepository(engine storage.Engine) *CityRepository {
	return &CityRepository{store{engine}}
}

func (r *CityRepository) Get(ctx context.Context, id string) (*model.City, error) {
	return get[*model.City](ctx, r.engine, model.KindCity, id)
}

// Places returns the places located in the city.
func (r *CityRepository) Places(ctx context.Context, cityID string) ([]*model.Place, error) {
	return list(ctx, r.engine, model.KindPlace, func(p *model.Place) bool {
		return p.CityID == cityID
	})
}

type PlaceRepository struct{ store }

func NewPlaceRepository(engine storage.Engine) *PlaceRepository {
	return &PlaceRepository{store{engine}}
}

func (r *PlaceRepository) Get(ctx context.Context, id string) (*model.Place, error) {
	return get[*model.Place](ctx, r.engine, model.KindPlace, id)
}

func (r *PlaceRepository) All(ctx context.Context) ([]*model.Place, error) {
	return list[*model.Place](ctx, r.engine, model.KindPlace, nil)
}

// Reviews returns the reviews written about the place.
func (r *PlaceRepository) Reviews(ctx context.Context, placeID string) ([]*model.Review, error) {
	return list(ctx, r.engine, model.KindReview, func(rv *model.Review) bool {
		return rv.PlaceID == placeID
	})
}

// Amenities resolves the amenity ids linked to the place, in link order.
// Ids that no longer resolve are skipped.
func (r *PlaceRepository) Amenities(ctx context.Context, place *model.Place) ([]*model.Amenity, error) {
	all, err := list[*model.Amenity](ctx, r.engine, model.KindAmenity, nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Amenity, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}

	out := make([]*model.Amenity, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type UserRepository struct{ store }

func NewUserRepository(engine storage.Engine) *UserRepository {
	return &UserRepository{store{engine}}
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	return get[*model.User](ctx, r.engine, model.KindUser, id)
}

func (r *UserRepository) All(ctx context.Context) ([]*model.User, error) {
	return list[*model.User](ctx, r.engine, model.KindUser, nil)
}

type AmenityRepository struct{ store }

func NewAmenityRepository(engine storage.Engine) *AmenityRepository {
	return &AmenityRepository{store{engine}}
}

func (r *AmenityRepository) Get(ctx context.Context, id string) (*model.Amenity, error) {
	return get[*model.Amenity](ctx, r.engine, model.KindAmenity, id)
}

func (r *AmenityRepository) All(ctx context.Context) ([]*model.Amenity, error) {
	return list[*model.Amenity](ctx, r.engine, model.KindAmenity, nil)
}

type ReviewRepository struct{ store }

func NewReviewRepository(engine storage.Engine) *ReviewRepository {
	return &ReviewRepository{store{engine}}
}

func (r *ReviewRepository) Get(ctx context.Context, id string) (*model.Review, error) {
	return get[*model.Review](ctx, r.engine, model.KindReview, id)
}
