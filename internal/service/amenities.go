package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
)

type AmenityService struct {
	repos *repository.Repositories
}

func NewAmenityService(repos *repository.Repositories) *AmenityService {
	return &AmenityService{repos: repos}
}

func (s *AmenityService) List(ctx context.Context) ([]*model.Amenity, error) {
	return s.repos.Amenities.All(ctx)
}

func (s *AmenityService) Get(ctx context.Context, id string) (*model.Amenity, error) {
	amenity, err := s.repos.Amenities.Get(ctx, id)
	return amenity, notFound(err)
}

func (s *AmenityService) Create(ctx context.Context, body map[string]any) (*model.Amenity, error) {
	if err := requireObject(body); err != nil {
		return nil, err
	}
	if err := requireKeys(body, "name"); err != nil {
		return nil, err
	}

	amenity := model.New(model.KindAmenity).(*model.Amenity)
	if err := applyFields(amenity, body); err != nil {
		return nil, err
	}
	if err := s.repos.Amenities.Save(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *AmenityService) Update(ctx context.Context, id string, body map[string]any) (*model.Amenity, error) {
	amenity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(amenity, body); err != nil {
		return nil, err
	}
	if err := s.repos.Amenities.Save(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// Delete removes the amenity and unlinks it from every place.
func (s *AmenityService) Delete(ctx context.Context, id string) error {
	amenity, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Amenities.Remove(ctx, amenity)
}
