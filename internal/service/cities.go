package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
)

type CityService struct {
	repos *repository.Repositories
}

func NewCityService(repos *repository.Repositories) *CityService {
	return &CityService{repos: repos}
}

// ListByState returns the cities of a state, or 404 if the state is unknown.
func (s *CityService) ListByState(ctx context.Context, stateID string) ([]*model.City, error) {
	if _, err := s.repos.States.Get(ctx, stateID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.States.Cities(ctx, stateID)
}

func (s *CityService) Get(ctx context.Context, id string) (*model.City, error) {
	city, err := s.repos.Cities.Get(ctx, id)
	return city, notFound(err)
}

func (s *CityService) Create(ctx context.Context, stateID string, body map[string]any) (*model.City, error) {
	if _, err := s.repos.States.Get(ctx, stateID); err != nil {
		return nil, notFound(err)
	}
	if err := requireObject(body); err != nil {
		return nil, err
	}
	if err := requireKeys(body, "name"); err != nil {
		return nil, err
	}

	city := model.New(model.KindCity).(*model.City)
	if err := applyFields(city, body, "state_id"); err != nil {
		return nil, err
	}
	city.StateID = stateID

	if err := s.repos.Cities.Save(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Update(ctx context.Context, id string, body map[string]any) (*model.City, error) {
	city, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(city, body, "state_id"); err != nil {
		return nil, err
	}
	if err := s.repos.Cities.Save(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Delete(ctx context.Context, id string) error {
	city, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Cities.Remove(ctx, city)
}
