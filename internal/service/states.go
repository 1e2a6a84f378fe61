package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
)

type StateService struct {
	repos *repository.Repositories
}

func NewStateService(repos *repository.Repositories) *StateService {
	return &StateService{repos: repos}
}

func (s *StateService) List(ctx context.Context) ([]*model.State, error) {
	return s.repos.States.All(ctx)
}

func (s *StateService) Get(ctx context.Context, id string) (*model.State, error) {
	state, err := s.repos.States.Get(ctx, id)
	return state, notFound(err)
}

func (s *StateService) Create(ctx context.Context, body map[string]any) (*model.State, error) {
	if err := requireObject(body); err != nil {
		return nil, err
	}
	if err := requireKeys(body, "name"); err != nil {
		return nil, err
	}

	state := model.New(model.KindState).(*model.State)
	if err := applyFields(state, body); err != nil {
		return nil, err
	}
	if err := s.repos.States.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *StateService) Update(ctx context.Context, id string, body map[string]any) (*model.State, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(state, body); err != nil {
		return nil, err
	}
	if err := s.repos.States.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Delete removes the state together with its cities and their places.
func (s *StateService) Delete(ctx context.Context, id string) error {
	state, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.States.Remove(ctx, state)
}
