package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
)

type ReviewService struct {
	repos *repository.Repositories
}

func NewReviewService(repos *repository.Repositories) *ReviewService {
	return &ReviewService{repos: repos}
}

// ListByPlace returns the reviews of a place, or 404 if the place is unknown.
func (s *ReviewService) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	if _, err := s.repos.Places.Get(ctx, placeID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Places.Reviews(ctx, placeID)
}

func (s *ReviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.repos.Reviews.Get(ctx, id)
	return review, notFound(err)
}

// Create checks, in order: the place exists, the body is a JSON object,
// user_id is present and resolves, text is present.
func (s *ReviewService) Create(ctx context.Context, placeID string, body map[string]any) (*model.Review, error) {
	if _, err := s.repos.Places.Get(ctx, placeID); err != nil {
		return nil, notFound(err)
	}
	if err := requireObject(body); err != nil {
		return nil, err
	}
	userID, err := requireString(body, "user_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.Get(ctx, userID); err != nil {
		return nil, notFound(err)
	}
	if err := requireKeys(body, "text"); err != nil {
		return nil, err
	}

	review := model.New(model.KindReview).(*model.Review)
	if err := applyFields(review, body, "place_id"); err != nil {
		return nil, err
	}
	review.PlaceID = placeID

	if err := s.repos.Reviews.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, body map[string]any) (*model.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(review, body, "user_id", "place_id"); err != nil {
		return nil, err
	}
	if err := s.repos.Reviews.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Reviews.Remove(ctx, review)
}
