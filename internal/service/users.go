package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/deppfellow/hbnb/internal/service WelcomeMailer

// WelcomeMailer schedules the welcome email of a new user.
// *job.JobService implements it.
type WelcomeMailer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, firstName string) error
}

type UserService struct {
	repos  *repository.Repositories
	mailer WelcomeMailer
	logger *zerolog.Logger
}

// NewUserService builds the service. mailer may be nil, in which case no
// welcome email is sent.
func NewUserService(repos *repository.Repositories, mailer WelcomeMailer, logger *zerolog.Logger) *UserService {
	return &UserService{repos: repos, mailer: mailer, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.repos.Users.All(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repos.Users.Get(ctx, id)
	return user, notFound(err)
}

// Create stores the user with a hashed password and enqueues the welcome
// email. Failing to enqueue is logged, not returned: the user exists.
func (s *UserService) Create(ctx context.Context, body map[string]any) (*model.User, error) {
	if err := requireObject(body); err != nil {
		return nil, err
	}
	if err := requireKeys(body, "email", "password"); err != nil {
		return nil, err
	}

	user := model.New(model.KindUser).(*model.User)
	if err := applyFields(user, body); err != nil {
		return nil, err
	}
	if err := s.repos.Users.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.EnqueueWelcomeEmail(ctx, user.Email, user.FirstName); err != nil {
			s.logger.Error().
				Err(err).
				Str("user_id", user.ID).
				Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

// Update changes names and password. The email is the account's identity
// and stays as created.
func (s *UserService) Update(ctx context.Context, id string, body map[string]any) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := update(user, body, "email"); err != nil {
		return nil, err
	}
	if err := s.repos.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user with their places and reviews.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Users.Remove(ctx, user)
}
