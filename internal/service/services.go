package service

import (
	"github.com/deppfellow/hbnb/internal/lib/job"
	"github.com/deppfellow/hbnb/internal/repository"
	"github.com/deppfellow/hbnb/internal/server"
)

type Services struct {
	States    *StateService
	Cities    *CityService
	Places    *PlaceService
	Users     *UserService
	Amenities *AmenityService
	Reviews   *ReviewService
	Index     *IndexService
	Job       *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not end up as a non-nil interface.
	var mailer WelcomeMailer
	if s.Job != nil {
		mailer = s.Job
	}

	return &Services{
		States:    NewStateService(repos),
		Cities:    NewCityService(repos),
		Places:    NewPlaceService(repos),
		Users:     NewUserService(repos, mailer, s.Logger),
		Amenities: NewAmenityService(repos),
		Reviews:   NewReviewService(repos),
		Index:     NewIndexService(repos.Engine),
		Job:       s.Job,
	}, nil
}
