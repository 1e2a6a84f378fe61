package repository

import (
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/storage"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the one storage engine; Engine is exposed for
// the operations that span kinds (stats counts, health checks).
type Repositories struct {
	Engine    storage.Engine
	States    *StateRepository
	Cities    *CityRepository
	Places    *PlaceRepository
	Users     *UserRepository
	Amenities *AmenityRepository
	Reviews   *ReviewRepository
}

// NewRepositories builds the container on top of the server's storage engine.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesForEngine(s.Storage)
}

// NewRepositoriesForEngine builds the container on top of engine.
func NewRepositoriesForEngine(engine storage.Engine) *Repositories {
	return &Repositories{
		Engine:    engine,
		States:    NewStateRepository(engine),
		Cities:    NewCityRepository(engine),
		Places:    NewPlaceRepository(engine),
		Users:     NewUserRepository(engine),
		Amenities: NewAmenityRepository(engine),
		Reviews:   NewReviewRepository(engine),
	}
}
