// Package storage persists the domain entities.
//
// Engine is the contract every backend implements. Two backends exist:
//   - FileStorage: every object serialized into a single JSON file
//   - DBStorage: PostgreSQL rows through a pgx connection pool
//
// Which one runs is decided once at startup by storage.type (see Open).
//
// Objects returned by an engine are copies. Changing one has no effect until
// it is registered again with New and the engine is saved:
//
//	ctx = storage.WithUnitOfWork(ctx)
//	place.Name = "Loft"
//	place.Touch()
//	engine.New(ctx, place)
//	engine.Save(ctx)
//
// Save persists the changes registered through the same unit of work, so
// concurrent callers never save, or fail on, each other's changes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/deppfellow/hbnb/internal/config"
	"github.com/deppfellow/hbnb/internal/database"
	"github.com/deppfellow/hbnb/internal/logger"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Get when no object of that kind has the id.
var ErrNotFound = errors.New("object not found")

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/deppfellow/hbnb/internal/storage Engine

// Engine is the storage abstraction the services depend on.
//
// A zero Kind ("") in All and Count means every kind.
type Engine interface {
	// All returns the objects of a kind in creation order.
	All(ctx context.Context, kind model.Kind) ([]model.Entity, error)

	// Get returns one object, or ErrNotFound.
	Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error)

	// New registers obj (new or modified) to be persisted by the next Save
	// with the same unit of work.
	New(ctx context.Context, obj model.Entity) error

	// Delete registers obj and everything that belongs to it for removal.
	Delete(ctx context.Context, obj model.Entity) error

	// Save persists the changes registered through ctx's unit of work.
	Save(ctx context.Context) error

	// Count returns the number of objects of a kind.
	Count(ctx context.Context, kind model.Kind) (int, error)

	// Reload discards ctx's unsaved changes and re-reads the backing store.
	Reload(ctx context.Context) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the engine's resources.
	Close() error
}

// Open builds the engine selected by cfg.Storage.Type and loads its state.
func Open(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) (Engine, error) {
	switch cfg.Storage.Type {
	case config.StorageFile:
		fs := NewFileStorage(cfg.Storage.FilePath, log)
		if err := fs.Reload(ctx); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Storage.FilePath).Msg("using file storage")
		return fs, nil

	case config.StorageDB:
		db, err := database.New(ctx, cfg, log, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Info().Str("database", cfg.Database.Name).Msg("using database storage")
		return NewDBStorage(db, log, cfg.Observability.Logging.SlowQueryThreshold), nil
	}

	return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
}

// kinds expands the zero Kind into every kind.
func kinds(kind model.Kind) ([]model.Kind, error) {
	if kind == "" {
		return model.Kinds, nil
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return []model.Kind{kind}, nil
}

// sortByCreation orders objects by created_at, breaking ties by id.
func sortByCreation(objs []model.Entity) {
	sort.SliceStable(objs, func(i, j int) bool {
		a, b := objs[i].Base(), objs[j].Base()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
