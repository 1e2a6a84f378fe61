// Package repository handles all interactions with the storage engine.
//
// It wraps storage.Engine with typed lookups per entity and the
// relationship traversals the services need (cities of a state, places of
// a city, reviews and amenities of a place), so services never type-assert
// engine results themselves.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/storage"
)

// store holds the operations shared by every entity repository.
type store struct {
	engine storage.Engine
}

// Save registers obj with the engine and persists it, in ctx's unit of work
// or a fresh one, so changes staged by other callers are never flushed here.
func (s store) Save(ctx context.Context, obj model.Entity) error {
	ctx = storage.WithUnitOfWork(ctx)
	if err := s.engine.New(ctx, obj); err != nil {
		return fmt.Errorf("registering %s %s: %w", obj.Kind(), obj.Base().ID, err)
	}
	if err := s.engine.Save(ctx); err != nil {
		return fmt.Errorf("saving %s %s: %w", obj.Kind(), obj.Base().ID, err)
	}
	return nil
}

// Remove deletes obj (and its dependents) and persists the deletion.
func (s store) Remove(ctx context.Context, obj model.Entity) error {
	ctx = storage.WithUnitOfWork(ctx)
	if err := s.engine.Delete(ctx, obj); err != nil {
		return fmt.Errorf("deleting %s %s: %w", obj.Kind(), obj.Base().ID, err)
	}
	if err := s.engine.Save(ctx); err != nil {
		return fmt.Errorf("saving deletion of %s %s: %w", obj.Kind(), obj.Base().ID, err)
	}
	return nil
}

// get fetches one entity as its concrete type. Missing ids surface as
// storage.ErrNotFound.
func get[T model.Entity](ctx context.Context, engine storage.Engine, kind model.Kind, id string) (T, error) {
	var zero T

	obj, err := engine.Get(ctx, kind, id)
	if err != nil {
		return zero, err
	}

	typed, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("%s %s: unexpected type %T", kind, id, obj)
	}
	return typed, nil
}

// list fetches every entity of a kind, in creation order, keeping those
// accepted by keep (all of them when keep is nil).
func list[T model.Entity](ctx context.Context, engine storage.Engine, kind model.Kind, keep func(T) bool) ([]T, error) {
	objs, err := engine.All(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind.Plural(), err)
	}

	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		typed, ok := obj.(T)
		if !ok {
			return nil, fmt.Errorf("listing %s: unexpected type %T", kind.Plural(), obj)
		}
		if keep == nil || keep(typed) {
			out = append(out, typed)
		}
	}
	return out, nil
}
