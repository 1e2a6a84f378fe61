package storage

import (
	"context"
	"testing"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/rs/zerolog"
)

func TestWithUnitOfWorkReusesExistingUnit(t *testing.T) {
	ctx := WithUnitOfWork(context.Background())
	if WithUnitOfWork(ctx) != ctx {
		t.Error("a context that carries a unit of work must be returned as is")
	}
	if unitFrom(context.Background()) != nil {
		t.Error("a bare context has no unit of work")
	}
}

func TestDBStorageUnitsOfWorkAreIsolated(t *testing.T) {
	log := zerolog.Nop()
	// No pool: nothing below may reach the database.
	s := NewDBStorage(nil, &log, 0)

	ctxA := WithUnitOfWork(context.Background())
	ctxB := WithUnitOfWork(context.Background())

	place := model.New(model.KindPlace)
	review := model.New(model.KindReview)

	if err := s.New(ctxA, place); err != nil {
		t.Fatal(err)
	}
	if err := s.New(ctxB, review); err != nil {
		t.Fatal(err)
	}

	if err := s.Reload(ctxB); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctxB); err != nil {
		t.Fatalf("saving an emptied unit: %v", err)
	}

	ops := unitFrom(ctxA).ops
	if len(ops) != 1 || ops[0].obj.Base().ID != place.Base().ID {
		t.Errorf("unit A holds %d ops, want only its own place", len(ops))
	}
	if len(unitFrom(ctxB).ops) != 0 {
		t.Error("unit B should be empty after Reload")
	}
}

func TestDBStorageSaveWithoutUnitIsNoop(t *testing.T) {
	log := zerolog.Nop()
	s := NewDBStorage(nil, &log, 0)

	if err := s.Save(context.Background()); err != nil {
		t.Errorf("Save = %v", err)
	}
}
