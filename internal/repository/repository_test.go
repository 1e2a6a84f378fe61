package repository

import (
	"context"
	"testing"

	"github.com/deppfellow/hbnb/internal/mocks"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/golang/mock/gomock"
)

func TestSaveStagesAndSavesInOneUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	repos := NewRepositoriesForEngine(engine)
	base := context.Background()

	var staged, saved []context.Context
	engine.EXPECT().New(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(ctx context.Context, _ model.Entity) error {
			staged = append(staged, ctx)
			return nil
		})
	engine.EXPECT().Save(gomock.Any()).Times(2).DoAndReturn(
		func(ctx context.Context) error {
			saved = append(saved, ctx)
			return nil
		})

	for i := 0; i < 2; i++ {
		if err := repos.States.Save(base, model.New(model.KindState)); err != nil {
			t.Fatal(err)
		}
	}

	for i := range staged {
		if staged[i] == base {
			t.Error("New must not run on the caller's bare context")
		}
		if staged[i] != saved[i] {
			t.Error("New and Save must share one unit of work")
		}
	}
	if staged[0] == staged[1] {
		t.Error("separate saves must not share a unit of work")
	}
}

func TestRemoveStagesAndSavesInOneUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	repos := NewRepositoriesForEngine(engine)

	var deleted context.Context
	engine.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ model.Entity) error {
			deleted = ctx
			return nil
		})
	engine.EXPECT().Save(gomock.Any()).DoAndReturn(
		func(ctx context.Context) error {
			if ctx != deleted {
				t.Error("Delete and Save must share one unit of work")
			}
			return nil
		})

	if err := repos.Amenities.Remove(context.Background(), model.New(model.KindAmenity)); err != nil {
		t.Fatal(err)
	}
}
