package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/hbnb/internal/mocks"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
	"github.com/deppfellow/hbnb/internal/storage"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
)

func TestStateLifecycle(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.States.Create(f.ctx, map[string]any{"id": "x"})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing name")

	state, err := f.services.States.Create(f.ctx, map[string]any{"name": "Oregon"})
	if err != nil {
		t.Fatal(err)
	}

	state, err = f.services.States.Update(f.ctx, state.ID, map[string]any{"name": "Washington"})
	if err != nil || state.Name != "Washington" {
		t.Fatalf("update: %+v, %v", state, err)
	}

	city, err := f.services.Cities.Create(f.ctx, state.ID, map[string]any{"name": "Seattle", "state_id": "ignored"})
	if err != nil {
		t.Fatal(err)
	}
	if city.StateID != state.ID {
		t.Errorf("state_id = %s", city.StateID)
	}

	cities, err := f.services.Cities.ListByState(f.ctx, state.ID)
	if err != nil || len(cities) != 1 {
		t.Errorf("cities = %v, err = %v", cities, err)
	}

	if err := f.services.States.Delete(f.ctx, state.ID); err != nil {
		t.Fatal(err)
	}
	_, err = f.services.Cities.Get(f.ctx, city.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestCityErrors(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")

	_, err := f.services.Cities.Create(f.ctx, "missing", map[string]any{"name": "x"})
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	_, err = f.services.Cities.Create(f.ctx, ca.ID, map[string]any{})
	assertHTTPError(t, err, http.StatusBadRequest, "Not a JSON")

	_, err = f.services.Cities.ListByState(f.ctx, "missing")
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestReviewCreateValidationOrder(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")
	p := f.place(sf, owner, "Loft")

	_, err := f.services.Reviews.Create(f.ctx, "missing", nil)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	_, err = f.services.Reviews.Create(f.ctx, p.ID, nil)
	assertHTTPError(t, err, http.StatusBadRequest, "Not a JSON")

	_, err = f.services.Reviews.Create(f.ctx, p.ID, map[string]any{"text": "Nice"})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing user_id")

	_, err = f.services.Reviews.Create(f.ctx, p.ID, map[string]any{"user_id": "nobody", "text": "Nice"})
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	_, err = f.services.Reviews.Create(f.ctx, p.ID, map[string]any{"user_id": owner.ID})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing text")

	review, err := f.services.Reviews.Create(f.ctx, p.ID, map[string]any{"user_id": owner.ID, "text": "Nice"})
	if err != nil {
		t.Fatal(err)
	}

	review, err = f.services.Reviews.Update(f.ctx, review.ID, map[string]any{"text": "Very nice", "place_id": "other"})
	if err != nil || review.Text != "Very nice" || review.PlaceID != p.ID {
		t.Errorf("update: %+v, %v", review, err)
	}

	reviews, err := f.services.Reviews.ListByPlace(f.ctx, p.ID)
	if err != nil || len(reviews) != 1 {
		t.Errorf("reviews = %v, err = %v", reviews, err)
	}
}

func TestUserCreateEnqueuesWelcomeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t)
	log := zerolog.Nop()
	mailer := mocks.NewMockWelcomeMailer(ctrl)
	users := NewUserService(repository.NewRepositoriesForEngine(f.engine), mailer, &log)

	mailer.EXPECT().EnqueueWelcomeEmail(gomock.Any(), "betty@hbnb.io", "Betty").Return(nil)

	user, err := users.Create(f.ctx, map[string]any{
		"email":      "betty@hbnb.io",
		"password":   "pwd",
		"first_name": "Betty",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !user.CheckPassword("pwd") {
		t.Error("password not hashed with bcrypt")
	}
	if _, ok := model.ToMap(user)["password"]; ok {
		t.Error("password leaked into the API representation")
	}

	mailer.EXPECT().EnqueueWelcomeEmail(gomock.Any(), "bob@hbnb.io", "").Return(errors.New("redis down"))
	if _, err := users.Create(f.ctx, map[string]any{"email": "bob@hbnb.io", "password": "pwd"}); err != nil {
		t.Errorf("enqueue failure must not fail the request: %v", err)
	}
}

func TestUserValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Users.Create(f.ctx, map[string]any{"password": "pwd"})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing email")

	_, err = f.services.Users.Create(f.ctx, map[string]any{"email": "a@b.c"})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing password")

	user, err := f.services.Users.Create(f.ctx, map[string]any{"email": "a@b.c", "password": "pwd"})
	if err != nil {
		t.Fatal(err)
	}

	user, err = f.services.Users.Update(f.ctx, user.ID, map[string]any{"email": "new@b.c", "last_name": "Holberton"})
	if err != nil || user.Email != "a@b.c" || user.LastName != "Holberton" {
		t.Errorf("update: %+v, %v", user, err)
	}
}

func TestAmenityLifecycle(t *testing.T) {
	f := newFixture(t)

	amenity, err := f.services.Amenities.Create(f.ctx, map[string]any{"name": "Wifi"})
	if err != nil {
		t.Fatal(err)
	}
	amenity, err = f.services.Amenities.Update(f.ctx, amenity.ID, map[string]any{"name": "Fast wifi"})
	if err != nil || amenity.Name != "Fast wifi" {
		t.Errorf("update: %+v, %v", amenity, err)
	}

	list, err := f.services.Amenities.List(f.ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("list = %v, err = %v", list, err)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	f.city(ca, "San Francisco")
	f.city(ca, "Los Angeles")
	f.amenity("Wifi")

	stats, err := f.services.Index.Stats(f.ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"amenities": 1, "cities": 2, "places": 0, "reviews": 0, "states": 1, "users": 0}
	for k, v := range want {
		if stats[k] != v {
			t.Errorf("stats[%s] = %d, want %d", k, stats[k], v)
		}
	}
}

func TestSaveFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	states := NewStateService(repository.NewRepositoriesForEngine(engine))

	saveErr := errors.New("disk full")
	engine.EXPECT().New(gomock.Any(), gomock.Any()).Return(nil)
	engine.EXPECT().Save(gomock.Any()).Return(saveErr)

	_, err := states.Create(context.Background(), map[string]any{"name": "Utah"})
	if !errors.Is(err, saveErr) {
		t.Errorf("err = %v, want %v", err, saveErr)
	}
}

func TestEngineErrorsAreNotNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	places := NewPlaceService(repository.NewRepositoriesForEngine(engine))

	connErr := errors.New("connection refused")
	engine.EXPECT().Get(gomock.Any(), model.KindPlace, "p1").Return(nil, connErr)
	engine.EXPECT().Get(gomock.Any(), model.KindPlace, "p2").Return(nil, storage.ErrNotFound)

	if _, err := places.Get(context.Background(), "p1"); !errors.Is(err, connErr) {
		t.Errorf("err = %v, want the engine error", err)
	}
	_, err := places.Get(context.Background(), "p2")
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestSearchPropagatesEngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	places := NewPlaceService(repository.NewRepositoriesForEngine(engine))

	engine.EXPECT().All(gomock.Any(), model.KindPlace).Return(nil, errors.New("timeout"))

	if _, err := places.Search(context.Background(), SearchFilter{}); err == nil {
		t.Error("expected the engine error")
	}
}
