package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/deppfellow/hbnb/internal/errs"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/repository"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/storage"
	"github.com/rs/zerolog"
)

type fixture struct {
	t        *testing.T
	ctx      context.Context
	engine   storage.Engine
	services *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zerolog.Nop()

	engine := storage.NewFileStorage(filepath.Join(t.TempDir(), "file.json"), &log)
	s := &server.Server{Logger: &log, Storage: engine}

	services, err := NewService(s, repository.NewRepositories(s))
	if err != nil {
		t.Fatal(err)
	}
	return &fixture{t: t, ctx: context.Background(), engine: engine, services: services}
}

func (f *fixture) store(objs ...model.Entity) {
	f.t.Helper()
	for _, obj := range objs {
		if err := f.engine.New(f.ctx, obj); err != nil {
			f.t.Fatal(err)
		}
	}
	if err := f.engine.Save(f.ctx); err != nil {
		f.t.Fatal(err)
	}
}

func (f *fixture) state(name string) *model.State {
	s := model.New(model.KindState).(*model.State)
	s.Name = name
	f.store(s)
	return s
}

func (f *fixture) city(state *model.State, name string) *model.City {
	c := model.New(model.KindCity).(*model.City)
	c.Name = name
	c.StateID = state.ID
	f.store(c)
	return c
}

func (f *fixture) user(email string) *model.User {
	u := model.New(model.KindUser).(*model.User)
	u.Email = email
	f.store(u)
	return u
}

func (f *fixture) amenity(name string) *model.Amenity {
	a := model.New(model.KindAmenity).(*model.Amenity)
	a.Name = name
	f.store(a)
	return a
}

func (f *fixture) place(city *model.City, owner *model.User, name string, amenities ...*model.Amenity) *model.Place {
	p := model.New(model.KindPlace).(*model.Place)
	p.Name = name
	p.CityID = city.ID
	p.UserID = owner.ID
	for _, a := range amenities {
		p.AddAmenity(a.ID)
	}
	f.store(p)
	return p
}

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v (%T), want *errs.HTTPError", err, err)
	}
	if httpErr.Status != status || httpErr.Message != message {
		t.Errorf("got %d %q, want %d %q", httpErr.Status, httpErr.Message, status, message)
	}
}
