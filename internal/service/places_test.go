package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/hbnb/internal/model"
)

func TestListPlacesByCity(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	empty := f.city(ca, "Fresno")
	owner := f.user("owner@hbnb.io")
	p := f.place(sf, owner, "Loft")

	places, err := f.services.Places.ListByCity(f.ctx, sf.ID)
	if err != nil || len(places) != 1 || places[0].ID != p.ID {
		t.Errorf("places = %v, err = %v", places, err)
	}

	places, err = f.services.Places.ListByCity(f.ctx, empty.ID)
	if err != nil || len(places) != 0 {
		t.Errorf("city without places: %v, %v", places, err)
	}

	_, err = f.services.Places.ListByCity(f.ctx, "missing")
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestCreatePlaceValidationOrder(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")

	cases := []struct {
		name    string
		cityID  string
		body    map[string]any
		status  int
		message string
	}{
		{"unknown city wins over a bad body", "missing", nil, http.StatusNotFound, "Not found"},
		{"no body", sf.ID, nil, http.StatusBadRequest, "Not a JSON"},
		{"empty body", sf.ID, map[string]any{}, http.StatusBadRequest, "Not a JSON"},
		{"no name", sf.ID, map[string]any{"user_id": owner.ID}, http.StatusBadRequest, "Missing name"},
		{"no user", sf.ID, map[string]any{"name": "Loft"}, http.StatusBadRequest, "Missing user_id"},
		{"unknown user", sf.ID, map[string]any{"name": "Loft", "user_id": "nobody"}, http.StatusNotFound, "Not found"},
		{"bad type", sf.ID, map[string]any{"name": "Loft", "user_id": owner.ID, "max_guest": "four"}, http.StatusBadRequest, "Invalid value for max_guest"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.services.Places.Create(f.ctx, tc.cityID, tc.body)
			assertHTTPError(t, err, tc.status, tc.message)
		})
	}
}

func TestCreatePlaceUsesPathCity(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	la := f.city(ca, "Los Angeles")
	owner := f.user("owner@hbnb.io")

	place, err := f.services.Places.Create(f.ctx, sf.ID, map[string]any{
		"name":           "Loft",
		"user_id":        owner.ID,
		"city_id":        la.ID,
		"id":             "chosen-by-client",
		"price_by_night": float64(90),
		"latitude":       37.77,
	})
	if err != nil {
		t.Fatal(err)
	}

	if place.CityID != sf.ID {
		t.Errorf("city_id = %s, want path city %s", place.CityID, sf.ID)
	}
	if place.ID == "chosen-by-client" {
		t.Error("id must be generated, not taken from the body")
	}
	if place.PriceByNight != 90 || place.Latitude != 37.77 || place.UserID != owner.ID {
		t.Errorf("place = %+v", place)
	}

	stored, err := f.services.Places.Get(f.ctx, place.ID)
	if err != nil || stored.Name != "Loft" {
		t.Errorf("stored = %+v, err = %v", stored, err)
	}
}

func TestUpdatePlaceIgnoresImmutableKeys(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	la := f.city(ca, "Los Angeles")
	owner := f.user("owner@hbnb.io")
	other := f.user("other@hbnb.io")
	p := f.place(sf, owner, "Loft")

	time.Sleep(2 * time.Millisecond)

	updated, err := f.services.Places.Update(f.ctx, p.ID, map[string]any{
		"id":         "new-id",
		"user_id":    other.ID,
		"city_id":    la.ID,
		"created_at": "2001-01-01T00:00:00.000000",
		"updated_at": "2001-01-01T00:00:00.000000",
		"__class__":  "Place",
		"amenities":  []any{},
		"name":       "Renovated loft",
		"max_guest":  float64(6),
	})
	if err != nil {
		t.Fatal(err)
	}

	if updated.ID != p.ID || updated.UserID != owner.ID || updated.CityID != sf.ID {
		t.Errorf("immutable keys changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", p.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) {
		t.Errorf("updated_at not bumped: %v -> %v", p.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Name != "Renovated loft" || updated.MaxGuest != 6 {
		t.Errorf("mutable keys not applied: %+v", updated)
	}
}

func TestUpdatePlaceErrors(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")
	p := f.place(sf, owner, "Loft")

	_, err := f.services.Places.Update(f.ctx, "missing", nil)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	_, err = f.services.Places.Update(f.ctx, p.ID, nil)
	assertHTTPError(t, err, http.StatusBadRequest, "Not a JSON")

	_, err = f.services.Places.Update(f.ctx, p.ID, map[string]any{"name": "x", "hot_tub": true})
	assertHTTPError(t, err, http.StatusBadRequest, "Unknown field: hot_tub")

	stored, _ := f.services.Places.Get(f.ctx, p.ID)
	if stored.Name != "Loft" {
		t.Errorf("rejected update was persisted: %+v", stored)
	}
}

func TestDeletePlaceRemovesReviews(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")
	p := f.place(sf, owner, "Loft")

	review, err := f.services.Reviews.Create(f.ctx, p.ID, map[string]any{"user_id": owner.ID, "text": "Great"})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.services.Places.Delete(f.ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	_, err = f.services.Places.Get(f.ctx, p.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
	_, err = f.services.Reviews.Get(f.ctx, review.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	err = f.services.Places.Delete(f.ctx, p.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestPlaceAmenityLinks(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")
	wifi := f.amenity("Wifi")
	p := f.place(sf, owner, "Loft")

	_, created, err := f.services.Places.LinkAmenity(f.ctx, p.ID, wifi.ID)
	if err != nil || !created {
		t.Fatalf("first link: created=%v err=%v", created, err)
	}
	_, created, err = f.services.Places.LinkAmenity(f.ctx, p.ID, wifi.ID)
	if err != nil || created {
		t.Fatalf("second link: created=%v err=%v", created, err)
	}

	amenities, err := f.services.Places.Amenities(f.ctx, p.ID)
	if err != nil || len(amenities) != 1 || amenities[0].ID != wifi.ID {
		t.Errorf("amenities = %v, err = %v", amenities, err)
	}

	_, _, err = f.services.Places.LinkAmenity(f.ctx, p.ID, "missing")
	assertHTTPError(t, err, http.StatusNotFound, "Not found")

	if err := f.services.Places.UnlinkAmenity(f.ctx, p.ID, wifi.ID); err != nil {
		t.Fatal(err)
	}
	err = f.services.Places.UnlinkAmenity(f.ctx, p.ID, wifi.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Not found")
}

func TestDeleteAmenityUnlinksPlaces(t *testing.T) {
	f := newFixture(t)
	ca := f.state("California")
	sf := f.city(ca, "San Francisco")
	owner := f.user("owner@hbnb.io")
	wifi := f.amenity("Wifi")
	p := f.place(sf, owner, "Loft", wifi)

	if err := f.services.Amenities.Delete(f.ctx, wifi.ID); err != nil {
		t.Fatal(err)
	}

	stored, err := f.services.Places.Get(f.ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.HasAmenity(wifi.ID) {
		t.Error("deleted amenity still linked")
	}
	if m := model.ToMap(stored); len(m["amenities"].([]any)) != 0 {
		t.Errorf("amenities = %v", m["amenities"])
	}
}
