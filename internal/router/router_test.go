package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/deppfellow/hbnb/internal/config"
	"github.com/deppfellow/hbnb/internal/handler"
	"github.com/deppfellow/hbnb/internal/repository"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/deppfellow/hbnb/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type api struct {
	t    *testing.T
	echo *echo.Echo
}

func newAPI(t *testing.T) *api {
	t.Helper()
	log := zerolog.Nop()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Storage: config.StorageConfig{
			Type:     config.StorageFile,
			FilePath: filepath.Join(t.TempDir(), "file.json"),
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	s := &server.Server{
		Config:  cfg,
		Logger:  &log,
		Storage: storage.NewFileStorage(cfg.Storage.FilePath, &log),
	}

	services, err := service.NewService(s, repository.NewRepositories(s))
	if err != nil {
		t.Fatal(err)
	}

	return &api{t: t, echo: NewRouter(s, handler.NewHandlers(s, services))}
}

// do sends body as JSON (raw when it is a string) and decodes the response.
func (a *api) do(method, path string, body any) (int, any) {
	a.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			a.t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var decoded any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			a.t.Fatalf("%s %s: response %q is not JSON: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code, decoded
}

// create POSTs body and returns the id of the created object.
func (a *api) create(path string, body map[string]any) string {
	a.t.Helper()
	status, res := a.do(http.MethodPost, path, body)
	if status != http.StatusCreated {
		a.t.Fatalf("POST %s = %d %v", path, status, res)
	}
	return res.(map[string]any)["id"].(string)
}

func (a *api) expectError(method, path string, body any, status int, message string) {
	a.t.Helper()
	got, res := a.do(method, path, body)
	if got != status {
		a.t.Errorf("%s %s = %d, want %d (%v)", method, path, got, status, res)
		return
	}
	if m, ok := res.(map[string]any); !ok || m["error"] != message {
		a.t.Errorf("%s %s error = %v, want %q", method, path, res, message)
	}
}

type world struct {
	california, nevada    string
	sanFrancisco, reno    string
	owner, wifi, pool     string
	loft, cabin, bungalow string
}

func seed(a *api) world {
	var w world
	w.california = a.create("/api/v1/states", map[string]any{"name": "California"})
	w.nevada = a.create("/api/v1/states", map[string]any{"name": "Nevada"})
	w.sanFrancisco = a.create("/api/v1/states/"+w.california+"/cities", map[string]any{"name": "San Francisco"})
	w.reno = a.create("/api/v1/states/"+w.nevada+"/cities", map[string]any{"name": "Reno"})
	w.owner = a.create("/api/v1/users", map[string]any{"email": "owner@hbnb.io", "password": "secret"})
	w.wifi = a.create("/api/v1/amenities", map[string]any{"name": "Wifi"})
	w.pool = a.create("/api/v1/amenities", map[string]any{"name": "Pool"})

	w.loft = a.create("/api/v1/cities/"+w.sanFrancisco+"/places", map[string]any{"name": "Loft", "user_id": w.owner})
	w.cabin = a.create("/api/v1/cities/"+w.reno+"/places", map[string]any{"name": "Cabin", "user_id": w.owner})
	w.bungalow = a.create("/api/v1/cities/"+w.sanFrancisco+"/places", map[string]any{"name": "Bungalow", "user_id": w.owner})

	a.create("/api/v1/places/"+w.loft+"/amenities/"+w.wifi, nil)
	a.create("/api/v1/places/"+w.cabin+"/amenities/"+w.wifi, nil)
	a.create("/api/v1/places/"+w.cabin+"/amenities/"+w.pool, nil)
	return w
}

func names(t *testing.T, res any) []string {
	t.Helper()
	list, ok := res.([]any)
	if !ok {
		t.Fatalf("expected a list, got %v", res)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, item.(map[string]any)["name"].(string))
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIndexRoutes(t *testing.T) {
	a := newAPI(t)

	status, res := a.do(http.MethodGet, "/api/v1/status", nil)
	if status != http.StatusOK || res.(map[string]any)["status"] != "OK" {
		t.Errorf("status = %d %v", status, res)
	}

	seed(a)
	status, res = a.do(http.MethodGet, "/api/v1/stats", nil)
	stats := res.(map[string]any)
	if status != http.StatusOK || stats["states"] != float64(2) || stats["places"] != float64(3) || stats["reviews"] != float64(0) {
		t.Errorf("stats = %d %v", status, res)
	}
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	status, res := a.do(http.MethodGet, "/status", nil)
	body := res.(map[string]any)
	if status != http.StatusOK || body["status"] != "healthy" || body["storage"] != "file" {
		t.Errorf("health = %d %v", status, res)
	}
	if _, ok := body["checks"].(map[string]any)["storage"]; !ok {
		t.Errorf("storage check missing: %v", body["checks"])
	}
}

func TestUnknownRoute(t *testing.T) {
	a := newAPI(t)
	a.expectError(http.MethodGet, "/api/v1/nowhere", nil, http.StatusNotFound, "Not found")
}

func TestPlaceRoutes(t *testing.T) {
	a := newAPI(t)
	w := seed(a)

	status, res := a.do(http.MethodGet, "/api/v1/cities/"+w.sanFrancisco+"/places", nil)
	if status != http.StatusOK || !equal(names(t, res), []string{"Loft", "Bungalow"}) {
		t.Errorf("list = %d %v", status, res)
	}

	status, res = a.do(http.MethodGet, "/api/v1/places/"+w.loft, nil)
	place := res.(map[string]any)
	if status != http.StatusOK || place["__class__"] != "Place" || place["city_id"] != w.sanFrancisco {
		t.Errorf("get = %d %v", status, res)
	}

	a.expectError(http.MethodGet, "/api/v1/places/missing", nil, http.StatusNotFound, "Not found")
	a.expectError(http.MethodGet, "/api/v1/cities/missing/places", nil, http.StatusNotFound, "Not found")
}

func TestCreatePlaceErrors(t *testing.T) {
	a := newAPI(t)
	w := seed(a)
	path := "/api/v1/cities/" + w.sanFrancisco + "/places"

	a.expectError(http.MethodPost, "/api/v1/cities/missing/places", "garbage", http.StatusNotFound, "Not found")
	a.expectError(http.MethodPost, path, nil, http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPost, path, "{not json", http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPost, path, `["name"]`, http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPost, path, map[string]any{"user_id": w.owner}, http.StatusBadRequest, "Missing name")
	a.expectError(http.MethodPost, path, map[string]any{"name": "Flat"}, http.StatusBadRequest, "Missing user_id")
	a.expectError(http.MethodPost, path, map[string]any{"name": "Flat", "user_id": "nobody"}, http.StatusNotFound, "Not found")
}

func TestUpdatePlace(t *testing.T) {
	a := newAPI(t)
	w := seed(a)
	path := "/api/v1/places/" + w.loft

	status, res := a.do(http.MethodPut, path, map[string]any{
		"name":      "Sunny loft",
		"max_guest": 4,
		"city_id":   w.reno,
		"id":        "other",
	})
	place := res.(map[string]any)
	if status != http.StatusOK || place["name"] != "Sunny loft" || place["max_guest"] != float64(4) {
		t.Errorf("update = %d %v", status, res)
	}
	if place["id"] != w.loft || place["city_id"] != w.sanFrancisco {
		t.Errorf("immutable keys changed: %v", place)
	}

	a.expectError(http.MethodPut, path, nil, http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPut, path, map[string]any{"sauna": true}, http.StatusBadRequest, "Unknown field: sauna")
	a.expectError(http.MethodPut, path, map[string]any{"max_guest": "many"}, http.StatusBadRequest, "Invalid value for max_guest")
	a.expectError(http.MethodPut, "/api/v1/places/missing", map[string]any{"name": "x"}, http.StatusNotFound, "Not found")
}

func TestDeletePlace(t *testing.T) {
	a := newAPI(t)
	w := seed(a)

	status, res := a.do(http.MethodDelete, "/api/v1/places/"+w.loft, nil)
	if status != http.StatusOK || len(res.(map[string]any)) != 0 {
		t.Errorf("delete = %d %v", status, res)
	}
	a.expectError(http.MethodGet, "/api/v1/places/"+w.loft, nil, http.StatusNotFound, "Not found")
	a.expectError(http.MethodDelete, "/api/v1/places/"+w.loft, nil, http.StatusNotFound, "Not found")
}

func TestPlacesSearch(t *testing.T) {
	a := newAPI(t)
	w := seed(a)
	path := "/api/v1/places_search"

	cases := []struct {
		name   string
		filter map[string]any
		want   []string
	}{
		{"empty body", map[string]any{}, []string{"Loft", "Cabin", "Bungalow"}},
		{"empty lists", map[string]any{"states": []string{}, "cities": []string{}}, []string{"Loft", "Cabin", "Bungalow"}},
		{"state", map[string]any{"states": []string{w.california}}, []string{"Loft", "Bungalow"}},
		{"state and city", map[string]any{"states": []string{w.nevada}, "cities": []string{w.sanFrancisco}}, []string{"Cabin", "Loft", "Bungalow"}},
		{"city already covered", map[string]any{"states": []string{w.california}, "cities": []string{w.sanFrancisco}}, []string{"Loft", "Bungalow"}},
		{"amenity only", map[string]any{"amenities": []string{w.wifi}}, []string{"Loft", "Cabin"}},
		{"all amenities required", map[string]any{"amenities": []string{w.wifi, w.pool}}, []string{"Cabin"}},
		{"state and amenity", map[string]any{"states": []string{w.california}, "amenities": []string{w.wifi}}, []string{"Loft"}},
		{"unknown ids skipped", map[string]any{"states": []string{"nope"}, "cities": []string{w.reno}}, []string{"Cabin"}},
		{"unknown amenity", map[string]any{"amenities": []string{"nope"}}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, res := a.do(http.MethodPost, path, tc.filter)
			if status != http.StatusOK {
				t.Fatalf("status = %d %v", status, res)
			}
			if got := names(t, res); !equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			for _, item := range res.([]any) {
				if _, ok := item.(map[string]any)["amenities"]; ok {
					t.Errorf("search results must not carry amenities: %v", item)
				}
			}
		})
	}

	a.expectError(http.MethodPost, path, nil, http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPost, path, "{bad", http.StatusBadRequest, "Not a JSON")
	a.expectError(http.MethodPost, path, map[string]any{"states": "CA"}, http.StatusBadRequest, "Invalid value for states")
}

func TestPlaceAmenityRoutes(t *testing.T) {
	a := newAPI(t)
	w := seed(a)
	path := "/api/v1/places/" + w.bungalow + "/amenities/" + w.pool

	if status, _ := a.do(http.MethodPost, path, nil); status != http.StatusCreated {
		t.Errorf("first link = %d", status)
	}
	if status, _ := a.do(http.MethodPost, path, nil); status != http.StatusOK {
		t.Errorf("second link = %d", status)
	}

	status, res := a.do(http.MethodGet, "/api/v1/places/"+w.bungalow+"/amenities", nil)
	if status != http.StatusOK || !equal(names(t, res), []string{"Pool"}) {
		t.Errorf("amenities = %d %v", status, res)
	}

	if status, _ := a.do(http.MethodDelete, path, nil); status != http.StatusOK {
		t.Errorf("unlink = %d", status)
	}
	a.expectError(http.MethodDelete, path, nil, http.StatusNotFound, "Not found")
	a.expectError(http.MethodPost, "/api/v1/places/"+w.bungalow+"/amenities/missing", nil, http.StatusNotFound, "Not found")
}

func TestUserRoutesHidePassword(t *testing.T) {
	a := newAPI(t)
	w := seed(a)

	status, res := a.do(http.MethodGet, "/api/v1/users/"+w.owner, nil)
	user := res.(map[string]any)
	if status != http.StatusOK || user["email"] != "owner@hbnb.io" {
		t.Errorf("user = %d %v", status, res)
	}
	if _, ok := user["password"]; ok {
		t.Error("password must not be exposed")
	}

	a.expectError(http.MethodPost, "/api/v1/users", map[string]any{"password": "x"}, http.StatusBadRequest, "Missing email")
}

func TestStateDeleteCascades(t *testing.T) {
	a := newAPI(t)
	w := seed(a)

	if status, _ := a.do(http.MethodDelete, "/api/v1/states/"+w.california, nil); status != http.StatusOK {
		t.Fatalf("delete state = %d", status)
	}
	a.expectError(http.MethodGet, "/api/v1/cities/"+w.sanFrancisco, nil, http.StatusNotFound, "Not found")
	a.expectError(http.MethodGet, "/api/v1/places/"+w.loft, nil, http.StatusNotFound, "Not found")

	status, res := a.do(http.MethodGet, "/api/v1/states", nil)
	if status != http.StatusOK || !equal(names(t, res), []string{"Nevada"}) {
		t.Errorf("states = %d %v", status, res)
	}
}

func TestReviewRoutes(t *testing.T) {
	a := newAPI(t)
	w := seed(a)
	path := "/api/v1/places/" + w.loft + "/reviews"

	a.expectError(http.MethodPost, path, map[string]any{"user_id": w.owner}, http.StatusBadRequest, "Missing text")
	id := a.create(path, map[string]any{"user_id": w.owner, "text": "Lovely"})

	status, res := a.do(http.MethodGet, path, nil)
	if status != http.StatusOK || len(res.([]any)) != 1 {
		t.Errorf("reviews = %d %v", status, res)
	}

	status, res = a.do(http.MethodPut, "/api/v1/reviews/"+id, map[string]any{"text": "Lovely view"})
	if status != http.StatusOK || res.(map[string]any)["text"] != "Lovely view" {
		t.Errorf("update = %d %v", status, res)
	}
}
