package storage

import (
	"strings"
	"testing"

	"github.com/deppfellow/hbnb/internal/model"
)

func TestTablesCoverEveryKind(t *testing.T) {
	for _, kind := range model.Kinds {
		tbl, ok := tables[kind]
		if !ok {
			t.Fatalf("no table for %s", kind)
		}
		if tbl.name != kind.Plural() {
			t.Errorf("%s table = %q, want %q", kind, tbl.name, kind.Plural())
		}

		values := rowValues(model.New(kind))
		if len(values) != len(tbl.allColumns()) {
			t.Errorf("%s: %d values for %d columns", kind, len(values), len(tbl.allColumns()))
		}
	}
}

func TestUpsertSQL(t *testing.T) {
	got := tables[model.KindCity].upsertSQL()
	want := "INSERT INTO cities (id, created_at, updated_at, name, state_id) VALUES ($1, $2, $3, $4, $5) " +
		"ON CONFLICT (id) DO UPDATE SET updated_at = EXCLUDED.updated_at, name = EXCLUDED.name, state_id = EXCLUDED.state_id"
	if got != want {
		t.Errorf("upsertSQL =\n%s\nwant\n%s", got, want)
	}
}

func TestSelectSQL(t *testing.T) {
	got := tables[model.KindState].selectSQL("WHERE id = $1")
	if !strings.HasPrefix(got, "SELECT id, created_at, updated_at, name FROM states WHERE id = $1") {
		t.Errorf("selectSQL = %s", got)
	}
	if !strings.HasSuffix(got, "ORDER BY created_at, id") {
		t.Errorf("selectSQL must order by creation: %s", got)
	}
}

func TestRowValuesPlace(t *testing.T) {
	p := model.New(model.KindPlace).(*model.Place)
	p.CityID = "c1"
	p.UserID = "u1"
	p.Name = "Loft"
	p.MaxGuest = 3
	p.Longitude = 2.5

	values := rowValues(p)
	cols := tables[model.KindPlace].allColumns()

	byCol := make(map[string]any, len(cols))
	for i, c := range cols {
		byCol[c] = values[i]
	}
	if byCol["city_id"] != "c1" || byCol["user_id"] != "u1" || byCol["name"] != "Loft" {
		t.Errorf("values = %v", byCol)
	}
	if byCol["max_guest"] != 3 || byCol["longitude"] != 2.5 {
		t.Errorf("numeric values = %v", byCol)
	}
}
