package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/hbnb/internal/database"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// table describes how one kind maps onto its relational table.
// columns excludes the BaseModel columns, which every table has.
type table struct {
	name    string
	columns []string
}

var baseColumns = []string{"id", "created_at", "updated_at"}

var tables = map[model.Kind]table{
	model.KindState:   {name: "states", columns: []string{"name"}},
	model.KindCity:    {name: "cities", columns: []string{"name", "state_id"}},
	model.KindAmenity: {name: "amenities", columns: []string{"name"}},
	model.KindUser:    {name: "users", columns: []string{"email", "password", "first_name", "last_name"}},
	model.KindReview:  {name: "reviews", columns: []string{"place_id", "user_id", "text"}},
	model.KindPlace: {name: "places", columns: []string{
		"city_id", "user_id", "name", "description",
		"number_rooms", "number_bathrooms", "max_guest", "price_by_night",
		"latitude", "longitude",
	}},
}

func (t table) allColumns() []string {
	return append(append([]string{}, baseColumns...), t.columns...)
}

func (t table) selectSQL(where string) string {
	return fmt.Sprintf("SELECT %s FROM %s %s ORDER BY created_at, id",
		strings.Join(t.allColumns(), ", "), t.name, where)
}

func (t table) upsertSQL() string {
	cols := t.allColumns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	updates := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		if c == "created_at" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), strings.Join(updates, ", "))
}

// rowValues returns the values of e in allColumns order.
func rowValues(e model.Entity) []any {
	b := e.Base()
	values := []any{b.ID, b.CreatedAt, b.UpdatedAt}

	switch v := e.(type) {
	case *model.State:
		values = append(values, v.Name)
	case *model.City:
		values = append(values, v.Name, v.StateID)
	case *model.Amenity:
		values = append(values, v.Name)
	case *model.User:
		values = append(values, v.Email, v.Password, v.FirstName, v.LastName)
	case *model.Review:
		values = append(values, v.PlaceID, v.UserID, v.Text)
	case *model.Place:
		values = append(values, v.CityID, v.UserID, v.Name, v.Description,
			v.NumberRooms, v.NumberBathroom, v.MaxGuest, v.PriceByNight,
			v.Latitude, v.Longitude)
	}
	return values
}

type opKind int

const (
	opUpsert opKind = iota
	opDelete
)

type pendingOp struct {
	kind opKind
	obj  model.Entity
}

// DBStorage is the PostgreSQL engine. Reads go straight to the pool.
//
// New and Delete called with a context from WithUnitOfWork stage the change
// in that unit; Save with the same context applies the unit in a single
// transaction. Without a unit of work each change is applied on its own
// right away and Save has nothing left to do.
type DBStorage struct {
	db        *database.Database
	log       *zerolog.Logger
	slowQuery time.Duration
}

func NewDBStorage(db *database.Database, log *zerolog.Logger, slowQuery time.Duration) *DBStorage {
	return &DBStorage{
		db:        db,
		log:       log,
		slowQuery: slowQuery,
	}
}

func (s *DBStorage) All(ctx context.Context, kind model.Kind) ([]model.Entity, error) {
	wanted, err := kinds(kind)
	if err != nil {
		return nil, err
	}

	var out []model.Entity
	for _, k := range wanted {
		objs, err := s.query(ctx, k, "")
		if err != nil {
			return nil, err
		}
		out = append(out, objs...)
	}

	// Rows of one kind come back in creation order; merge kinds the same way.
	if len(wanted) > 1 {
		sortByCreation(out)
	}
	return out, nil
}

func (s *DBStorage) Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	objs, err := s.query(ctx, kind, "WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, ErrNotFound
	}
	return objs[0], nil
}

func (s *DBStorage) query(ctx context.Context, kind model.Kind, where string, args ...any) ([]model.Entity, error) {
	t := tables[kind]

	rows, err := s.db.Pool.Query(ctx, t.selectSQL(where), args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", t.name, err)
	}

	var objs []model.Entity
	switch kind {
	case model.KindState:
		objs, err = collect[model.State](rows)
	case model.KindCity:
		objs, err = collect[model.City](rows)
	case model.KindAmenity:
		objs, err = collect[model.Amenity](rows)
	case model.KindUser:
		objs, err = collect[model.User](rows)
	case model.KindReview:
		objs, err = collect[model.Review](rows)
	case model.KindPlace:
		objs, err = collect[model.Place](rows)
		if err == nil {
			err = s.loadAmenities(ctx, objs)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", t.name, err)
	}
	return objs, nil
}

// collect scans rows into entities by column name.
func collect[T any, PT interface {
	*T
	model.Entity
}](rows pgx.Rows) ([]model.Entity, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, err
	}
	out := make([]model.Entity, len(items))
	for i, item := range items {
		out[i] = PT(item)
	}
	return out, nil
}

// loadAmenities fills AmenityIDs of the given places from place_amenity.
func (s *DBStorage) loadAmenities(ctx context.Context, places []model.Entity) error {
	if len(places) == 0 {
		return nil
	}

	byID := make(map[string]*model.Place, len(places))
	ids := make([]string, 0, len(places))
	for _, e := range places {
		p := e.(*model.Place)
		p.AmenityIDs = []string{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	rows, err := s.db.Pool.Query(ctx,
		"SELECT place_id, amenity_id FROM place_amenity WHERE place_id = ANY($1) ORDER BY position",
		ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var placeID, amenityID string
		if err := rows.Scan(&placeID, &amenityID); err != nil {
			return err
		}
		if p, ok := byID[placeID]; ok {
			p.AmenityIDs = append(p.AmenityIDs, amenityID)
		}
	}
	return rows.Err()
}

func (s *DBStorage) New(ctx context.Context, obj model.Entity) error {
	if obj == nil {
		return errors.New("cannot store a nil object")
	}
	return s.stage(ctx, pendingOp{kind: opUpsert, obj: model.Clone(obj)})
}

// Delete stages obj for removal. Dependent rows go with it through the
// ON DELETE CASCADE foreign keys.
func (s *DBStorage) Delete(ctx context.Context, obj model.Entity) error {
	if obj == nil {
		return nil
	}
	return s.stage(ctx, pendingOp{kind: opDelete, obj: model.Clone(obj)})
}

func (s *DBStorage) stage(ctx context.Context, op pendingOp) error {
	if u := unitFrom(ctx); u != nil {
		u.add(op)
		return nil
	}
	return s.apply(ctx, []pendingOp{op})
}

// Save applies the changes staged in ctx's unit of work, in order, inside
// one transaction. The unit is emptied whether or not the transaction
// commits.
func (s *DBStorage) Save(ctx context.Context) error {
	u := unitFrom(ctx)
	if u == nil {
		return nil
	}
	return s.apply(ctx, u.take())
}

func (s *DBStorage) apply(ctx context.Context, ops []pendingOp) error {
	if len(ops) == 0 {
		return nil
	}

	start := time.Now()
	err := pgx.BeginFunc(ctx, s.db.Pool, func(tx pgx.Tx) error {
		for _, op := range ops {
			if err := applyOp(ctx, tx, op); err != nil {
				return err
			}
		}
		return nil
	})

	if elapsed := time.Since(start); s.slowQuery > 0 && elapsed > s.slowQuery {
		s.log.Warn().
			Dur("duration", elapsed).
			Int("operations", len(ops)).
			Msg("slow storage save")
	}

	return err
}

func applyOp(ctx context.Context, tx pgx.Tx, op pendingOp) error {
	t := tables[op.obj.Kind()]
	id := op.obj.Base().ID

	if op.kind == opDelete {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), id); err != nil {
			return fmt.Errorf("deleting %s %s: %w", op.obj.Kind(), id, err)
		}
		return nil
	}

	if _, err := tx.Exec(ctx, t.upsertSQL(), rowValues(op.obj)...); err != nil {
		return fmt.Errorf("saving %s %s: %w", op.obj.Kind(), id, err)
	}

	place, ok := op.obj.(*model.Place)
	if !ok {
		return nil
	}

	if _, err := tx.Exec(ctx, "DELETE FROM place_amenity WHERE place_id = $1", id); err != nil {
		return fmt.Errorf("unlinking amenities of place %s: %w", id, err)
	}
	for i, amenityID := range place.AmenityIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO place_amenity (place_id, amenity_id, position) VALUES ($1, $2, $3)",
			id, amenityID, i)
		if err != nil {
			return fmt.Errorf("linking amenity %s to place %s: %w", amenityID, id, err)
		}
	}
	return nil
}

func (s *DBStorage) Count(ctx context.Context, kind model.Kind) (int, error) {
	wanted, err := kinds(kind)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, k := range wanted {
		var n int
		if err := s.db.Pool.QueryRow(ctx, "SELECT count(*) FROM "+tables[k].name).Scan(&n); err != nil {
			return 0, fmt.Errorf("counting %s: %w", tables[k].name, err)
		}
		total += n
	}
	return total, nil
}

// Reload drops the changes staged in ctx's unit of work. Reads always hit
// the database, so there is nothing else to refresh.
func (s *DBStorage) Reload(ctx context.Context) error {
	if u := unitFrom(ctx); u != nil {
		u.take()
	}
	return nil
}

func (s *DBStorage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *DBStorage) Close() error {
	return s.db.Close()
}
