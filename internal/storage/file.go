package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/rs/zerolog"
)

// FileStorage keeps every object in memory and writes them all to one JSON
// file on Save:
//
//	{
//	  "State.4b45...": {"__class__": "State", "id": "4b45...", "name": "California", ...},
//	  "City.9e1f...":  {"__class__": "City", ...}
//	}
//
// New and Delete take effect in memory immediately; Save makes them durable.
type FileStorage struct {
	path string
	log  *zerolog.Logger

	mu      sync.RWMutex
	objects map[string]*fileRecord
	nextSeq uint64

	// saveMu is held from snapshot to rename so files land in the order
	// their snapshots were taken.
	saveMu sync.Mutex
}

// fileRecord remembers insertion order so All can return creation order
// even for objects created within the same clock tick.
type fileRecord struct {
	seq uint64
	obj model.Entity
}

// NewFileStorage returns an empty engine bound to path. Call Reload to load
// the file's current contents.
func NewFileStorage(path string, log *zerolog.Logger) *FileStorage {
	return &FileStorage{
		path:    path,
		log:     log,
		objects: make(map[string]*fileRecord),
	}
}

func objectKey(kind model.Kind, id string) string {
	return string(kind) + "." + id
}

func (s *FileStorage) All(ctx context.Context, kind model.Kind) ([]model.Entity, error) {
	wanted, err := kinds(kind)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*fileRecord, 0, len(s.objects))
	for _, r := range s.objects {
		for _, k := range wanted {
			if r.obj.Kind() == k {
				records = append(records, r)
				break
			}
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].seq < records[j].seq
	})

	out := make([]model.Entity, len(records))
	for i, r := range records {
		out[i] = model.Clone(r.obj)
	}
	return out, nil
}

func (s *FileStorage) Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.objects[objectKey(kind, id)]
	if !ok {
		return nil, ErrNotFound
	}
	return model.Clone(r.obj), nil
}

func (s *FileStorage) New(ctx context.Context, obj model.Entity) error {
	if obj == nil {
		return errors.New("cannot store a nil object")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := objectKey(obj.Kind(), obj.Base().ID)
	if r, ok := s.objects[key]; ok {
		r.obj = model.Clone(obj)
		return nil
	}

	s.nextSeq++
	s.objects[key] = &fileRecord{seq: s.nextSeq, obj: model.Clone(obj)}
	return nil
}

func (s *FileStorage) Delete(ctx context.Context, obj model.Entity) error {
	if obj == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteLocked(obj.Kind(), obj.Base().ID)
	return nil
}

// deleteLocked removes an object and, recursively, every object that
// references it. Deleting an amenity unlinks it from places instead.
func (s *FileStorage) deleteLocked(kind model.Kind, id string) {
	key := objectKey(kind, id)
	if _, ok := s.objects[key]; !ok {
		return
	}
	delete(s.objects, key)

	target := model.Ref{Kind: kind, ID: id}
	for _, r := range s.objects {
		if kind == model.KindAmenity {
			if place, ok := r.obj.(*model.Place); ok {
				place.RemoveAmenity(id)
			}
			continue
		}
		for _, ref := range r.obj.References() {
			if ref == target {
				s.deleteLocked(r.obj.Kind(), r.obj.Base().ID)
				break
			}
		}
	}
}

// Save writes the whole store to a temporary file and renames it over the
// target so readers never see a half-written file.
func (s *FileStorage) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	payload := make(map[string]map[string]any, len(s.objects))
	for key, r := range s.objects {
		payload[key] = model.ToStorageMap(r.obj)
	}
	s.mu.RUnlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding file storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".hbnb-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.log.Debug().Str("path", s.path).Int("objects", len(payload)).Msg("file storage saved")
	return nil
}

func (s *FileStorage) Count(ctx context.Context, kind model.Kind) (int, error) {
	objs, err := s.All(ctx, kind)
	if err != nil {
		return 0, err
	}
	return len(objs), nil
}

// Reload replaces the in-memory objects with the file's contents.
// A missing file is an empty store.
func (s *FileStorage) Reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		s.objects = make(map[string]*fileRecord)
		s.nextSeq = 0
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding %s: %w", s.path, err)
	}

	loaded := make([]model.Entity, 0, len(raw))
	for key, fields := range raw {
		kind, _, ok := strings.Cut(key, ".")
		if !ok || !model.Kind(kind).Valid() {
			s.log.Warn().Str("key", key).Msg("skipping unknown object in file storage")
			continue
		}
		obj, err := model.FromMap(model.Kind(kind), fields)
		if err != nil {
			return fmt.Errorf("loading %s: %w", key, err)
		}
		loaded = append(loaded, obj)
	}

	// The file has no order of its own; creation time restores it.
	sortByCreation(loaded)

	objects := make(map[string]*fileRecord, len(loaded))
	for i, obj := range loaded {
		objects[objectKey(obj.Kind(), obj.Base().ID)] = &fileRecord{seq: uint64(i + 1), obj: obj}
	}

	s.mu.Lock()
	s.objects = objects
	s.nextSeq = uint64(len(loaded))
	s.mu.Unlock()

	s.log.Info().Str("path", s.path).Int("objects", len(loaded)).Msg("file storage loaded")
	return nil
}

func (s *FileStorage) Ping(ctx context.Context) error {
	return nil
}

func (s *FileStorage) Close() error {
	return nil
}
