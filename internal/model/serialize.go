package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the layout of created_at/updated_at in every serialized form.
const TimeFormat = "2006-01-02T15:04:05.000000"

// ClassKey is the field naming the entity kind in a serialized object.
const ClassKey = "__class__"

// ToMap returns the API representation of e: its JSON fields plus
// "__class__", with timestamps in TimeFormat. Secrets are left out.
func ToMap(e Entity) map[string]any {
	m := toMap(e)
	if e.Kind() == KindUser {
		delete(m, "password")
	}
	return m
}

// ToStorageMap is ToMap including secrets. It is what the file backend writes.
func ToStorageMap(e Entity) map[string]any {
	return toMap(e)
}

func toMap(e Entity) map[string]any {
	m := map[string]any{}

	// Entities only hold strings, numbers and string slices, which always marshal.
	raw, _ := json.Marshal(e)
	_ = json.Unmarshal(raw, &m)

	base := e.Base()
	m[ClassKey] = string(e.Kind())
	m["created_at"] = base.CreatedAt.UTC().Format(TimeFormat)
	m["updated_at"] = base.UpdatedAt.UTC().Format(TimeFormat)

	if p, ok := e.(*Place); ok && p.AmenityIDs == nil {
		m["amenities"] = []any{}
	}

	return m
}

// FromMap decodes a serialized object (as produced by ToStorageMap) back into
// an entity of the given kind.
func FromMap(kind Kind, m map[string]any) (Entity, error) {
	e := blank(kind)
	if e == nil {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	fields := make(map[string]any, len(m))
	for k, v := range m {
		switch k {
		case ClassKey, "created_at", "updated_at":
			continue
		}
		fields[k] = v
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s fields: %w", kind, err)
	}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}

	base := e.Base()
	if base.CreatedAt, err = parseTimeField(m, "created_at"); err != nil {
		return nil, err
	}
	if base.UpdatedAt, err = parseTimeField(m, "updated_at"); err != nil {
		return nil, err
	}

	return e, nil
}

func parseTimeField(m map[string]any, key string) (time.Time, error) {
	raw, ok := m[key].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%s is missing or not a string", key)
	}
	return ParseTime(raw)
}

// ParseTime parses a timestamp in TimeFormat, falling back to RFC 3339.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
