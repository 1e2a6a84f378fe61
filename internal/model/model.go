// Package model defines the domain entities of the HBnB API.
//
// Every entity embeds BaseModel (id + timestamps) and implements Entity,
// which is what the storage engines persist and what the services
// serialize into the API representation (see ToMap).
//
// Relationships:
//   - City belongs to State
//   - Place belongs to City and User, and links to many Amenities
//   - Review belongs to Place and User
package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind names an entity type. The value doubles as the "__class__" field of
// the serialized representation and as the key prefix in the file store.
type Kind string

const (
	KindAmenity Kind = "Amenity"
	KindCity    Kind = "City"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
	KindState   Kind = "State"
	KindUser    Kind = "User"
)

// Kinds lists every entity kind in a stable order.
var Kinds = []Kind{KindAmenity, KindCity, KindPlace, KindReview, KindState, KindUser}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Plural returns the collection name of the kind, e.g. "cities".
// It is used for table names and for the stats endpoint.
func (k Kind) Plural() string {
	switch k {
	case KindAmenity:
		return "amenities"
	case KindCity:
		return "cities"
	case KindPlace:
		return "places"
	case KindReview:
		return "reviews"
	case KindState:
		return "states"
	case KindUser:
		return "users"
	}
	return ""
}

// Ref points at another entity by kind and id (a foreign key).
type Ref struct {
	Kind Kind
	ID   string
}

// Entity is implemented by every domain record.
type Entity interface {
	// Kind returns the entity type.
	Kind() Kind

	// Base exposes the embedded id/timestamp block.
	Base() *BaseModel

	// References lists the entities this one belongs to.
	// Storage engines use it to cascade deletes.
	References() []Ref

	// SetField assigns a single attribute by its serialized name.
	// Unknown names and values of the wrong type are rejected with *FieldError.
	SetField(key string, value any) error
}

// BaseModel holds the attributes shared by every entity.
type BaseModel struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Base returns b itself so embedding types satisfy Entity.
func (b *BaseModel) Base() *BaseModel {
	return b
}

// Touch bumps UpdatedAt to the current time.
func (b *BaseModel) Touch() {
	b.UpdatedAt = now()
}

func newBase() BaseModel {
	t := now()
	return BaseModel{
		ID:        uuid.NewString(),
		CreatedAt: t,
		UpdatedAt: t,
	}
}

// now is UTC with microsecond precision, which is what both the JSON file
// format and PostgreSQL timestamps can hold.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New returns a fresh entity of the given kind with a generated id and
// timestamps set to now. It returns nil for unknown kinds.
func New(kind Kind) Entity {
	e := blank(kind)
	if e == nil {
		return nil
	}
	*e.Base() = newBase()
	return e
}

// blank returns a zero-valued entity of the given kind, used for decoding.
func blank(kind Kind) Entity {
	switch kind {
	case KindAmenity:
		return &Amenity{}
	case KindCity:
		return &City{}
	case KindPlace:
		return &Place{}
	case KindReview:
		return &Review{}
	case KindState:
		return &State{}
	case KindUser:
		return &User{}
	}
	return nil
}

// Clone returns a copy of e that shares no mutable state with it.
// Storage engines hand out clones so callers can't change stored objects
// without going through New + Save.
func Clone(e Entity) Entity {
	switch v := e.(type) {
	case *Amenity:
		c := *v
		return &c
	case *City:
		c := *v
		return &c
	case *Place:
		c := *v
		if v.AmenityIDs != nil {
			c.AmenityIDs = append([]string{}, v.AmenityIDs...)
		}
		return &c
	case *Review:
		c := *v
		return &c
	case *State:
		c := *v
		return &c
	case *User:
		c := *v
		return &c
	}
	return nil
}
