package service

import (
	"context"
	"errors"

	"github.com/deppfellow/hbnb/internal/errs"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/storage"
)

// SearchFilter is the body of POST /places_search. Every list is optional.
type SearchFilter struct {
	States    []string
	Cities    []string
	Amenities []string
}

// IsEmpty reports whether no criterion was given.
func (f SearchFilter) IsEmpty() bool {
	return len(f.States) == 0 && len(f.Cities) == 0 && len(f.Amenities) == 0
}

// ParseSearchFilter reads the filter out of a decoded JSON object. A nil
// body (absent or not an object) is rejected; an empty object is the empty
// filter. Keys other than the three lists are ignored.
func ParseSearchFilter(body map[string]any) (SearchFilter, error) {
	if body == nil {
		return SearchFilter{}, errs.NotJSON()
	}

	var f SearchFilter
	var err error
	if f.States, err = idList(body, "states"); err != nil {
		return SearchFilter{}, err
	}
	if f.Cities, err = idList(body, "cities"); err != nil {
		return SearchFilter{}, err
	}
	if f.Amenities, err = idList(body, "amenities"); err != nil {
		return SearchFilter{}, err
	}
	return f, nil
}

func idList(body map[string]any, key string) ([]string, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fieldError(&model.FieldError{Field: key, Err: model.ErrInvalidValue})
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, ok := item.(string)
		if !ok {
			return nil, fieldError(&model.FieldError{Field: key, Err: model.ErrInvalidValue})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Search returns the places matching the filter, serialized without their
// "amenities" key.
//
// Candidates are gathered in discovery order:
//  1. every place of every city of each listed state (duplicates kept)
//  2. every place of each listed city not already gathered
//  3. with amenities listed, the candidates (all places if none were
//     gathered) that have every listed amenity
//
// Ids that don't resolve are skipped; an unknown amenity matches no place.
func (s *PlaceService) Search(ctx context.Context, filter SearchFilter) ([]map[string]any, error) {
	if filter.IsEmpty() {
		places, err := s.repos.Places.All(ctx)
		if err != nil {
			return nil, err
		}
		return serializeSearchResults(places), nil
	}

	var candidates []*model.Place
	seen := make(map[string]bool)

	for _, stateID := range filter.States {
		if _, err := s.repos.States.Get(ctx, stateID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}

		cities, err := s.repos.States.Cities(ctx, stateID)
		if err != nil {
			return nil, err
		}
		for _, city := range cities {
			places, err := s.repos.Cities.Places(ctx, city.ID)
			if err != nil {
				return nil, err
			}
			for _, p := range places {
				candidates = append(candidates, p)
				seen[p.ID] = true
			}
		}
	}

	for _, cityID := range filter.Cities {
		if _, err := s.repos.Cities.Get(ctx, cityID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}

		places, err := s.repos.Cities.Places(ctx, cityID)
		if err != nil {
			return nil, err
		}
		for _, p := range places {
			if !seen[p.ID] {
				candidates = append(candidates, p)
				seen[p.ID] = true
			}
		}
	}

	if len(filter.Amenities) > 0 {
		if len(candidates) == 0 {
			all, err := s.repos.Places.All(ctx)
			if err != nil {
				return nil, err
			}
			candidates = all
		}

		required, err := s.resolveAmenities(ctx, filter.Amenities)
		if err != nil {
			return nil, err
		}

		var kept []*model.Place
		for _, p := range candidates {
			if required != nil && hasAll(p, required) {
				kept = append(kept, p)
			}
		}
		candidates = kept
	}

	return serializeSearchResults(candidates), nil
}

// resolveAmenities returns the ids as given, or nil if any of them is unknown.
func (s *PlaceService) resolveAmenities(ctx context.Context, ids []string) ([]string, error) {
	for _, id := range ids {
		if _, err := s.repos.Amenities.Get(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
	}
	return ids, nil
}

func hasAll(p *model.Place, amenityIDs []string) bool {
	for _, id := range amenityIDs {
		if !p.HasAmenity(id) {
			return false
		}
	}
	return true
}

func serializeSearchResults(places []*model.Place) []map[string]any {
	out := make([]map[string]any, 0, len(places))
	for _, p := range places {
		m := model.ToMap(p)
		delete(m, "amenities")
		out = append(out, m)
	}
	return out
}
