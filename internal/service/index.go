package service

import (
	"context"

	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/storage"
)

type IndexService struct {
	engine storage.Engine
}

func NewIndexService(engine storage.Engine) *IndexService {
	return &IndexService{engine: engine}
}

// Stats counts the stored objects of each kind, keyed by collection name:
//
//	{"amenities": 2, "cities": 5, "places": 3, "reviews": 0, "states": 2, "users": 1}
func (s *IndexService) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, len(model.Kinds))
	for _, kind := range model.Kinds {
		n, err := s.engine.Count(ctx, kind)
		if err != nil {
			return nil, err
		}
		stats[kind.Plural()] = n
	}
	return stats, nil
}
