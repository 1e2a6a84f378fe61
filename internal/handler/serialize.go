package handler

import "github.com/deppfellow/hbnb/internal/model"

// serializeAll maps entities to their API representation. The result is
// never nil, so empty collections render as [].
func serializeAll[T model.Entity](objs []T) []map[string]any {
	out := make([]map[string]any, 0, len(objs))
	for _, obj := range objs {
		out = append(out, model.ToMap(obj))
	}
	return out
}

// deleted is the body of a successful DELETE.
func deleted() map[string]any {
	return map[string]any{}
}
