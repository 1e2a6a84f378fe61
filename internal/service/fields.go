package service

import (
	"errors"
	"sort"

	"github.com/deppfellow/hbnb/internal/errs"
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/storage"
)

// baseKeys are never assigned from a request body: the engine owns identity
// and timestamps, and __class__ is output-only.
var baseKeys = []string{"id", "created_at", "updated_at", model.ClassKey}

// requireObject rejects an absent, unparseable or empty body.
func requireObject(body map[string]any) error {
	if len(body) == 0 {
		return errs.NotJSON()
	}
	return nil
}

// requireKeys returns "Missing <key>" for the first absent key.
func requireKeys(body map[string]any, keys ...string) error {
	for _, key := range keys {
		if _, ok := body[key]; !ok {
			return errs.Missing(key)
		}
	}
	return nil
}

// requireString is requireKeys for a single key whose value must be a string.
func requireString(body map[string]any, key string) (string, error) {
	if err := requireKeys(body, key); err != nil {
		return "", err
	}
	s, ok := body[key].(string)
	if !ok {
		return "", fieldError(&model.FieldError{Field: key, Err: model.ErrInvalidValue})
	}
	return s, nil
}

// applyFields assigns every body key to e except the base keys and skip.
// Keys are applied in sorted order so the reported error is deterministic.
func applyFields(e model.Entity, body map[string]any, skip ...string) error {
	ignored := make(map[string]bool, len(baseKeys)+len(skip))
	for _, k := range baseKeys {
		ignored[k] = true
	}
	for _, k := range skip {
		ignored[k] = true
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		if !ignored[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := e.SetField(k, body[k]); err != nil {
			return fieldError(err)
		}
	}
	return nil
}

// update applies body to an existing entity and bumps updated_at.
func update(e model.Entity, body map[string]any, immutable ...string) error {
	if err := requireObject(body); err != nil {
		return err
	}
	if err := applyFields(e, body, immutable...); err != nil {
		return err
	}
	e.Base().Touch()
	return nil
}

func fieldError(err error) error {
	var fe *model.FieldError
	if !errors.As(err, &fe) {
		return err
	}

	code := "INVALID_FIELD"
	if errors.Is(fe, model.ErrUnknownField) {
		code = "UNKNOWN_FIELD"
	}
	return errs.NewBadRequestError(fe.Error(), &code, []errs.FieldError{
		{Field: fe.Field, Error: fe.Error()},
	})
}

// notFound turns storage.ErrNotFound into the 404 the API returns.
func notFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound()
	}
	return err
}
