package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownField is returned by SetField for names outside the entity's allow-list.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned by SetField when the value has the wrong type.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError describes a rejected attribute assignment.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrUnknownField) {
		return "Unknown field: " + e.Field
	}
	return fmt.Sprintf("Invalid value for %s", e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func unknownField(key string) error {
	return &FieldError{Field: key, Err: ErrUnknownField}
}

func invalidValue(key string) error {
	return &FieldError{Field: key, Err: ErrInvalidValue}
}

func stringValue(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalidValue(key)
	}
	return s, nil
}

// intValue accepts the number shapes encoding/json produces (float64 or
// json.Number) as long as they hold a whole number.
func intValue(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return wholeNumber(key, v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), nil
		}
		// "2.0" and "1e2" are whole numbers too.
		f, err := v.Float64()
		if err != nil {
			return 0, invalidValue(key)
		}
		return wholeNumber(key, f)
	}
	return 0, invalidValue(key)
}

func wholeNumber(key string, v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, invalidValue(key)
	}
	return int(v), nil
}

func floatValue(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, invalidValue(key)
		}
		return f, nil
	}
	return 0, invalidValue(key)
}
