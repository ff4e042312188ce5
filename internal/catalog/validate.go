package catalog

import (
	"fmt"
)

// Validate checks a raw payload against the kind's field definitions and
// returns the validated record.
//
// Rules:
//   - required fields must be present and non-null
//   - values must match the declared type exactly (no coercion; a numeric
//     string is not an integer, a fractional number is not an integer)
//   - integer/number fields must satisfy their inclusive bounds
//   - absent optional fields receive their default, if one is declared
//   - unknown payload fields are silently dropped
//
// The returned record is a new map; the caller's payload is never mutated.
// On failure the error is a *ValidationError listing every violated field,
// and also matches ErrInvalidRecord via errors.Is.
func Validate(kind string, payload map[string]any) (map[string]any, error) {
	k, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	record := make(map[string]any, len(k.Fields))
	verr := &ValidationError{Kind: k.Name}

	for _, f := range k.Fields {
		raw, present := payload[f.Name]
		if !present || raw == nil {
			if f.Required {
				verr.add(f.Name, "required", fmt.Sprintf("%s is required", f.Name))
				continue
			}
			if f.Default != nil {
				record[f.Name] = copyDefault(f.Default)
			}
			continue
		}

		value, fieldErr := checkValue(f, raw)
		if fieldErr != nil {
			verr.Fields = append(verr.Fields, *fieldErr)
			continue
		}
		record[f.Name] = value
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return record, nil
}

// checkValue validates a single present value against its field definition,
// returning the normalised value (integers as int64, text lists as []string).
func checkValue(f Field, raw any) (any, *FieldError) {
	switch f.Type {
	case TypeText:
		s, ok := raw.(string)
		if !ok {
			return nil, typeError(f, "text")
		}
		return s, nil

	case TypeInteger:
		n, ok := asInteger(raw)
		if !ok {
			return nil, typeError(f, "integer")
		}
		if fe := checkBounds(f, float64(n)); fe != nil {
			return nil, fe
		}
		return n, nil

	case TypeNumber:
		n, ok := asNumber(raw)
		if !ok {
			return nil, typeError(f, "number")
		}
		if fe := checkBounds(f, n); fe != nil {
			return nil, fe
		}
		return n, nil

	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, typeError(f, "bool")
		}
		return b, nil

	case TypeTextList:
		list, ok := asTextList(raw)
		if !ok {
			return nil, typeError(f, "list of text")
		}
		return list, nil
	}

	// Unreachable with a well-formed catalog.
	return nil, &FieldError{Field: f.Name, Constraint: "type", Message: "unsupported field type"}
}

// checkBounds enforces inclusive Min/Max on a numeric value.
func checkBounds(f Field, v float64) *FieldError {
	if f.Min != nil && v < *f.Min {
		return &FieldError{
			Field:      f.Name,
			Constraint: "min",
			Message:    fmt.Sprintf("%s must be >= %v", f.Name, *f.Min),
		}
	}
	if f.Max != nil && v > *f.Max {
		return &FieldError{
			Field:      f.Name,
			Constraint: "max",
			Message:    fmt.Sprintf("%s must be <= %v", f.Name, *f.Max),
		}
	}
	return nil
}

// asInteger accepts JSON numbers that are whole, plus native Go integers.
// Strings are never accepted.
func asInteger(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// asNumber accepts any JSON number plus native Go numerics.
func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// asTextList accepts a JSON array whose elements are all strings.
func asTextList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// copyDefault returns the default value, copying slices so validated
// records never share backing storage with the catalog.
func copyDefault(def any) any {
	if list, ok := def.([]string); ok {
		return append([]string(nil), list...)
	}
	return def
}

// typeError builds the FieldError for a type mismatch.
func typeError(f Field, want string) *FieldError {
	return &FieldError{
		Field:      f.Name,
		Constraint: "type",
		Message:    fmt.Sprintf("%s must be %s", f.Name, want),
	}
}
