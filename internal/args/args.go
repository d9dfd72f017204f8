// Package args binds loosely typed argument records to per-kind field
// schemas, applying defaults and rules before a factory sees them.
package args

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

// Record is the raw argument mapping supplied by a caller.
type Record map[string]any

// FieldType enumerates the value types a field accepts.
type FieldType int

const (
	TypeString FieldType = iota
	TypeBool
	TypeNumber
	TypeInt
	TypeVariant
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeInt:
		return "int"
	case TypeVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Field declares one argument of a component kind.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  any
	// Rules are validator tags checked against the bound value.
	Rules string
	// Of names the resolution table consulted by variant fields.
	Of variant.Kind
}

// Schema is the ordered field list of a component kind.
type Schema struct {
	Kind   variant.Kind
	Fields []Field
}

// Field returns the declaration named name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Bind checks r against the schema and returns the bound values. r is left
// untouched.
func (s Schema) Bind(r Record) (Values, error) {
	out := Values{
		kind:    s.Kind,
		values:  make(map[string]any, len(s.Fields)),
		bundles: make(map[string]variant.Bundle),
	}

	for _, key := range slices.Sorted(maps.Keys(r)) {
		if _, ok := s.Field(key); !ok {
			return Values{}, positivuserrors.NewValidationError(key, fmt.Sprintf("%s does not accept field %q", s.Kind, key), nil)
		}
	}

	for _, f := range s.Fields {
		raw, present := r[f.Name]
		if !present || raw == nil {
			if f.Required {
				return Values{}, positivuserrors.NewMissingFieldError(string(s.Kind), f.Name)
			}
			raw = f.Default
		}

		value, err := coerce(f, raw)
		if err != nil {
			return Values{}, positivuserrors.NewValidationError(f.Name, err.Error(), err)
		}

		if f.Rules != "" {
			if err := validatorInstance().Var(value, f.Rules); err != nil {
				return Values{}, convertValidationError(f.Name, err)
			}
		}

		if f.Type == TypeVariant {
			v := value.(variant.Variant)
			bundle, err := variant.Resolve(f.Of, v)
			if err != nil {
				return Values{}, err
			}
			out.bundles[f.Name] = bundle
		}

		out.values[f.Name] = value
	}

	return out, nil
}

func coerce(f Field, raw any) (any, error) {
	switch f.Type {
	case TypeString:
		switch v := raw.(type) {
		case string:
			return v, nil
		case nil:
			return "", nil
		}
	case TypeBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case nil:
			return false, nil
		}
	case TypeNumber:
		if n, ok := toFloat(raw); ok {
			return n, nil
		}
		if raw == nil {
			return float64(0), nil
		}
	case TypeInt:
		if n, ok := toFloat(raw); ok {
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("expected a whole number, got %v", n)
			}
			return int(n), nil
		}
		if raw == nil {
			return 0, nil
		}
	case TypeVariant:
		switch v := raw.(type) {
		case variant.Variant:
			return v, nil
		case string:
			return variant.Variant(v), nil
		}
	}
	return nil, fmt.Errorf("expected %s, got %T", f.Type, raw)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// Values holds the bound arguments of one build call.
type Values struct {
	kind    variant.Kind
	values  map[string]any
	bundles map[string]variant.Bundle
}

// Kind returns the kind the values were bound for.
func (v Values) Kind() variant.Kind {
	return v.kind
}

// String returns a string field.
func (v Values) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

// Bool returns a boolean field.
func (v Values) Bool(name string) bool {
	b, _ := v.values[name].(bool)
	return b
}

// Number returns a numeric field.
func (v Values) Number(name string) float64 {
	n, _ := v.values[name].(float64)
	return n
}

// Int returns an int field. Number fields are truncated.
func (v Values) Int(name string) int {
	if n, ok := v.values[name].(int); ok {
		return n
	}
	return int(v.Number(name))
}

// Variant returns a variant field.
func (v Values) Variant(name string) variant.Variant {
	tag, _ := v.values[name].(variant.Variant)
	return tag
}

// Bundle returns the resolved bundle of a variant field. The copy is the
// caller's to keep.
func (v Values) Bundle(name string) variant.Bundle {
	return v.bundles[name].Clone()
}
