// Package match implements partial matching: a Pattern is a set of field-to-value
// equality constraints, and a value matches when every constrained field exists
// on it and holds exactly the constrained value.
//
//	active, err := match.Compile(map[string]any{"Status": "active", "Region": "eu"})
//	if err != nil {
//		return err
//	}
//
//	live := match.FilterMatch(accounts, active)
//
// Constraint values must be scalars (strings, booleans, integers or floats).
// Equality is strict: the dynamic types must be identical, so int(1) does not
// match int64(1) or float64(1).
package match

import (
	"fmt"
	"reflect"
	"strings"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/amp-labs/amp-fp/record"
)

// Lookup is implemented by types that can report a named field directly.
// record.Record implements it.
type Lookup interface {
	Lookup(key string) (any, bool)
}

// Pattern is a compiled set of constraints. The zero value matches everything.
type Pattern struct {
	fields *record.Record[any]
}

// Compile validates constraints and builds a Pattern. Every non-scalar
// constraint is reported, not just the first.
func Compile(constraints map[string]any) (Pattern, error) {
	fields := record.FromMap(constraints)

	var errs amperrors.Collection

	for key, value := range fields.All() {
		if !isScalar(value) {
			errs.Addf("%w: field %q has non-scalar value of type %T", amperrors.ErrUnsupportedValue, key, value)
		}
	}

	if errs.HasError() {
		return Pattern{}, errs.GetError()
	}

	return Pattern{fields: fields}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(constraints map[string]any) Pattern {
	p, err := Compile(constraints)
	if err != nil {
		panic(err)
	}

	return p
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() { //nolint:exhaustive
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Len returns the number of constraints.
func (p Pattern) Len() int {
	return p.fields.Len()
}

// Fields returns the constrained field names in sorted order.
func (p Pattern) Fields() []string {
	return p.fields.Keys()
}

func (p Pattern) String() string {
	parts := make([]string, 0, p.Len())
	for k, v := range p.fields.All() {
		parts = append(parts, fmt.Sprintf("%s=%#v", k, v))
	}

	return "match(" + strings.Join(parts, ", ") + ")"
}

// IsMatch reports whether data satisfies every constraint of p.
//
// data may be a struct (fields are found by exported name, then by json tag), a
// pointer to one, a map with string keys, or anything implementing Lookup.
// Values of any other shape only match the empty pattern.
func IsMatch[T any](data T, p Pattern) bool {
	if p.Len() == 0 {
		return true
	}

	get := accessor(data)

	for key, want := range p.fields.All() {
		got, ok := get(key)
		if !ok || got != want {
			return false
		}
	}

	return true
}

// FindMatch returns the first element of xs that matches p.
func FindMatch[T any](xs []T, p Pattern) optional.Value[T] {
	for _, x := range xs {
		if IsMatch(x, p) {
			return optional.Some(x)
		}
	}

	return optional.None[T]()
}

// FilterMatch returns the elements of xs that match p, in order.
func FilterMatch[T any](xs []T, p Pattern) []T {
	out := make([]T, 0, len(xs))

	for _, x := range xs {
		if IsMatch(x, p) {
			out = append(out, x)
		}
	}

	return out
}

type getter func(key string) (any, bool)

func missing(string) (any, bool) {
	return nil, false
}

func accessor(data any) getter {
	if l, ok := data.(Lookup); ok {
		return l.Lookup
	}

	val := reflect.ValueOf(data)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return missing
		}

		val = val.Elem()
	}

	switch val.Kind() { //nolint:exhaustive
	case reflect.Struct:
		return structGetter(val)
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return missing
		}

		return mapGetter(val)
	default:
		return missing
	}
}

func structGetter(val reflect.Value) getter {
	typ := val.Type()

	return func(key string) (any, bool) {
		if field, ok := typ.FieldByName(key); ok && field.IsExported() {
			// A field promoted through a nil embedded pointer is absent.
			v, err := val.FieldByIndexErr(field.Index)
			if err != nil {
				return nil, false
			}

			return v.Interface(), true
		}

		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}

			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == key {
				return val.Field(i).Interface(), true
			}
		}

		return nil, false
	}
}

func mapGetter(val reflect.Value) getter {
	keyType := val.Type().Key()

	return func(key string) (any, bool) {
		v := val.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true
	}
}
