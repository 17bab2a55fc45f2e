// Package guard holds presence and emptiness checks. The Ensure functions return a
// try.Try instead of panicking, so the caller branches on the outcome; Must turns
// an outcome back into a value for callers that prefer to panic.
package guard

import (
	"fmt"
	"reflect"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/amp-labs/amp-fp/try"
)

// IsNil reports whether v is a literal nil or a typed nil hiding in an interface
// (a nil pointer, map, slice, channel or func).
func IsNil[T any](v T) bool {
	val := any(v)
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// IsNotNil is the negation of IsNil.
func IsNotNil[T any](v T) bool {
	return !IsNil(v)
}

// IsNonEmpty reports whether xs has at least one element.
func IsNonEmpty[T any](xs []T) bool {
	return len(xs) > 0
}

// EnsureNonEmpty returns xs unchanged when it has at least one element.
func EnsureNonEmpty[T any](xs []T) try.Try[[]T] {
	if !IsNonEmpty(xs) {
		return try.Failure[[]T](fmt.Errorf("%w: EnsureNonEmpty", amperrors.ErrEmptyInput))
	}

	return try.Success(xs)
}

// EnsureNotNil returns v unchanged when it is not nil.
func EnsureNotNil[T any](v T) try.Try[T] {
	if IsNil(v) {
		return try.Failure[T](fmt.Errorf("%w: EnsureNotNil(%T)", amperrors.ErrValueAbsent, v))
	}

	return try.Success(v)
}

// EnsurePresent unwraps an optional value.
func EnsurePresent[T any](v optional.Value[T]) try.Try[T] {
	val, ok := v.Get()
	if !ok {
		return try.Failure[T](fmt.Errorf("%w: EnsurePresent", amperrors.ErrValueAbsent))
	}

	return try.Success(val)
}

// Must returns the value of a successful outcome and panics with the failure otherwise.
func Must[T any](t try.Try[T]) T { //nolint:ireturn
	val, err := t.Get()
	if err != nil {
		panic(err)
	}

	return val
}
