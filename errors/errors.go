// Package errors holds the sentinel errors shared by every package in this module,
// plus a small accumulator for reporting several failures at once.
//
// Callers should match on the sentinels with the standard library's errors.Is.
// The sort-specification errors all wrap ErrInvalidSortSpec, so a caller that only
// cares whether a sort key vector was malformed can check for that one value.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by operations that have no defined result on an empty sequence.
	ErrEmptyInput = errors.New("empty input")

	// ErrValueAbsent is returned when a value is required but nil (or None).
	ErrValueAbsent = errors.New("value absent")

	// ErrInvalidInteger is returned by integer-only numeric operations given a
	// negative or non-integral input.
	ErrInvalidInteger = errors.New("invalid integer")

	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRange is returned when a lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidSortSpec is the parent of every sort key vector inconsistency.
	ErrInvalidSortSpec = errors.New("inconsistent sort specification")

	ErrInvalidDirection  = fmt.Errorf("%w: invalid direction", ErrInvalidSortSpec)
	ErrDirectionMismatch = fmt.Errorf("%w: direction mismatch", ErrInvalidSortSpec)
	ErrTypeMismatch      = fmt.Errorf("%w: type mismatch", ErrInvalidSortSpec)

	// ErrUnsupportedValue is returned when a partial match constraint is not a scalar.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrPanicRecovered wraps panics raised inside asynchronous tasks.
	ErrPanicRecovered = errors.New("panic recovered")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf appends a formatted error to the collection. Use %w to wrap a sentinel.
func (c *Collection) Addf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Errorf(format, args...)) //nolint:err113
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
