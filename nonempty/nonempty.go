// Package nonempty provides a sequence type that always holds at least one
// element. Functions that have no defined result on empty input (the head of a
// group, the maximum of a set of numbers) can accept or return a Slice and skip
// the emptiness check entirely.
package nonempty

import (
	"fmt"
	"iter"
	"slices"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/try"
)

// Slice is an immutable sequence of one or more elements. The zero value is not
// valid; build one with Of or From.
type Slice[T any] struct {
	items []T
}

// Of builds a Slice from a head element and an optional tail.
func Of[T any](head T, tail ...T) Slice[T] {
	items := make([]T, 0, len(tail)+1)
	items = append(items, head)
	items = append(items, tail...)

	return Slice[T]{items: items}
}

// From checks that xs is non-empty and copies it into a Slice.
func From[T any](xs []T) try.Try[Slice[T]] {
	if len(xs) == 0 {
		return try.Failure[Slice[T]](fmt.Errorf("%w: nonempty.From", amperrors.ErrEmptyInput))
	}

	return try.Success(Slice[T]{items: slices.Clone(xs)})
}

// Head returns the first element.
func (s Slice[T]) Head() T { //nolint:ireturn
	return s.items[0]
}

// Last returns the final element.
func (s Slice[T]) Last() T { //nolint:ireturn
	return s.items[len(s.items)-1]
}

// Tail returns a copy of every element after the head. It may be empty.
func (s Slice[T]) Tail() []T {
	return slices.Clone(s.items[1:])
}

// Len returns the number of elements; it is always at least 1.
func (s Slice[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements as a plain slice.
func (s Slice[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over the elements in order.
func (s Slice[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Append returns a new Slice with v added at the end.
func (s Slice[T]) Append(v ...T) Slice[T] {
	items := make([]T, 0, len(s.items)+len(v))
	items = append(items, s.items...)
	items = append(items, v...)

	return Slice[T]{items: items}
}

func (s Slice[T]) String() string {
	return fmt.Sprint(s.items)
}

// grow appends in place. Used while building groups, before the Slice escapes.
func (s *Slice[T]) grow(v T) {
	s.items = append(s.items, v)
}

// Builder accumulates elements into a Slice without copying on every append.
type Builder[T any] struct {
	slice Slice[T]
}

// NewBuilder starts a builder from its first element.
func NewBuilder[T any](head T) *Builder[T] {
	return &Builder[T]{slice: Slice[T]{items: []T{head}}}
}

// Add appends v to the builder.
func (b *Builder[T]) Add(v T) {
	b.slice.grow(v)
}

// Build returns the accumulated Slice. The builder must not be used afterwards.
func (b *Builder[T]) Build() Slice[T] {
	return b.slice
}
