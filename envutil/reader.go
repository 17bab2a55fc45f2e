//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

type readState uint8

const (
	unset readState = iota
	parsed
	failed
)

// Reader is a setting read from one environment variable. It remembers
// whether the variable was set and whether parsing failed, so the caller
// decides between failing, defaulting or ignoring.
type Reader[A any] struct {
	key   string
	state readState
	value A
	err   error
}

func newReader[A any](key string, present bool, err error, value A) Reader[A] {
	switch {
	case err != nil:
		return Reader[A]{key: key, state: failed, err: err}
	case present:
		return Reader[A]{key: key, state: parsed, value: value}
	default:
		return Reader[A]{key: key}
	}
}

func (r Reader[A]) Key() string {
	return r.key
}

// Value returns the parsed setting. A failed parse wraps ErrBadEnvVar; an unset
// variable wraps ErrEnvVarMissing.
func (r Reader[A]) Value() (A, error) {
	switch r.state {
	case failed:
		return r.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	case unset:
		return r.value, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	default:
		return r.value, nil
	}
}

// ValueOrElse returns the parsed setting, or fallback when it is unset or failed.
func (r Reader[A]) ValueOrElse(fallback A) A {
	if r.state == parsed {
		return r.value
	}

	return fallback
}

func (r Reader[A]) HasValue() bool { return r.state == parsed }

func (r Reader[A]) HasError() bool { return r.state == failed }

// Error returns the parse or validation failure, if any.
func (r Reader[A]) Error() error {
	return r.err
}

func (r Reader[A]) String() string {
	switch r.state {
	case parsed:
		return fmt.Sprintf("%s=%v", r.key, r.value)
	case failed:
		return fmt.Sprintf("%s=<error: %v>", r.key, r.err)
	default:
		return r.key + "=<not set>"
	}
}

// WithDefault fills an unset Reader with dfl. A failed Reader keeps its error.
func (r Reader[A]) WithDefault(dfl A) Reader[A] {
	if r.state != unset {
		return r
	}

	return Reader[A]{key: r.key, state: parsed, value: dfl}
}

// WithErrorIfMissing turns an unset Reader into a failed one carrying err.
func (r Reader[A]) WithErrorIfMissing(err error) Reader[A] {
	if r.state != unset {
		return r
	}

	return Reader[A]{key: r.key, state: failed, err: err}
}

// Map parses or converts a set value with f. Unset and failed Readers pass
// through unchanged.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	if r.state != parsed {
		return Reader[B]{key: r.key, state: r.state, err: r.err}
	}

	val, err := f(r.value)

	return newReader(r.key, true, err, val)
}

// Option adjusts a Reader after it has been read. String, Bool, Int and
// SlogLevel apply their options in order.
type Option[T any] func(Reader[T]) Reader[T]

func Default[T any](dfl T) Option[T] {
	return func(r Reader[T]) Reader[T] { return r.WithDefault(dfl) }
}

// IfMissing makes an unset variable an error.
func IfMissing[T any](err error) Option[T] {
	return func(r Reader[T]) Reader[T] { return r.WithErrorIfMissing(err) }
}

// Validate fails the Reader when check rejects its value.
func Validate[T any](check func(T) error) Option[T] {
	return func(r Reader[T]) Reader[T] {
		return Map(r, func(v T) (T, error) { return v, check(v) })
	}
}

func apply[T any](r Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		r = opt(r)
	}

	return r
}
