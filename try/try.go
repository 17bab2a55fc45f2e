// Package try models the outcome of a check that can fail: either a value or the
// reason it could not be produced. Guards return a Try instead of panicking so the
// caller can branch on the outcome.
package try

type Try[A any] struct {
	Value A
	Error error
}

// Success wraps a value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps the reason a value is missing.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

// Of builds a Try from a standard (value, error) pair.
func Of[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	}

	return defaultValue
}

// Map transforms a successful value with a function that may itself fail.
func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsFailure() {
		return Try[B]{Error: t.Error}
	}

	val, err := f(t.Value)

	return Of(val, err)
}
