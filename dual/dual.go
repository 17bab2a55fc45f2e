// Package dual lets one implementation be called two ways: directly, with the
// subject first and every parameter supplied, or curried, with only the trailing
// parameters supplied up front and the subject supplied last.
//
// The curried (data-last) form is what makes an operation usable as a pipeline
// stage:
//
//	sumBy := dual.Of2(arr.SumBy[Order, float64])
//
//	total := sumBy.Call(orders, Order.Total)           // direct form
//	total  = sumBy.Curry(Order.Total)(orders)          // curried form
//	total  = fn.Pipe2(orders, pipe.Filter(isPaid), sumBy.Curry(Order.Total))
//
// There is no runtime arity sniffing. The caller picks the form explicitly, and
// the compiler checks both. For every wrapped f of arity N the two forms agree:
//
//	f.Call(a1, a2, ..., aN) == f.Curry(a2, ..., aN)(a1)
//
// The wrappers add no side effects and no errors of their own.
package dual

// Func2 is an operation taking a subject and one parameter.
type Func2[S, A, R any] func(subject S, a A) R

// Func3 is an operation taking a subject and two parameters.
type Func3[S, A, B, R any] func(subject S, a A, b B) R

// Func4 is an operation taking a subject and three parameters.
type Func4[S, A, B, C, R any] func(subject S, a A, b B, c C) R

// Of2 wraps impl so it can be called in either form.
func Of2[S, A, R any](impl func(S, A) R) Func2[S, A, R] {
	return impl
}

// Of3 wraps impl so it can be called in either form.
func Of3[S, A, B, R any](impl func(S, A, B) R) Func3[S, A, B, R] {
	return impl
}

// Of4 wraps impl so it can be called in either form.
func Of4[S, A, B, C, R any](impl func(S, A, B, C) R) Func4[S, A, B, C, R] {
	return impl
}

// Call is the direct form.
func (f Func2[S, A, R]) Call(subject S, a A) R { //nolint:ireturn
	return f(subject, a)
}

// Curry is the data-last form: it binds the parameter and waits for the subject.
func (f Func2[S, A, R]) Curry(a A) func(S) R {
	return Curry2[S, A, R](f, a)
}

// Call is the direct form.
func (f Func3[S, A, B, R]) Call(subject S, a A, b B) R { //nolint:ireturn
	return f(subject, a, b)
}

// Curry is the data-last form: it binds the parameters and waits for the subject.
func (f Func3[S, A, B, R]) Curry(a A, b B) func(S) R {
	return Curry3[S, A, B, R](f, a, b)
}

// Call is the direct form.
func (f Func4[S, A, B, C, R]) Call(subject S, a A, b B, c C) R { //nolint:ireturn
	return f(subject, a, b, c)
}

// Curry is the data-last form: it binds the parameters and waits for the subject.
func (f Func4[S, A, B, C, R]) Curry(a A, b B, c C) func(S) R {
	return Curry4[S, A, B, C, R](f, a, b, c)
}

// Curry2 binds the trailing parameter of impl and returns a function of the subject.
func Curry2[S, A, R any](impl func(S, A) R, a A) func(S) R {
	return func(subject S) R {
		return impl(subject, a)
	}
}

// Curry3 binds the trailing parameters of impl and returns a function of the subject.
func Curry3[S, A, B, R any](impl func(S, A, B) R, a A, b B) func(S) R {
	return func(subject S) R {
		return impl(subject, a, b)
	}
}

// Curry4 binds the trailing parameters of impl and returns a function of the subject.
func Curry4[S, A, B, C, R any](impl func(S, A, B, C) R, a A, b B, c C) func(S) R {
	return func(subject S) R {
		return impl(subject, a, b, c)
	}
}

// Func2E is a fallible operation taking a subject and one parameter.
type Func2E[S, A, R any] func(subject S, a A) (R, error)

// Func3E is a fallible operation taking a subject and two parameters.
type Func3E[S, A, B, R any] func(subject S, a A, b B) (R, error)

// Of2E wraps a fallible impl so it can be called in either form.
func Of2E[S, A, R any](impl func(S, A) (R, error)) Func2E[S, A, R] {
	return impl
}

// Of3E wraps a fallible impl so it can be called in either form.
func Of3E[S, A, B, R any](impl func(S, A, B) (R, error)) Func3E[S, A, B, R] {
	return impl
}

// Call is the direct form.
func (f Func2E[S, A, R]) Call(subject S, a A) (R, error) { //nolint:ireturn
	return f(subject, a)
}

// Curry is the data-last form.
func (f Func2E[S, A, R]) Curry(a A) func(S) (R, error) {
	return Curry2E[S, A, R](f, a)
}

// Call is the direct form.
func (f Func3E[S, A, B, R]) Call(subject S, a A, b B) (R, error) { //nolint:ireturn
	return f(subject, a, b)
}

// Curry is the data-last form.
func (f Func3E[S, A, B, R]) Curry(a A, b B) func(S) (R, error) {
	return Curry3E[S, A, B, R](f, a, b)
}

// Curry2E binds the trailing parameter of a fallible impl.
func Curry2E[S, A, R any](impl func(S, A) (R, error), a A) func(S) (R, error) {
	return func(subject S) (R, error) {
		return impl(subject, a)
	}
}

// Curry3E binds the trailing parameters of a fallible impl.
func Curry3E[S, A, B, R any](impl func(S, A, B) (R, error), a A, b B) func(S) (R, error) {
	return func(subject S) (R, error) {
		return impl(subject, a, b)
	}
}

// Flip turns a two-argument function into its data-last curried form without
// going through Func2. It is Curry2 with the arguments taken one at a time.
func Flip[S, A, R any](impl func(S, A) R) func(A) func(S) R {
	return func(a A) func(S) R {
		return Curry2(impl, a)
	}
}
