// Package fn provides left-to-right function application for building pipelines
// out of curried operations, plus a few trivial combinators.
//
// Example:
//
//	total := fn.Pipe3(orders,
//		pipe.Filter(Order.IsPaid),
//		pipe.Map(Order.Total),
//		arr.Sum[float64],
//	)
package fn

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T { //nolint:ireturn
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Noop accepts anything and does nothing.
func Noop(...any) {}

func Pipe1[A, B any](a A, f1 func(A) B) B { //nolint:ireturn
	return f1(a)
}

func Pipe2[A, B, C any](a A, f1 func(A) B, f2 func(B) C) C { //nolint:ireturn
	return f2(f1(a))
}

func Pipe3[A, B, C, D any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D { //nolint:ireturn
	return f3(f2(f1(a)))
}

func Pipe4[A, B, C, D, E any](
	a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E,
) E { //nolint:ireturn
	return f4(f3(f2(f1(a))))
}

func Pipe5[A, B, C, D, E, F any](
	a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F,
) F { //nolint:ireturn
	return f5(f4(f3(f2(f1(a)))))
}

func Pipe6[A, B, C, D, E, F, G any](
	a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G,
) G { //nolint:ireturn
	return f6(f5(f4(f3(f2(f1(a))))))
}

func Pipe7[A, B, C, D, E, F, G, H any](
	a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H,
) H { //nolint:ireturn
	return f7(f6(f5(f4(f3(f2(f1(a)))))))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](
	a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H,
	f8 func(H) I,
) I { //nolint:ireturn
	return f8(f7(f6(f5(f4(f3(f2(f1(a))))))))
}

// Flow2 composes f1 then f2 into a single function, left to right.
func Flow2[A, B, C any](f1 func(A) B, f2 func(B) C) func(A) C {
	return func(a A) C {
		return f2(f1(a))
	}
}

// Flow3 composes f1, f2 and f3 into a single function, left to right.
func Flow3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return func(a A) D {
		return f3(f2(f1(a)))
	}
}

// Flow4 composes four functions into a single function, left to right.
func Flow4[A, B, C, D, E any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) func(A) E {
	return func(a A) E {
		return f4(f3(f2(f1(a))))
	}
}
