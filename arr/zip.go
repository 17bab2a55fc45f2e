package arr

import "github.com/amp-labs/amp-fp/tuple"

// Zip pairs up as and bs by position, stopping at the end of the shorter one.
func Zip[A, B any](as []A, bs []B) []tuple.Tuple2[A, B] {
	return ZipWith(as, bs, tuple.NewTuple2[A, B])
}

// ZipWith combines as and bs position by position through f, stopping at the
// end of the shorter one.
func ZipWith[A, B, R any](as []A, bs []B, f func(A, B) R) []R {
	n := min(len(as), len(bs))

	out := make([]R, n)
	for i := range n {
		out[i] = f(as[i], bs[i])
	}

	return out
}

// Zip3 is Zip over three slices.
func Zip3[A, B, C any](as []A, bs []B, cs []C) []tuple.Tuple3[A, B, C] {
	return ZipWith3(as, bs, cs, tuple.NewTuple3[A, B, C])
}

// ZipWith3 is ZipWith over three slices.
func ZipWith3[A, B, C, R any](as []A, bs []B, cs []C, f func(A, B, C) R) []R {
	n := min(len(as), len(bs), len(cs))

	out := make([]R, n)
	for i := range n {
		out[i] = f(as[i], bs[i], cs[i])
	}

	return out
}

// ZipN zips any number of same-typed slices into rows. With no input it returns
// an empty result; with one input every row holds a single element.
func ZipN[T any](seqs ...[]T) [][]T {
	if len(seqs) == 0 {
		return [][]T{}
	}

	n := len(seqs[0])
	for _, s := range seqs[1:] {
		n = min(n, len(s))
	}

	out := make([][]T, n)
	for i := range n {
		row := make([]T, len(seqs))
		for j, s := range seqs {
			row[j] = s[i]
		}

		out[i] = row
	}

	return out
}

// Cross returns every (a, b) pair, iterating bs fastest.
func Cross[A, B any](as []A, bs []B) []tuple.Tuple2[A, B] {
	return CrossWith(as, bs, tuple.NewTuple2[A, B])
}

// CrossWith combines every (a, b) pair through f, iterating bs fastest.
func CrossWith[A, B, R any](as []A, bs []B, f func(A, B) R) []R {
	out := make([]R, 0, len(as)*len(bs))

	for _, a := range as {
		for _, b := range bs {
			out = append(out, f(a, b))
		}
	}

	return out
}

// Cross3 returns every (a, b, c) triple, iterating cs fastest.
func Cross3[A, B, C any](as []A, bs []B, cs []C) []tuple.Tuple3[A, B, C] {
	out := make([]tuple.Tuple3[A, B, C], 0, len(as)*len(bs)*len(cs))

	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				out = append(out, tuple.NewTuple3(a, b, c))
			}
		}
	}

	return out
}
