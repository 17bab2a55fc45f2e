// Package tuple holds the fixed-size heterogeneous rows produced by zipping,
// crossing and grouping sequences.
//
//nolint:ireturn
package tuple

import "fmt"

// Tuple2 is a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

func (t Tuple2[A, B]) First() A {
	return t.first
}

func (t Tuple2[A, B]) Second() B {
	return t.second
}

// Unpack returns both members as Go multiple return values.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

// Tuple3 is a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

func (t Tuple3[A, B, C]) First() A {
	return t.first
}

func (t Tuple3[A, B, C]) Second() B {
	return t.second
}

func (t Tuple3[A, B, C]) Third() C {
	return t.third
}

// Unpack returns all three members as Go multiple return values.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// MapSecond transforms the second member of a pair, keeping the first.
func MapSecond[A, B, C any](t Tuple2[A, B], f func(B) C) Tuple2[A, C] {
	return NewTuple2(t.first, f(t.second))
}
