// Package numeric holds the number constraint used throughout the module and the
// small arithmetic helpers that do not operate on sequences.
package numeric

import (
	"fmt"
	"math"

	amperrors "github.com/amp-labs/amp-fp/errors"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any built-in floating point type.
type Float interface {
	~float32 | ~float64
}

// Number is any built-in integer or floating point type.
type Number interface {
	Integer | Float
}

// IsInteger reports whether v holds an integral value. Non-finite floats are
// not integers.
func IsInteger[N Number](v N) bool {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return f == math.Trunc(f)
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[N Number](v, lo, hi N) (N, error) {
	if lo > hi {
		return v, fmt.Errorf("%w: min %v is greater than max %v", amperrors.ErrInvalidRange, lo, hi)
	}

	switch {
	case v < lo:
		return lo, nil
	case v > hi:
		return hi, nil
	default:
		return v, nil
	}
}

// DivMod returns the quotient and remainder of a / b. Both operands must be
// non-negative integers (integral floats are accepted), and b must not be zero.
func DivMod[N Number](a, b N) (N, N, error) {
	if err := checkNonNegativeInteger(a, "dividend"); err != nil {
		return 0, 0, err
	}

	if err := checkNonNegativeInteger(b, "divisor"); err != nil {
		return 0, 0, err
	}

	if b == 0 {
		return 0, 0, fmt.Errorf("%w: %v / 0", amperrors.ErrDivisionByZero, a)
	}

	if IsIntegerType[N]() {
		quotient := a / b

		return quotient, a - quotient*b, nil
	}

	return N(math.Floor(float64(a) / float64(b))), N(math.Mod(float64(a), float64(b))), nil
}

// IsIntegerType reports whether N is an integer type rather than a float type.
func IsIntegerType[N Number]() bool {
	var one N = 1

	return one/2 == 0
}

func checkNonNegativeInteger[N Number](v N, name string) error {
	if !IsInteger(v) {
		return fmt.Errorf("%w: %s %v is not an integer", amperrors.ErrInvalidInteger, name, v)
	}

	if v < 0 {
		return fmt.Errorf("%w: %s %v is negative", amperrors.ErrInvalidInteger, name, v)
	}

	return nil
}
