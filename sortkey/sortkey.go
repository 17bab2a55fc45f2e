// Package sortkey implements multi-key, per-key-direction ordering.
//
// A caller describes how an element sorts by producing a sort key vector: an
// ordered list of Keys, each pairing a Direction with a value. Two vectors are
// compared position by position; the first position whose values differ decides
// the order, inverted when that position is Descending.
//
//	byAgeThenName := func(p Person) []sortkey.Key {
//		return []sortkey.Key{
//			sortkey.Asc(p.Age),
//			sortkey.Desc(p.Name),
//		}
//	}
//
// A Key is a tagged variant. Its kind is fixed by the constructor:
//
//   - Number: any integer or float (compared as float64).
//   - Text: a string compared bytewise.
//   - Natural: a string compared in natural order, so "file2" < "file10".
//   - Collated: a string compared with the collation rules of a language.
//
// Two vectors must agree position by position on direction and kind (and, for
// collated keys, language). Disagreement is a programming error in the key
// function and is reported rather than papered over; see Compare.
package sortkey

import (
	"fmt"
	"reflect"
	"strconv"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/numeric"
	"golang.org/x/text/language"
)

// Direction is the order of a single key position.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: expected asc|desc, got %q", amperrors.ErrInvalidDirection, s)
	}

	return d, nil
}

// Valid reports whether d is Ascending or Descending.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// Kind identifies which variant a Key holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindText
	KindNatural
	KindCollated
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindNatural:
		return "natural"
	case KindCollated:
		return "collated"
	case KindInvalid:
		return "invalid"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the set of Go types that can be turned into a Number or Text key.
type Value interface {
	numeric.Number | ~string
}

// numRep records how a Number key was built, so integer keys compare exactly.
type numRep uint8

const (
	repFloat numRep = iota
	repInt
	repUint
)

// Key is one (direction, value) position of a sort key vector.
type Key struct {
	dir  Direction
	kind Kind
	num  float64
	rep  numRep
	i    int64
	u    uint64
	text string
	tag  language.Tag
}

// By builds a key in the given direction. Strings (including named string types)
// become Text keys; every numeric type becomes a Number key.
//
// Integer values keep their exact value: two integer keys compare exactly even
// beyond 2^53, while an integer paired with a float compares as float64.
func By[V Value](dir Direction, v V) Key {
	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.String:
		return Text(dir, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		k := Number(dir, float64(rv.Int()))
		k.rep, k.i = repInt, rv.Int()

		return k
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		k := Number(dir, float64(rv.Uint()))
		k.rep, k.u = repUint, rv.Uint()

		return k
	default:
		return Number(dir, rv.Float())
	}
}

// Asc builds an ascending key.
func Asc[V Value](v V) Key {
	return By(Ascending, v)
}

// Desc builds a descending key.
func Desc[V Value](v V) Key {
	return By(Descending, v)
}

// Number builds a numeric key.
func Number(dir Direction, v float64) Key {
	return Key{dir: dir, kind: KindNumber, num: v}
}

// Text builds a key compared bytewise.
func Text(dir Direction, s string) Key {
	return Key{dir: dir, kind: KindText, text: s}
}

// Natural builds a key compared in natural order: runs of digits compare by
// numeric value, so "v2" sorts before "v10".
func Natural(dir Direction, s string) Key {
	return Key{dir: dir, kind: KindNatural, text: s}
}

// Collated builds a key compared using the collation rules of tag. Keys at the
// same position must use the same tag.
func Collated(dir Direction, s string, tag language.Tag) Key {
	return Key{dir: dir, kind: KindCollated, text: s, tag: tag}
}

func (k Key) Direction() Direction {
	return k.dir
}

func (k Key) Kind() Kind {
	return k.kind
}

func (k Key) String() string {
	switch k.kind {
	case KindNumber:
		switch k.rep {
		case repInt:
			return fmt.Sprintf("%s:%s(%d)", k.dir, k.kind, k.i)
		case repUint:
			return fmt.Sprintf("%s:%s(%d)", k.dir, k.kind, k.u)
		default:
			return fmt.Sprintf("%s:%s(%v)", k.dir, k.kind, k.num)
		}
	case KindCollated:
		return fmt.Sprintf("%s:%s[%s](%q)", k.dir, k.kind, k.tag, k.text)
	case KindText, KindNatural:
		return fmt.Sprintf("%s:%s(%q)", k.dir, k.kind, k.text)
	case KindInvalid:
		fallthrough
	default:
		return fmt.Sprintf("%s:%s", k.dir, k.kind)
	}
}

// typeName describes the value arm of a key for error messages.
func (k Key) typeName() string {
	if k.kind == KindCollated {
		return k.kind.String() + "[" + k.tag.String() + "]"
	}

	return k.kind.String()
}
