package sortkey

import (
	"fmt"

	"facette.io/natsort"
	"github.com/amp-labs/amp-fp/compare"
	amperrors "github.com/amp-labs/amp-fp/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare orders two sort key vectors.
//
// Positions are paired up to the length of the shorter vector; extra positions
// on the longer side are ignored. At each position:
//
//  1. the left direction must be Ascending or Descending (ErrInvalidDirection),
//  2. both directions must match (ErrDirectionMismatch),
//  3. both kinds must match, and collated keys must share a language (ErrTypeMismatch),
//  4. the first unequal pair decides, inverted for Descending.
//
// Every error wraps ErrInvalidSortSpec. A nil error with a zero result means the
// vectors are equivalent.
func Compare(left, right []Key) (int, error) {
	return newComparer().compare(left, right)
}

// comparer holds per-sort state. Collators are not safe for concurrent use, so a
// comparer must stay on one goroutine.
type comparer struct {
	collators map[language.Tag]*collate.Collator
}

func newComparer() *comparer {
	return &comparer{}
}

func (c *comparer) collator(tag language.Tag) *collate.Collator {
	if col, ok := c.collators[tag]; ok {
		return col
	}

	if c.collators == nil {
		c.collators = make(map[language.Tag]*collate.Collator)
	}

	col := collate.New(tag)
	c.collators[tag] = col

	return col
}

func (c *comparer) compare(left, right []Key) (int, error) {
	for i := range min(len(left), len(right)) {
		l, r := left[i], right[i]

		if !l.dir.Valid() {
			return 0, fmt.Errorf("%w: expected asc|desc, got %q at position %d",
				amperrors.ErrInvalidDirection, l.dir, i)
		}

		if l.dir != r.dir {
			return 0, fmt.Errorf("%w: %s vs %s at position %d",
				amperrors.ErrDirectionMismatch, l.dir, r.dir, i)
		}

		if l.kind != r.kind || (l.kind == KindCollated && l.tag != r.tag) {
			return 0, fmt.Errorf("%w: compare(%s, %s) at position %d",
				amperrors.ErrTypeMismatch, l.typeName(), r.typeName(), i)
		}

		result, err := c.values(l, r)
		if err != nil {
			return 0, fmt.Errorf("%w at position %d", err, i)
		}

		if result != 0 {
			if l.dir == Descending {
				return -result, nil
			}

			return result, nil
		}
	}

	return 0, nil
}

// values compares two keys already known to share a kind.
func (c *comparer) values(l, r Key) (int, error) {
	switch l.kind {
	case KindNumber:
		return compareNumbers(l, r), nil
	case KindText:
		return compare.Natural(l.text, r.text), nil
	case KindNatural:
		return naturalOrder(l.text, r.text), nil
	case KindCollated:
		return compare.Sign(c.collator(l.tag).CompareString(l.text, r.text)), nil
	case KindInvalid:
		fallthrough
	default:
		return 0, fmt.Errorf("%w: compare(%s, %s)", amperrors.ErrTypeMismatch, l.kind, r.kind)
	}
}

func compareNumbers(l, r Key) int {
	switch {
	case l.rep == repFloat || r.rep == repFloat:
		return compare.Natural(l.num, r.num)
	case l.rep == repInt && r.rep == repInt:
		return compare.Natural(l.i, r.i)
	case l.rep == repUint && r.rep == repUint:
		return compare.Natural(l.u, r.u)
	case l.rep == repInt:
		if l.i < 0 {
			return -1
		}

		return compare.Natural(uint64(l.i), r.u)
	default:
		if r.i < 0 {
			return 1
		}

		return compare.Natural(l.u, uint64(r.i))
	}
}

func naturalOrder(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Comparator adapts a key function into a three-way comparison usable with the
// slices sort functions. Because those functions cannot fail, the first error
// is recorded, every later comparison reports equality, and the caller must check
// Err once sorting is done.
//
// A Comparator is not safe for concurrent use.
type Comparator[T any] struct {
	keyFn func(T) []Key
	cmp   *comparer
	err   error
}

// NewComparator builds a Comparator around keyFn.
func NewComparator[T any](keyFn func(T) []Key) *Comparator[T] {
	return &Comparator[T]{
		keyFn: keyFn,
		cmp:   newComparer(),
	}
}

// Compare computes both key vectors and compares them.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.CompareKeys(c.keyFn(a), c.keyFn(b))
}

// CompareKeys compares two precomputed key vectors, recording the first error.
func (c *Comparator[T]) CompareKeys(left, right []Key) int {
	if c.err != nil {
		return 0
	}

	result, err := c.cmp.compare(left, right)
	if err != nil {
		c.err = err

		return 0
	}

	return result
}

// Err returns the first error seen by Compare, if any.
func (c *Comparator[T]) Err() error {
	return c.err
}
