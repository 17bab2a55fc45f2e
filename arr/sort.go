package arr

import (
	"slices"

	"github.com/amp-labs/amp-fp/sortkey"
)

// SortBy returns a stably sorted copy of xs ordered by the sort key vectors
// keyFn produces. xs itself is left untouched.
//
// keyFn runs exactly once per element. If any two vectors disagree on direction
// or kind at a compared position, SortBy returns nil and an error wrapping
// errors.ErrInvalidSortSpec.
func SortBy[T any](xs []T, keyFn func(T) []sortkey.Key) ([]T, error) {
	type keyed struct {
		value T
		keys  []sortkey.Key
	}

	rows := make([]keyed, len(xs))
	for i, x := range xs {
		rows[i] = keyed{value: x, keys: keyFn(x)}
	}

	cmp := sortkey.NewComparator(keyFn)

	slices.SortStableFunc(rows, func(a, b keyed) int {
		return cmp.CompareKeys(a.keys, b.keys)
	})

	if err := cmp.Err(); err != nil {
		return nil, err
	}

	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = row.value
	}

	return out, nil
}
