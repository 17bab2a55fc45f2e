package collectable

import (
	"github.com/amp-labs/amp-fp/compare"
	"github.com/amp-labs/amp-fp/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Keys that are not Go-comparable (slices,
// maps, structs holding either) implement it to take part in
// hash-based grouping: the hash picks a bucket, and collisions
// are resolved by comparing the keys.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}
