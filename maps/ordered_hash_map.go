// Package maps holds an insertion-ordered map for keys that Go cannot compare
// with ==. Keys are bucketed by a hashing.HashFunc and confirmed with Equals,
// so two unequal keys that share a hash are chained in one bucket and stay
// distinct entries.
package maps

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-fp/collectable"
	"github.com/amp-labs/amp-fp/hashing"
	"github.com/amp-labs/amp-fp/optional"
)

// KeyValuePair is one entry of an OrderedHashMap.
type KeyValuePair[K collectable.Collectable[K], V any] struct {
	Key   K
	Value V
}

// OrderedHashMap maps Collectable keys to values and iterates in the order keys
// were first added. It is not safe for concurrent use.
type OrderedHashMap[K collectable.Collectable[K], V any] struct {
	hash    hashing.HashFunc
	entries []KeyValuePair[K, V]
	buckets map[string][]int // hash -> indexes into entries
}

// NewOrderedHashMap returns an empty map that buckets keys with hash.
func NewOrderedHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) *OrderedHashMap[K, V] {
	return &OrderedHashMap[K, V]{
		hash:    hash,
		buckets: make(map[string][]int),
	}
}

// locate hashes key and returns its bucket hash and entry index, or -1 when the
// key is absent.
func (o *OrderedHashMap[K, V]) locate(key K) (string, int, error) {
	sum, err := o.hash(key)
	if err != nil {
		return "", -1, err
	}

	for _, i := range o.buckets[sum] {
		if key.Equals(o.entries[i].Key) {
			return sum, i, nil
		}
	}

	return sum, -1, nil
}

// Add stores value under key. An existing key keeps its position.
func (o *OrderedHashMap[K, V]) Add(key K, value V) error {
	sum, i, err := o.locate(key)
	if err != nil {
		return err
	}

	if i >= 0 {
		o.entries[i].Value = value

		return nil
	}

	o.buckets[sum] = append(o.buckets[sum], len(o.entries))
	o.entries = append(o.entries, KeyValuePair[K, V]{Key: key, Value: value})

	return nil
}

func (o *OrderedHashMap[K, V]) Get(key K) (optional.Value[V], error) {
	_, i, err := o.locate(key)
	if err != nil {
		return optional.None[V](), err
	}

	if i < 0 {
		return optional.None[V](), nil
	}

	return optional.Some(o.entries[i].Value), nil
}

func (o *OrderedHashMap[K, V]) Contains(key K) (bool, error) {
	_, i, err := o.locate(key)

	return i >= 0, err
}

// Remove deletes key and reports whether it was present. Later entries move up
// one position.
func (o *OrderedHashMap[K, V]) Remove(key K) (bool, error) {
	_, i, err := o.locate(key)
	if err != nil || i < 0 {
		return false, err
	}

	o.entries = slices.Delete(o.entries, i, i+1)

	for h, idxs := range o.buckets {
		kept := idxs[:0]

		for _, j := range idxs {
			switch {
			case j == i:
			case j > i:
				kept = append(kept, j-1)
			default:
				kept = append(kept, j)
			}
		}

		if len(kept) == 0 {
			delete(o.buckets, h)
		} else {
			o.buckets[h] = kept
		}
	}

	return true, nil
}

func (o *OrderedHashMap[K, V]) Size() int {
	return len(o.entries)
}

// Seq yields (position, entry) in insertion order.
func (o *OrderedHashMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, e := range o.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (o *OrderedHashMap[K, V]) Keys() []K {
	keys := make([]K, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}

	return keys
}

// Clone returns an independent copy sharing the hash function. Keys and values
// are copied shallowly.
func (o *OrderedHashMap[K, V]) Clone() *OrderedHashMap[K, V] {
	out := &OrderedHashMap[K, V]{
		hash:    o.hash,
		entries: slices.Clone(o.entries),
		buckets: make(map[string][]int, len(o.buckets)),
	}

	for h, idxs := range o.buckets {
		out.buckets[h] = slices.Clone(idxs)
	}

	return out
}
