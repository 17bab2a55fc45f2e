// Package record implements Record, a string-keyed map that remembers the order
// its keys were first inserted in. Iteration, Entries and the JSON and YAML
// encodings all follow that order, so converting a Record to a list of entries
// and back is lossless.
package record

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/amp-labs/amp-fp/tuple"
)

// Entry is one key-value pair of a Record.
type Entry[V any] = tuple.Tuple2[string, V]

// Record is an insertion-ordered mapping from unique string keys to values.
//
// The zero value is an empty Record ready to use. A Record is not safe for
// concurrent modification.
type Record[V any] struct {
	keys   []string
	values map[string]V
}

// New returns an empty Record.
func New[V any]() *Record[V] {
	return &Record[V]{values: make(map[string]V)}
}

// FromEntries builds a Record from key-value pairs. When a key repeats it keeps
// the position of its first occurrence and the value of its last.
func FromEntries[V any](entries []Entry[V]) *Record[V] {
	r := &Record[V]{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]V, len(entries)),
	}

	for _, e := range entries {
		r.Set(e.First(), e.Second())
	}

	return r
}

// FromMap builds a Record from a Go map. Go maps have no order, so keys are laid
// out in natural sort order ("item2" before "item10") to keep the result
// deterministic.
func FromMap[V any](m map[string]V) *Record[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, naturalOrder)

	r := &Record[V]{
		keys:   keys,
		values: make(map[string]V, len(m)),
	}

	for _, k := range keys {
		r.values[k] = m[k]
	}

	return r
}

func naturalOrder(a, b string) int {
	switch {
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Len returns the number of keys.
func (r *Record[V]) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Has reports whether key is present.
func (r *Record[V]) Has(key string) bool {
	if r == nil {
		return false
	}

	_, ok := r.values[key]

	return ok
}

// Get returns the value stored under key.
func (r *Record[V]) Get(key string) optional.Value[V] {
	if r == nil {
		return optional.None[V]()
	}

	v, ok := r.values[key]

	return optional.FromLookup(v, ok)
}

// Lookup returns the value under key as an untyped value, for callers that
// inspect records of any value type.
func (r *Record[V]) Lookup(key string) (any, bool) {
	v, ok := r.Get(key).Get()
	if !ok {
		return nil, false
	}

	return v, true
}

// Set stores value under key. A new key goes to the end; an existing key keeps
// its position.
func (r *Record[V]) Set(key string, value V) {
	if r.values == nil {
		r.values = make(map[string]V)
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Delete removes key, reporting whether it was present.
func (r *Record[V]) Delete(key string) bool {
	if !r.Has(key) {
		return false
	}

	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })

	return true
}

// Keys returns the keys in insertion order.
func (r *Record[V]) Keys() []string {
	if r == nil {
		return []string{}
	}

	return slices.Clone(r.keys)
}

// Values returns the values in key order.
func (r *Record[V]) Values() []V {
	out := make([]V, 0, r.Len())
	for _, v := range r.All() {
		out = append(out, v)
	}

	return out
}

// Entries returns the key-value pairs in insertion order.
func (r *Record[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, r.Len())
	for k, v := range r.All() {
		out = append(out, tuple.NewTuple2(k, v))
	}

	return out
}

// All iterates over the key-value pairs in insertion order.
func (r *Record[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if r == nil {
			return
		}

		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (r *Record[V]) Clone() *Record[V] {
	out := &Record[V]{
		keys:   r.Keys(),
		values: make(map[string]V, r.Len()),
	}

	for k, v := range r.All() {
		out.values[k] = v
	}

	return out
}

// ToMap copies the Record into a Go map, dropping the key order.
func (r *Record[V]) ToMap() map[string]V {
	out := make(map[string]V, r.Len())
	for k, v := range r.All() {
		out[k] = v
	}

	return out
}

func (r *Record[V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, e := range r.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s: %v", e.First(), e.Second())
	}

	sb.WriteString("}")

	return sb.String()
}
