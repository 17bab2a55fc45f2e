package record

import (
	"testing"

	"github.com/amp-labs/amp-fp/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBasics(t *testing.T) {
	t.Parallel()

	r := New[int]()
	r.Set("b", 2)
	r.Set("a", 1)
	r.Set("c", 3)
	r.Set("b", 20)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"b", "a", "c"}, r.Keys())
	assert.Equal(t, []int{20, 1, 3}, r.Values())
	assert.True(t, r.Has("a"))
	assert.False(t, r.Has("z"))
	assert.Equal(t, 20, r.Get("b").GetOrElse(0))
	assert.True(t, r.Get("z").Empty())

	assert.True(t, r.Delete("a"))
	assert.False(t, r.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, r.Keys())
	assert.Equal(t, "{b: 20, c: 3}", r.String())
}

func TestZeroAndNilRecord(t *testing.T) {
	t.Parallel()

	var r Record[string]

	assert.Equal(t, 0, r.Len())
	r.Set("k", "v")
	assert.Equal(t, []string{"k"}, r.Keys())

	var nilRecord *Record[string]

	assert.Equal(t, 0, nilRecord.Len())
	assert.False(t, nilRecord.Has("k"))
	assert.True(t, nilRecord.Get("k").Empty())
	assert.Empty(t, nilRecord.Entries())
	assert.Equal(t, []string{}, nilRecord.Keys())
}

func TestEntriesRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []Entry[int]{
		tuple.NewTuple2("x", 1),
		tuple.NewTuple2("y", 2),
		tuple.NewTuple2("x", 3),
	}

	r := FromEntries(entries)

	// Duplicate keys keep their first position and their last value.
	assert.Equal(t, []Entry[int]{
		tuple.NewTuple2("x", 3),
		tuple.NewTuple2("y", 2),
	}, r.Entries())

	assert.Equal(t, r.Entries(), FromEntries(r.Entries()).Entries())
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	r := FromMap(map[string]bool{"item10": true, "item2": false, "item1": true, "alpha": true})

	assert.Equal(t, []string{"alpha", "item1", "item2", "item10"}, r.Keys())
	assert.Equal(t, map[string]bool{"item10": true, "item2": false, "item1": true, "alpha": true}, r.ToMap())
	assert.Equal(t, 0, FromMap[int](nil).Len())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	r := FromEntries([]Entry[int]{tuple.NewTuple2("a", 1)})
	c := r.Clone()
	c.Set("b", 2)
	c.Set("a", 10)

	assert.Equal(t, []string{"a"}, r.Keys())
	assert.Equal(t, 1, r.Get("a").GetOrElse(0))
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}

func TestAllStopsEarly(t *testing.T) {
	t.Parallel()

	r := FromEntries([]Entry[int]{tuple.NewTuple2("a", 1), tuple.NewTuple2("b", 2), tuple.NewTuple2("c", 3)})

	var seen []string

	for k := range r.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestPickOmitMapValues(t *testing.T) {
	t.Parallel()

	r := FromEntries([]Entry[int]{
		tuple.NewTuple2("a", 1),
		tuple.NewTuple2("b", 2),
		tuple.NewTuple2("c", 3),
	})

	picked := Pick(r, "c", "a", "missing")
	assert.Equal(t, []string{"c", "a"}, picked.Keys())
	assert.Equal(t, []int{3, 1}, picked.Values())

	omitted := Omit(r, "b", "missing")
	assert.Equal(t, []string{"a", "c"}, omitted.Keys())
	assert.Equal(t, 3, r.Len())

	doubled := MapValues(r, func(v int) float64 { return float64(v) * 1.5 })
	assert.Equal(t, []string{"a", "b", "c"}, doubled.Keys())
	assert.InDeltaSlice(t, []float64{1.5, 3, 4.5}, doubled.Values(), 1e-9)

	odd := Filter(r, func(_ string, v int) bool { return v%2 == 1 })
	assert.Equal(t, []string{"a", "c"}, odd.Keys())

	require.Equal(t, 0, Pick(r).Len())
}
