package arr

import (
	"errors"
	"strings"
	"testing"

	"github.com/amp-labs/amp-fp/fn"
	"github.com/amp-labs/amp-fp/hashing"
	"github.com/amp-labs/amp-fp/nonempty"
	"github.com/amp-labs/amp-fp/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	t.Parallel()

	groups := GroupBy([]int{1, 2, 1, 3, 2, 1}, fn.Identity[int])

	expected := []Group[int, int]{
		tuple.NewTuple2(1, nonempty.Of(1, 1, 1)),
		tuple.NewTuple2(2, nonempty.Of(2, 2)),
		tuple.NewTuple2(3, nonempty.Of(3)),
	}
	assert.Equal(t, expected, groups)
}

func TestGroupByKeepsMemberOrder(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "bob", "avocado", "banana", "cherry", "apricot"}
	groups := GroupBy(words, func(w string) byte { return w[0] })

	require.Len(t, groups, 3)

	key, members := groups[0].Unpack()
	assert.Equal(t, byte('a'), key)
	assert.Equal(t, []string{"apple", "avocado", "apricot"}, members.Values())

	key, members = groups[1].Unpack()
	assert.Equal(t, byte('b'), key)
	assert.Equal(t, []string{"bob", "banana"}, members.Values())

	assert.Equal(t, "cherry", groups[2].Second().Head())
	assert.Empty(t, GroupBy([]string{}, strings.ToUpper))
}

func TestGroupByPointerKeysUseIdentity(t *testing.T) {
	t.Parallel()

	a, b := new(int), new(int)
	groups := GroupBy([]*int{a, b, a}, fn.Identity[*int])

	assert.Len(t, groups, 2)
}

func TestGroupByWith(t *testing.T) {
	t.Parallel()

	counts := GroupByWith([]string{"x", "y", "x"}, fn.Identity[string], nonempty.Slice[string].Len)

	assert.Equal(t, []tuple.Tuple2[string, int]{
		tuple.NewTuple2("x", 2),
		tuple.NewTuple2("y", 1),
	}, counts)
}

type tagged struct {
	tags []string
	id   int
}

func tagKey(v tagged) hashing.HashableStrings {
	return v.tags
}

func TestGroupByHashed(t *testing.T) {
	t.Parallel()

	rows := []tagged{
		{tags: []string{"a", "b"}, id: 1},
		{tags: []string{"ab"}, id: 2},
		{tags: []string{"a", "b"}, id: 3},
	}

	for _, hashFn := range []hashing.HashFunc{hashing.XXH3, hashing.XXHash64, hashing.Sha256} {
		groups, err := GroupByHashed(rows, tagKey, hashFn)
		require.NoError(t, err)
		require.Len(t, groups, 2)

		assert.Equal(t, hashing.HashableStrings{"a", "b"}, groups[0].First())
		assert.Equal(t, []int{1, 3}, Map(groups[0].Second().Values(), func(v tagged) int { return v.id }))
		assert.Equal(t, 2, groups[1].Second().Head().id)
	}
}

func TestGroupByHashedCollidingKeys(t *testing.T) {
	t.Parallel()

	rows := []tagged{
		{tags: []string{"a"}, id: 1},
		{tags: []string{"b"}, id: 2},
		{tags: []string{"a"}, id: 3},
	}

	constant := func(hashing.Hashable) (string, error) { return "same", nil }

	groups, err := GroupByHashed(rows, tagKey, constant)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, hashing.HashableStrings{"a"}, groups[0].First())
	assert.Equal(t, []int{1, 3}, Map(groups[0].Second().Values(), func(v tagged) int { return v.id }))
	assert.Equal(t, hashing.HashableStrings{"b"}, groups[1].First())
	assert.Equal(t, 2, groups[1].Second().Head().id)
}

func TestGroupByHashedErrors(t *testing.T) {
	t.Parallel()

	rows := []tagged{{tags: []string{"a"}, id: 1}, {tags: []string{"b"}, id: 2}}

	errBoom := errors.New("boom")
	failing := func(hashing.Hashable) (string, error) { return "", errBoom }

	groups, err := GroupByHashed(rows, tagKey, failing)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, groups)
}
