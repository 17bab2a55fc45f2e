package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestSuccessFailure(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())

	val, err := ok.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, val)

	bad := Failure[int](errBoom)
	assert.True(t, bad.IsFailure())

	val, err = bad.Get()
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, val)
	assert.Equal(t, 9, bad.GetOrElse(9))
	assert.Equal(t, 3, ok.GetOrElse(9))
}

func TestOf(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("12")
	assert.True(t, Of(n, err).IsSuccess())
	assert.Equal(t, 12, Of(n, err).Value)

	n, err = strconv.Atoi("x")
	assert.True(t, Of(n, err).IsFailure())
}

func TestMap(t *testing.T) {
	t.Parallel()

	parsed := Map(Success("42"), strconv.Atoi)
	require.True(t, parsed.IsSuccess())
	assert.Equal(t, 42, parsed.Value)

	failed := Map(Success("nope"), strconv.Atoi)
	assert.True(t, failed.IsFailure())

	called := false
	skipped := Map(Failure[string](errBoom), func(s string) (int, error) {
		called = true

		return len(s), nil
	})

	assert.False(t, called)
	require.ErrorIs(t, skipped.Error, errBoom)
}
