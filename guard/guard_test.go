package guard

import (
	"testing"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ name string }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *widget
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilIface error
	)

	tests := []struct {
		name     string
		check    func() bool
		expected bool
	}{
		{name: "nil pointer", check: func() bool { return IsNil(nilPtr) }, expected: true},
		{name: "nil map", check: func() bool { return IsNil(nilMap) }, expected: true},
		{name: "nil slice", check: func() bool { return IsNil(nilSlice) }, expected: true},
		{name: "nil func", check: func() bool { return IsNil(nilFunc) }, expected: true},
		{name: "nil chan", check: func() bool { return IsNil(nilChan) }, expected: true},
		{name: "nil interface", check: func() bool { return IsNil(nilIface) }, expected: true},
		{name: "typed nil in any", check: func() bool { return IsNil[any](nilPtr) }, expected: true},
		{name: "pointer", check: func() bool { return IsNil(&widget{}) }, expected: false},
		{name: "zero int", check: func() bool { return IsNil(0) }, expected: false},
		{name: "empty string", check: func() bool { return IsNil("") }, expected: false},
		{name: "empty slice", check: func() bool { return IsNil([]int{}) }, expected: false},
		{name: "struct", check: func() bool { return IsNil(widget{}) }, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.check())
		})
	}

	assert.True(t, IsNotNil(1))
	assert.False(t, IsNotNil(nilPtr))
}

func TestEnsureNonEmpty(t *testing.T) {
	t.Parallel()

	res := EnsureNonEmpty([]int{})
	require.ErrorIs(t, res.Error, amperrors.ErrEmptyInput)

	res = EnsureNonEmpty[int](nil)
	require.ErrorIs(t, res.Error, amperrors.ErrEmptyInput)

	in := []int{1}
	res = EnsureNonEmpty(in)
	require.NoError(t, res.Error)
	assert.Equal(t, []int{1}, res.Value)
	assert.Same(t, &in[0], &res.Value[0], "slice is returned unchanged, not copied")
}

func TestEnsureNotNil(t *testing.T) {
	t.Parallel()

	var missing *widget

	res := EnsureNotNil(missing)
	require.ErrorIs(t, res.Error, amperrors.ErrValueAbsent)
	assert.Contains(t, res.Error.Error(), "*guard.widget")

	w := &widget{name: "w"}
	res = EnsureNotNil(w)
	require.NoError(t, res.Error)
	assert.Same(t, w, res.Value)

	assert.True(t, EnsureNotNil(0).IsSuccess())
}

func TestEnsurePresent(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, EnsurePresent(optional.None[string]()).Error, amperrors.ErrValueAbsent)

	res := EnsurePresent(optional.Some("here"))
	require.NoError(t, res.Error)
	assert.Equal(t, "here", res.Value)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3}, Must(EnsureNonEmpty([]int{3})))

	assert.PanicsWithError(t, "empty input: EnsureNonEmpty", func() {
		Must(EnsureNonEmpty([]int{}))
	})
}
