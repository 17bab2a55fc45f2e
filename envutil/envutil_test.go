package envutil

import (
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative")

func nonNegative(v int) error {
	if v < 0 {
		return errNegative
	}

	return nil
}

func TestStringReader(t *testing.T) { //nolint:paralleltest
	t.Setenv("ENVUTIL_TEST_STRING", "from-env")

	ctx := t.Context()

	rdr := String(ctx, "ENVUTIL_TEST_STRING")
	value, err := rdr.Value()
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
	assert.Equal(t, "ENVUTIL_TEST_STRING=from-env", rdr.String())

	overridden := WithEnvOverride(ctx, "ENVUTIL_TEST_STRING", "from-ctx")
	assert.Equal(t, "from-ctx", String(overridden, "ENVUTIL_TEST_STRING").ValueOrElse(""))
}

func TestMissingValues(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	missing := String(ctx, "ENVUTIL_TEST_DEFINITELY_UNSET")
	assert.False(t, missing.HasValue())
	assert.Equal(t, "ENVUTIL_TEST_DEFINITELY_UNSET=<not set>", missing.String())

	_, err := missing.Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)

	assert.Equal(t, "dflt", String(ctx, "ENVUTIL_TEST_DEFINITELY_UNSET", Default("dflt")).ValueOrElse(""))

	errRequired := errors.New("required")
	_, err = String(ctx, "ENVUTIL_TEST_DEFINITELY_UNSET", IfMissing[string](errRequired)).Value()
	require.ErrorIs(t, err, errRequired)
	require.ErrorIs(t, err, ErrBadEnvVar)
}

func TestTypedReaders(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverrides(t.Context(), map[string]string{
		"LIMIT":     " 8 ",
		"NEG_LIMIT": "-1",
		"BIG":       "300",
		"JSON":      "true",
		"LEVEL":     "WARN",
		"BAD_LEVEL": "loud",
	})

	limit, err := Int[int](ctx, "LIMIT").Value()
	require.NoError(t, err)
	assert.Equal(t, 8, limit)

	_, err = Int[int](ctx, "NEG_LIMIT", Validate(nonNegative)).Value()
	require.ErrorIs(t, err, errNegative)

	_, err = Int[int8](ctx, "BIG").Value()
	require.ErrorIs(t, err, strconv.ErrRange)

	_, err = Int[uint](ctx, "NEG_LIMIT").Value()
	require.ErrorIs(t, err, strconv.ErrRange)

	assert.True(t, Bool(ctx, "JSON").ValueOrElse(false))
	assert.Equal(t, slog.LevelWarn, SlogLevel(ctx, "LEVEL").ValueOrElse(slog.LevelInfo))

	bad := SlogLevel(ctx, "BAD_LEVEL")
	assert.True(t, bad.HasError())
	require.ErrorIs(t, bad.Error(), ErrInvalidLogLevel)
	assert.Equal(t, slog.LevelInfo, bad.ValueOrElse(slog.LevelInfo))

	// A default does not hide a parse failure.
	_, err = SlogLevel(ctx, "BAD_LEVEL", Default(slog.LevelDebug)).Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
}

func TestMapAndNewReader(t *testing.T) {
	t.Parallel()

	rdr := NewReader("n", true, nil, "21")
	doubled := Map(rdr, func(s string) (int, error) {
		v, err := strconv.Atoi(s)

		return v * 2, err
	})

	assert.Equal(t, "n", doubled.Key())
	assert.Equal(t, 42, doubled.ValueOrElse(0))

	absent := Map(NewReader("m", false, nil, ""), strconv.Atoi)
	assert.False(t, absent.HasValue())
	assert.False(t, absent.HasError())
}
