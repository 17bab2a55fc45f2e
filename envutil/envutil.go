// Package envutil reads typed configuration from environment variables, with
// per-context overrides taking precedence over the process environment.
//
//	limit := envutil.Int[int](ctx, "ASYNC_MAX_CONCURRENCY",
//		envutil.Default(0),
//		envutil.Validate(nonNegative),
//	).ValueOrElse(0)
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-fp/numeric"
)

// ErrInvalidLogLevel is returned when a log level string is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// get returns a Reader for the given key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return newReader(key, true, nil, val)
	}

	val, ok := os.LookupEnv(key)

	return newReader(key, ok, nil, val)
}

// NewReader returns a Reader for raw data that did not come from the environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return newReader(key, present, err, value)
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader parsing the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int returns a Reader parsing the variable as a base-10 integer that fits in I.
func Int[I numeric.Integer](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(ctx, key), parseInt[I]), opts)
}

func parseInt[I numeric.Integer](s string) (I, error) {
	s = strings.TrimSpace(s)

	parsed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	v := I(parsed)
	if int64(v) != parsed || (v < 0) != (parsed < 0) {
		return 0, fmt.Errorf("%w: %d out of range", strconv.ErrRange, parsed)
	}

	return v, nil
}

// SlogLevel returns a Reader accepting "debug", "info", "warn" or "error"
// (case-insensitive).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
