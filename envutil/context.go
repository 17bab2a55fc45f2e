package envutil

import (
	"context"
)

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless of
// the process environment. Tests use it to configure one call without touching
// global state.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, envContextKey(key), value)
}

// WithEnvOverrides applies WithEnvOverride for every entry of env.
func WithEnvOverrides(ctx context.Context, env map[string]string) context.Context {
	for key, value := range env {
		ctx = WithEnvOverride(ctx, key, value)
	}

	return ctx
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	value, ok := ctx.Value(envContextKey(key)).(string)

	return value, ok
}
