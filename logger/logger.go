// Package logger hands out slog loggers shaped by the context: a subsystem
// name, extra key-values, a mute flag and an explicit base logger all travel
// with ctx, so helpers deep in a pipeline log with their caller's settings.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-fp/envutil"
)

const (
	// JSONEnv switches the default handler to JSON output.
	JSONEnv = "LOG_JSON"

	// LevelEnv sets the minimum level: debug, info, warn or error.
	LevelEnv = "LOG_LEVEL"
)

//nolint:gochecknoglobals
var (
	defaultSubsystem atomic.Pointer[string]
	configMutex      sync.Mutex
	mutedLogger      = slog.New(slog.DiscardHandler)
)

// Options is used to configure the process-wide default logger.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a default slog logger and reroutes the
// standard log package through it. Concurrent calls are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler = slog.NewTextHandler(opts.Output, handlerOpts)
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	*log.Default() = *slog.NewLogLogger(handler, opts.LegacyLevel)

	defaultSubsystem.Store(&opts.Subsystem)

	return logger
}

// Option adjusts the Options built by ConfigureLogging.
type Option func(*Options)

// ConfigureLogging configures logging for app from LOG_JSON and LOG_LEVEL.
// Unset or unparsable variables fall back to text output at info level.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem:   app,
		JSON:        envutil.Bool(ctx, JSONEnv).ValueOrElse(false),
		MinLevel:    envutil.SlogLevel(ctx, LevelEnv).ValueOrElse(slog.LevelInfo),
		LegacyLevel: slog.LevelInfo,
		Output:      os.Stdout,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

type settingsKey struct{}

// settings is copied on every change, so a context never sees edits made
// through its children.
type settings struct {
	base      *slog.Logger
	subsystem string
	muted     bool
	values    []any
}

func load(ctx context.Context) settings {
	if ctx == nil {
		return settings{}
	}

	s, _ := ctx.Value(settingsKey{}).(settings)

	return s
}

func store(ctx context.Context, update func(*settings)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	s := load(ctx)
	update(&s)

	return context.WithValue(ctx, settingsKey{}, s)
}

// WithMuted silences every logger obtained from the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return store(ctx, func(s *settings) { s.muted = muted })
}

// WithSubsystem overrides the subsystem name attached to log lines.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return store(ctx, func(s *settings) { s.subsystem = subsystem })
}

// GetSubsystem returns the subsystem set on ctx, or the one given to
// ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if sub := load(ctx).subsystem; sub != "" {
		return sub
	}

	if sub := defaultSubsystem.Load(); sub != nil {
		return *sub
	}

	return ""
}

// WithLogger makes Get start from logger instead of slog.Default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return store(ctx, func(s *settings) { s.base = logger })
}

// With returns a context whose loggers carry values in addition to any added
// earlier.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	return store(ctx, func(s *settings) {
		s.values = append(append(make([]any, 0, len(s.values)+len(values)), s.values...), values...)
	})
}

func getValues(ctx context.Context) []any {
	return load(ctx).values
}

// Get returns the logger for the first non-nil context given (or
// context.Background when there is none).
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	var current context.Context = context.Background()

	for _, c := range ctx {
		if c != nil {
			current = c

			break
		}
	}

	s := load(current)
	if s.muted {
		return mutedLogger
	}

	logger := s.base
	if logger == nil {
		logger = slog.Default()
	}

	if sub := GetSubsystem(current); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if len(s.values) > 0 {
		logger = logger.With(s.values...)
	}

	return logger
}
