package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/keyhash/envutil"
)

// Name of the program emitting logs. Attached to every record from Get.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions,
// which swap the slog and log package defaults.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Fatal logs an error message and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	var handler slog.Handler

	// Logs share the diagnostic stream with the program's report.
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Third-party code on the old log package is redirected into slog.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput sends log output to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging configures logging from LOG_JSON and LOG_LEVEL.
// It returns the default logger. A malformed value is fatal.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	options, err := optionsFromEnv(ctx, app)
	if err != nil {
		Fatal("invalid logging configuration", "error", err)
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

func optionsFromEnv(ctx context.Context, app string) (Options, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return Options{}, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return Options{}, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return Options{}, err
	}

	return Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
	}, nil
}

// WithSubsystem overrides the subsystem attached by Get.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context, or the configured default.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx != nil {
		if sub, ok := ctx.Value(contextKey("subsystem")).(string); ok {
			return sub
		}
	}

	if sub, ok := subsystem.Load().(string); ok {
		return sub
	}

	return ""
}

// Get returns the default logger tagged with the subsystem.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	var realCtx context.Context

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if realCtx == nil {
		realCtx = context.Background()
	}

	return slog.Default().With("subsystem", GetSubsystem(realCtx))
}
