// Package envutil reads typed configuration values from the environment.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless of
// the process environment. Tests use it to avoid mutating global state.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

func get(ctx context.Context, key string) Reader[string] {
	if ctx != nil {
		if val, ok := ctx.Value(envContextKey(key)).(string); ok {
			return Reader[string]{key: key, present: true, value: val}
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(ctx, key), trimString), strconv.ParseBool), opts)
}

// NonEmpty is true when the variable is set to anything but the empty string.
// This is the NO_COLOR convention.
func NonEmpty(ctx context.Context, key string) Reader[bool] {
	rdr := Map(get(ctx, key), func(s string) (bool, error) {
		return s != "", nil
	})

	return rdr.WithDefault(false)
}

// SlogLevel returns a Reader for a log level named debug, info, warn or error.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(get(ctx, key), trimString), parseSlogLevel), opts)
}

func trimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
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
