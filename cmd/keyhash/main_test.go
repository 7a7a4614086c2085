package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/amp-labs/keyhash/ansi"
	"github.com/amp-labs/keyhash/cli"
	"github.com/amp-labs/keyhash/contrast"
	"github.com/amp-labs/keyhash/envutil"
	"github.com/amp-labs/keyhash/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(kv ...string) context.Context {
	ctx := context.Background()
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = envutil.WithEnvOverride(ctx, kv[i], kv[i+1])
	}

	return ctx
}

func runOnce(t *testing.T, ctx context.Context) string {
	t.Helper()

	var (
		buf bytes.Buffer
		a   cli.Announcer
	)

	require.NoError(t, run(ctx, &buf, a.Announce))

	return buf.String()
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(withEnv("KEYHASH_SCHEME", "java", "NO_COLOR", ""))
	require.NoError(t, err)

	assert.Equal(t, hashing.Java{}, cfg.scheme)
	assert.Equal(t, contrast.FormatText, cfg.format)
	assert.True(t, cfg.color)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(withEnv("KEYHASH_SCHEME", "crc32"))
	require.ErrorIs(t, err, hashing.ErrUnknownScheme)

	_, err = loadConfig(withEnv("KEYHASH_FORMAT", "xml"))
	require.ErrorIs(t, err, contrast.ErrUnknownFormat)

	_, err = loadConfig(withEnv("KEYHASH_NO_BANNER", "sometimes"))
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}

func TestRunPrintsBannerThenReport(t *testing.T) {
	t.Parallel()

	out := runOnce(t, withEnv("KEYHASH_SCHEME", "java", "KEYHASH_FORMAT", "text", "NO_COLOR", "1"))

	banner := strings.Index(out, "Provided Kafka converts")
	report := strings.Index(out, "Actual value, NumericValue: "+contrast.MaxKeyText)

	require.GreaterOrEqual(t, banner, 0)
	require.Greater(t, report, banner)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "╒")
	assert.Equal(t, 2, strings.Count(out, contrast.MaxKeyText))
}

func TestRunColoursByDefault(t *testing.T) {
	t.Parallel()

	out := runOnce(t, withEnv("KEYHASH_SCHEME", "java", "KEYHASH_FORMAT", "text",
		"NO_COLOR", "", "KEYHASH_NO_BANNER", "true"))

	assert.Contains(t, out, ansi.Red+"Provided"+ansi.Reset)
	assert.NotContains(t, out, "╒")
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	ctx := withEnv("KEYHASH_SCHEME", "xxh3", "KEYHASH_FORMAT", "text", "NO_COLOR", "")

	assert.Equal(t, runOnce(t, ctx), runOnce(t, ctx))
}

func TestRunYAMLSkipsBanner(t *testing.T) {
	t.Parallel()

	out := runOnce(t, withEnv("KEYHASH_SCHEME", "sha256", "KEYHASH_FORMAT", "yaml"))

	assert.NotContains(t, out, "Provided")
	assert.True(t, strings.HasPrefix(out, "scheme: sha256\n"))
	assert.NotContains(t, out, "\x1b[")
}
