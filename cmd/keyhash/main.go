// Command keyhash shows how a message key's hash code can differ depending on
// whether the key is carried as a native int64 or as its decimal text.
//
// It takes no arguments and writes its report to stderr. Behaviour is tuned
// through the environment:
//
//	KEYHASH_SCHEME     java (default), xxh3, xxhash64 or sha256
//	KEYHASH_FORMAT     text (default) or yaml
//	KEYHASH_NO_BANNER  print the startup banner without its box
//	NO_COLOR           disable colour when set to a non-empty value
//	LOG_LEVEL          debug, info (default), warn or error
//	LOG_JSON           emit logs as JSON
package main

import (
	"context"
	"io"
	"os"

	"github.com/amp-labs/keyhash/ansi"
	"github.com/amp-labs/keyhash/cli"
	"github.com/amp-labs/keyhash/contrast"
	"github.com/amp-labs/keyhash/logger"
)

func main() {
	ctx := context.Background()

	logger.ConfigureLogging(ctx, "keyhash")

	if err := run(ctx, os.Stderr, cli.PrintBanner); err != nil {
		logger.Fatal("keyhash failed", "error", err)
	}
}

type announceFunc func(w io.Writer, p *ansi.Palette, boxed bool) error

func run(ctx context.Context, diag io.Writer, announce announceFunc) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	palette := ansi.NewPalette(cfg.color)

	if cfg.format == contrast.FormatText {
		if err := announce(diag, palette, !cfg.noBanner); err != nil {
			return err
		}
	}

	c, err := contrast.New(
		contrast.WithScheme(cfg.scheme),
		contrast.WithFormat(cfg.format),
		contrast.WithPalette(palette),
		contrast.WithLogger(logger.Get(ctx)))
	if err != nil {
		return err
	}

	_, err = c.ContrastHashedValues(diag)

	return err
}
