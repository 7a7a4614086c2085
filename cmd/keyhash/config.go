package main

import (
	"context"
	"fmt"

	"github.com/amp-labs/keyhash/contrast"
	"github.com/amp-labs/keyhash/envutil"
	"github.com/amp-labs/keyhash/hashing"
)

type config struct {
	scheme   hashing.Scheme
	format   contrast.Format
	noBanner bool
	color    bool
}

func loadConfig(ctx context.Context) (config, error) {
	schemeName, err := envutil.String(ctx, "KEYHASH_SCHEME", envutil.Default("java")).Value()
	if err != nil {
		return config{}, err
	}

	scheme, err := hashing.Lookup(schemeName)
	if err != nil {
		return config{}, fmt.Errorf("KEYHASH_SCHEME: %w", err)
	}

	format, err := envutil.Map(
		envutil.String(ctx, "KEYHASH_FORMAT", envutil.Default(string(contrast.FormatText))),
		contrast.ParseFormat).Value()
	if err != nil {
		return config{}, err
	}

	noBanner, err := envutil.Bool(ctx, "KEYHASH_NO_BANNER", envutil.Default(false)).Value()
	if err != nil {
		return config{}, err
	}

	noColor := envutil.NonEmpty(ctx, "NO_COLOR").ValueOrElse(false)

	return config{
		scheme:   scheme,
		format:   format,
		noBanner: noBanner,
		color:    !noColor && format == contrast.FormatText,
	}, nil
}
