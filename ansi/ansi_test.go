package ansi_test

import (
	"testing"

	"github.com/amp-labs/keyhash/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPaletteEnabled(t *testing.T) {
	t.Parallel()

	p := ansi.NewPalette(true)

	assert.Equal(t, "\x1b[1;91mx\x1b[0m", p.Red("x"))
	assert.Equal(t, ansi.Green+"x"+ansi.Reset, p.Green("x"))
	assert.Equal(t, ansi.Yellow+"x"+ansi.Reset, p.Yellow("x"))
	assert.Equal(t, ansi.Green+"true"+ansi.Reset, p.Bool(true))
	assert.Equal(t, ansi.Red+"false"+ansi.Reset, p.Bool(false))
}

func TestPaletteDisabled(t *testing.T) {
	t.Parallel()

	p := ansi.NewPalette(false)

	assert.Equal(t, "x", p.Red("x"))
	assert.Equal(t, "x", p.Green("x"))
	assert.Equal(t, "x", p.Yellow("x"))
	assert.Equal(t, "true", p.Bool(true))
	assert.Equal(t, "false", p.Bool(false))
}
