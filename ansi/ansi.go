// Package ansi holds the terminal colour codes used on the diagnostic stream
// and a Palette that applies them.
package ansi

import (
	"strconv"

	"github.com/fatih/color"
)

// Bold high-intensity foreground colours and the reset sequence.
const (
	Red    = "\x1b[1;91m"
	Green  = "\x1b[1;92m"
	Yellow = "\x1b[1;93m"
	Reset  = "\x1b[0m"
)

// Palette paints strings. The zero value is not usable; use NewPalette.
type Palette struct {
	red    *color.Color
	green  *color.Color
	yellow *color.Color
}

// NewPalette returns a Palette. When enabled is false every method returns its
// input unchanged. The choice is explicit so that output does not depend on
// whether stderr happens to be a terminal.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		red:    color.New(color.Bold, color.FgHiRed),
		green:  color.New(color.Bold, color.FgHiGreen),
		yellow: color.New(color.Bold, color.FgHiYellow),
	}

	for _, c := range []*color.Color{p.red, p.green, p.yellow} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Palette) Red(s string) string {
	return p.red.Sprint(s)
}

func (p *Palette) Green(s string) string {
	return p.green.Sprint(s)
}

func (p *Palette) Yellow(s string) string {
	return p.yellow.Sprint(s)
}

// Bool renders b as "true" in green or "false" in red.
func (p *Palette) Bool(b bool) string {
	if b {
		return p.Green(strconv.FormatBool(b))
	}

	return p.Red(strconv.FormatBool(b))
}
