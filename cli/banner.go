package cli

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight

	bannerPadding   = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultWidth is the banner width. It is fixed rather than probed from the
// terminal so that output is identical from run to run.
const DefaultWidth = 80

const escape = '\x1b'

// Banner draws s inside a box of the given width. Lines that do not fit are
// truncated with an ellipsis. ANSI colour sequences inside s take no width.
func Banner(s string, width int, alignment int) string {
	lines := getLines(s)
	if len(lines) == 0 || width <= bannerPadding {
		return ""
	}

	dividerTop := fmt.Sprintf("%s%s%s", boxTopLeft, strings.Repeat(boxTop, width-bannerPadding), boxTopRight)
	parts := []string{dividerTop}

	for _, l := range lines {
		var line string

		switch alignment {
		case AlignCenter:
			line = pad(l, width-bannerPadding, func(diff int) (int, int) {
				return diff / halfDivisor, diff - diff/halfDivisor
			})
		case AlignLeft:
			line = pad(l, width-bannerPadding, func(diff int) (int, int) { return 0, diff })
		case AlignRight:
			line = pad(l, width-bannerPadding, func(diff int) (int, int) { return diff, 0 })
		default:
			return ""
		}

		parts = append(parts, fmt.Sprintf("%s%s%s", boxSide, line, boxSide))
	}

	dividerBottom := fmt.Sprintf("%s%s%s", boxBottomLeft, strings.Repeat(boxBottom, width-bannerPadding), boxBottomRight)
	parts = append(parts, dividerBottom)

	return strings.Join(parts, "\n")
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

// walkVisible calls f for every rune of s, reporting whether it occupies a
// column. Runes inside an ESC[ ... letter sequence never do.
func walkVisible(s string, f func(r rune, visible bool) bool) {
	inEscape := false

	for _, r := range s {
		visible := false

		switch {
		case r == escape:
			inEscape = true
		case inEscape:
			if r != '[' && unicode.IsLetter(r) {
				inEscape = false
			}
		default:
			visible = unicode.IsGraphic(r)
		}

		if !f(r, visible) {
			return
		}
	}
}

func countGraphic(s string) int {
	count := 0

	walkVisible(s, func(_ rune, visible bool) bool {
		if visible {
			count++
		}

		return true
	})

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	walkVisible(s, func(r rune, visible bool) bool {
		if visible {
			if count >= n {
				return false
			}

			count++
		}

		out.WriteRune(r)

		return true
	})

	return out.String(), count
}

// pad fits text into width columns; split decides how the spare columns
// are distributed between the left and right side.
func pad(text string, width int, split func(diff int) (left, right int)) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	left, right := split(width - length)

	return strings.Repeat(" ", left) + str + strings.Repeat(" ", right)
}
