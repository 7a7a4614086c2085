package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amp-labs/keyhash/ansi"
)

var assumption = []string{ //nolint:gochecknoglobals
	" Kafka converts \"String-Keys to Long-Keys\" by observing Java's",
	"canonical hashCode() semantics, there shouldn't be any discrepancies when",
	"supplying: a scalar long; a Long instance; a String representation for",
	"any value nominated as a KEY.",
}

// BannerText is the assumption the demonstration puts to the test.
func BannerText(p *ansi.Palette) string {
	return p.Red("Provided") + strings.Join(assumption, "\n")
}

// Announcer prints the startup banner at most once.
type Announcer struct {
	once sync.Once
	err  error
}

// Announce writes the banner to w on the first call and is a no-op afterwards.
// With boxed false the prose is written without the surrounding box.
func (a *Announcer) Announce(w io.Writer, p *ansi.Palette, boxed bool) error {
	a.once.Do(func() {
		text := BannerText(p)
		if boxed {
			text = Banner(text, DefaultWidth, AlignLeft)
		}

		_, a.err = fmt.Fprintf(w, "\n\n%s\n", text)
	})

	return a.err
}

var startupBanner Announcer //nolint:gochecknoglobals

// PrintBanner writes the process-wide startup banner. main calls it once
// before doing any work; repeated calls print nothing.
func PrintBanner(w io.Writer, p *ansi.Palette, boxed bool) error {
	return startupBanner.Announce(w, p, boxed)
}
