// Package contrast compares a native int64 message key with the same key
// parsed from its decimal text, before and after hashing.
//
// The two values are always numerically equal. Whether their hash codes are
// equal depends on the hashing scheme, and whether the hash of the decimal
// text matches the hash of the number is the pitfall for producers that key
// messages on stringified counters.
package contrast

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/amp-labs/keyhash/ansi"
	"github.com/amp-labs/keyhash/hashing"
	"github.com/amp-labs/keyhash/keyseq"
	"gopkg.in/yaml.v3"
)

// MaxKeyText is math.MaxInt64 written in decimal.
const MaxKeyText = "9223372036854775807"

// Format selects how ContrastHashedValues renders its report.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat maps a configuration string to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Result is the outcome of one comparison.
type Result struct {
	Scheme       string `yaml:"scheme"`
	NumericValue int64  `yaml:"numeric_value"`
	ParsedValue  int64  `yaml:"parsed_value"`
	NumericHash  string `yaml:"numeric_hash"`
	ParsedHash   string `yaml:"parsed_hash"`
	// TextHash is the scheme's string hash of ParsedValue's decimal text.
	TextHash        string `yaml:"text_hash"`
	ValuesEqual     bool   `yaml:"values_equal"`
	HashesEqual     bool   `yaml:"hashes_equal"`
	TextHashMatches bool   `yaml:"text_hash_matches"`
	// KeyHeadroom reports whether a counter that just handed out
	// NumericValue could mint another key.
	KeyHeadroom bool `yaml:"key_headroom"`
}

// Comparator holds the two values under comparison. It is immutable after New.
type Comparator struct {
	numeric int64
	parsed  int64
	scheme  hashing.Scheme
	format  Format
	palette *ansi.Palette
	logger  *slog.Logger
}

type Option func(*Comparator)

// WithScheme sets the hashing scheme. The default is hashing.Java.
func WithScheme(s hashing.Scheme) Option {
	return func(c *Comparator) {
		c.scheme = s
	}
}

// WithFormat sets the report format. The default is FormatText.
func WithFormat(f Format) Option {
	return func(c *Comparator) {
		c.format = f
	}
}

// WithPalette sets the colours used by the text report. YAML reports are never coloured.
func WithPalette(p *ansi.Palette) Option {
	return func(c *Comparator) {
		c.palette = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Comparator) {
		c.logger = l
	}
}

// New builds a Comparator over math.MaxInt64 and the parse of MaxKeyText.
func New(opts ...Option) (*Comparator, error) {
	parsed, err := strconv.ParseInt(MaxKeyText, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", MaxKeyText, err)
	}

	c := &Comparator{
		numeric: math.MaxInt64,
		parsed:  parsed,
		scheme:  hashing.Java{},
		format:  FormatText,
		palette: ansi.NewPalette(true),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if _, err := ParseFormat(string(c.format)); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Comparator) NumericValue() int64 {
	return c.numeric
}

func (c *Comparator) ParsedValue() int64 {
	return c.parsed
}

// Compute hashes both values and works out every comparison without writing anything.
func (c *Comparator) Compute() (Result, error) {
	res := Result{
		Scheme:       c.scheme.Name(),
		NumericValue: c.numeric,
		ParsedValue:  c.parsed,
		ValuesEqual:  c.numeric == c.parsed,
	}

	var err error

	if res.NumericHash, err = c.scheme.HashInt64(c.numeric); err != nil {
		return Result{}, err
	}

	if res.ParsedHash, err = c.scheme.HashInt64(c.parsed); err != nil {
		return Result{}, err
	}

	if res.TextHash, err = c.scheme.HashString(strconv.FormatInt(c.parsed, 10)); err != nil {
		return Result{}, err
	}

	res.HashesEqual = res.NumericHash == res.ParsedHash
	res.TextHashMatches = res.TextHash == res.NumericHash

	if res.KeyHeadroom, err = headroom(c.numeric); err != nil {
		return Result{}, err
	}

	return res, nil
}

// headroom draws the key v from a counter seeded at v, then tries one more.
func headroom(v int64) (bool, error) {
	seq := keyseq.New(v)

	if _, err := seq.Next(); err != nil {
		return false, fmt.Errorf("drawing key %d: %w", v, err)
	}

	_, err := seq.Next()
	if errors.Is(err, keyseq.ErrExhausted) {
		return false, nil
	}

	return err == nil, err
}

// ContrastHashedValues computes the comparison and writes the report to w,
// which is normally the diagnostic stream.
func (c *Comparator) ContrastHashedValues(w io.Writer) (Result, error) {
	res, err := c.Compute()
	if err != nil {
		return Result{}, err
	}

	c.logger.Debug("contrasted hashed values",
		"scheme", res.Scheme,
		"values_equal", res.ValuesEqual,
		"hashes_equal", res.HashesEqual,
		"text_hash_matches", res.TextHashMatches)

	switch c.format {
	case FormatYAML:
		err = writeYAML(w, res)
	default:
		err = c.writeText(w, res)
	}

	if err != nil {
		return Result{}, fmt.Errorf("writing report: %w", err)
	}

	return res, nil
}

func (c *Comparator) writeText(w io.Writer, r Result) error {
	p := c.palette

	var b strings.Builder

	fmt.Fprintf(&b, "\n\nActual value, NumericValue: %d\nhash (%s): %s\n",
		r.NumericValue, r.Scheme, r.NumericHash)
	fmt.Fprintf(&b, "\n\nActual value, ParsedValue: %d\nhash (%s): %s\n",
		r.ParsedValue, r.Scheme, r.ParsedHash)

	fmt.Fprintf(&b, "\n\nA. Contrast (before hashing) %s\n%s\n",
		p.Yellow("int64 to int64"), p.Bool(r.ValuesEqual))
	fmt.Fprintf(&b, "\n\nB. Contrast (after hashing) %s (scalars, no boxing)\n%s\n",
		p.Yellow("hash to hash"), p.Bool(r.HashesEqual))
	fmt.Fprintf(&b, "\n\nC. Contrast (text key vs numeric key) %s\ntext hash (%s): %s\n%s\n",
		p.Yellow("string hash to int64 hash"), r.Scheme, r.TextHash, p.Bool(r.TextHashMatches))
	fmt.Fprintf(&b, "\n\nD. Incrementing past the key %s\n%s\n",
		p.Yellow("atomic counter"), p.Bool(r.KeyHeadroom))

	_, err := io.WriteString(w, b.String())

	return err
}

// writeYAML marshals before writing so that a failing writer's error reaches
// the caller unwrapped by the encoder.
func writeYAML(w io.Writer, r Result) error {
	bts, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(bts)

	return err
}
