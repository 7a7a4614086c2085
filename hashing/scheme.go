package hashing

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrUnknownScheme is returned by Lookup when no scheme is registered under the given name.
var ErrUnknownScheme = errors.New("unknown hash scheme")

// Scheme pairs a hash for 64-bit integers with a hash for text, so that a
// numeric key and its decimal rendering can be compared under the same rules.
// Codes are rendered the way the scheme conventionally prints them.
type Scheme interface {
	Name() string
	HashInt64(v int64) (string, error)
	HashString(s string) (string, error)
}

// Java reproduces the JVM's canonical hashCode semantics: Long.hashCode
// folds the high word onto the low word, and String.hashCode is the
// polynomial s[0]*31^(n-1) + ... + s[n-1] over UTF-16 code units, both in
// 32-bit wrapping arithmetic. Codes print as signed decimal.
type Java struct{}

func (Java) Name() string {
	return "java"
}

func (Java) HashInt64(v int64) (string, error) {
	return strconv.FormatInt(int64(JavaLongHashCode(v)), 10), nil
}

func (Java) HashString(s string) (string, error) {
	return strconv.FormatInt(int64(JavaStringHashCode(s)), 10), nil
}

// JavaLongHashCode returns (int)(v ^ (v >>> 32)).
func JavaLongHashCode(v int64) int32 {
	u := uint64(v) //nolint:gosec // bit pattern is what gets hashed

	return int32(u ^ (u >> 32)) //nolint:gosec // truncation to the low word is the algorithm
}

// JavaStringHashCode returns the value java.lang.String#hashCode would for s.
func JavaStringHashCode(s string) int32 {
	var h int32

	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(unit)
	}

	return h
}

// Digest adapts a HashFunc into a Scheme. Integers are hashed through
// HashableInt64 and text through HashableString, so the two never share
// an input byte layout.
type Digest struct {
	name string
	fn   HashFunc
}

// NewDigest returns a Digest scheme called name that hashes with fn.
func NewDigest(name string, fn HashFunc) Digest {
	return Digest{name: name, fn: fn}
}

func (d Digest) Name() string {
	return d.name
}

func (d Digest) HashInt64(v int64) (string, error) {
	code, err := d.fn(HashableInt64(v))
	if err != nil {
		return "", fmt.Errorf("hashing int64 with %s: %w", d.name, err)
	}

	return code, nil
}

func (d Digest) HashString(s string) (string, error) {
	code, err := d.fn(HashableString(s))
	if err != nil {
		return "", fmt.Errorf("hashing string with %s: %w", d.name, err)
	}

	return code, nil
}

var schemes = map[string]Scheme{ //nolint:gochecknoglobals
	"java":     Java{},
	"xxh3":     NewDigest("xxh3", Xxh3),
	"xxhash64": NewDigest("xxhash64", XXHash64),
	"sha256":   NewDigest("sha256", Sha256),
}

// Lookup returns the scheme registered under name (case-insensitive).
func Lookup(name string) (Scheme, error) { //nolint:ireturn
	s, ok := schemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScheme, name, strings.Join(Names(), ", "))
	}

	return s, nil
}

// Names lists the registered scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
