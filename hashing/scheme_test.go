package hashing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaLongHashCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       int64
		expected int32
	}{
		{in: 0, expected: 0},
		{in: 1, expected: 1},
		{in: 42, expected: 42},
		{in: -1, expected: 0},
		{in: 1 << 32, expected: 1},
		{in: math.MaxInt64, expected: math.MinInt32},
		{in: math.MinInt64, expected: math.MinInt32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, JavaLongHashCode(tt.in), "Long.hashCode(%d)", tt.in)
	}
}

func TestJavaStringHashCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected int32
	}{
		{in: "", expected: 0},
		{in: "hello", expected: 99162322},
		{in: "héllo", expected: 103094734},
		{in: "😀", expected: 1772899}, // surrogate pair
		{in: "9223372036854775807", expected: -1773151198},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, JavaStringHashCode(tt.in), "%q.hashCode()", tt.in)
	}
}

func TestJavaScheme(t *testing.T) {
	t.Parallel()

	s := Java{}

	numeric, err := s.HashInt64(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, "-2147483648", numeric)

	text, err := s.HashString("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, "-1773151198", text)

	assert.NotEqual(t, numeric, text)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"java", "JAVA", " xxh3 ", "xxhash64", "sha256"} {
		s, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, s.Name())
	}

	_, err := Lookup("murmur3")
	require.ErrorIs(t, err, ErrUnknownScheme)
	assert.Contains(t, err.Error(), "java, sha256, xxh3, xxhash64")
}

func TestDigestSchemesSeparateIntAndText(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		s, err := Lookup(name)
		require.NoError(t, err)

		a, err := s.HashInt64(math.MaxInt64)
		require.NoError(t, err)

		b, err := s.HashInt64(math.MaxInt64)
		require.NoError(t, err)

		c, err := s.HashString("9223372036854775807")
		require.NoError(t, err)

		assert.Equal(t, a, b, "%s must be deterministic", name)
		assert.NotEqual(t, a, c, "%s must not collide int and text encodings", name)
	}
}
