package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable
// as a hex-encoded string.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the classic 64-bit xxHash (seed 0) of the
// given Hashable as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// HashableInt64 feeds an int64 to a hash as its 8-byte big-endian
// two's-complement representation, the same layout a JVM
// DataOutput.writeLong produces.
type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(i)) //nolint:gosec // two's-complement reinterpretation is intended

	_, err := h.Write(buf[:])

	return err
}
