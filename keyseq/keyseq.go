// Package keyseq mints monotonically increasing message keys as decimal text.
//
// Keys are drawn from a single atomic counter, so concurrent producers never
// observe the same key and never see a torn 64-bit value. The text form is
// produced once, at the source, so every consumer hashes the same bytes.
package keyseq

import (
	"errors"
	"math"
	"strconv"

	"go.uber.org/atomic"
)

// ErrExhausted is returned once the counter has handed out math.MaxInt64.
var ErrExhausted = errors.New("key sequence exhausted")

// Sequence is a get-and-increment counter. It is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
	done atomic.Bool
}

// New returns a Sequence whose first key is start.
func New(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)

	return s
}

// NextValue returns the current counter value and advances it by one.
// The value math.MaxInt64 is handed out exactly once; after that every
// call fails with ErrExhausted instead of wrapping negative.
func (s *Sequence) NextValue() (int64, error) {
	for {
		if s.done.Load() {
			return 0, ErrExhausted
		}

		cur := s.next.Load()
		if cur == math.MaxInt64 {
			if s.done.CompareAndSwap(false, true) {
				return cur, nil
			}

			return 0, ErrExhausted
		}

		if s.next.CompareAndSwap(cur, cur+1) {
			return cur, nil
		}
	}
}

// Next is NextValue rendered as a decimal key.
func (s *Sequence) Next() (string, error) {
	v, err := s.NextValue()
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(v, 10), nil
}

// Remaining reports how many keys can still be drawn, saturating at math.MaxInt64.
// From any start <= 0 the true count exceeds int64, so math.MaxInt64 is reported.
func (s *Sequence) Remaining() int64 {
	if s.done.Load() {
		return 0
	}

	cur := s.next.Load()
	if cur <= 0 {
		return math.MaxInt64
	}

	return math.MaxInt64 - cur + 1
}
