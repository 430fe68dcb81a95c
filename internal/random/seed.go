// Package random generates seeds for reproducible dice rolls.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return seedFrom(crand.Reader)
}

// ResolveSeed returns the requested seed when set, otherwise a fresh one.
// The second result reports whether the seed was generated.
func ResolveSeed(requested *int64) (int64, bool, error) {
	if requested != nil {
		return *requested, false, nil
	}
	seed, err := NewSeed()
	if err != nil {
		return 0, false, err
	}
	return seed, true, nil
}

func seedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
