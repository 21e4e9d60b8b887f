// Package random provides seed generation and the randomness source used by
// the dealer.
//
// Deals are reproducible: the same seed and the same inputs always produce
// the same hands. Seeds come from crypto/rand when the caller does not pick
// one, and are reported so a deal can be replayed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness the dealer consumes. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSeeded returns a deterministic source for seed.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed returns seed unchanged when non-zero, otherwise a fresh seed
// from generate. A nil generate uses NewSeed.
func ResolveSeed(seed int64, generate func() (int64, error)) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	if generate == nil {
		generate = NewSeed
	}
	resolved, err := generate()
	if err != nil {
		return 0, err
	}
	return resolved, nil
}
