// Package entropy provides the random sources that drive the routine.
// A non-zero seed gives a reproducible run; seed 0 draws from crypto/rand.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source produces uniform floats and bounded ints.
type Source struct {
	seed int64
	rng  *mrand.Rand // nil when backed by crypto/rand
}

// NewSource creates a source. Seed 0 means "not reproducible".
func NewSource(seed int64) *Source {
	if seed == 0 {
		return &Source{}
	}
	return &Source{
		seed: seed,
		rng:  mrand.New(mrand.NewSource(seed)),
	}
}

// Seed returns the seed the source was built with (0 for crypto-backed).
func (s *Source) Seed() int64 {
	return s.seed
}

// Seeded reports whether the source replays a fixed sequence.
func (s *Source) Seeded() bool {
	return s.rng != nil
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return cryptoRandFloat()
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("entropy: IntN called with non-positive n")
	}
	if s.rng != nil {
		return s.rng.Intn(n)
	}
	return int(cryptoRandUint64n(uint64(n)))
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := cryptoRandUint64() >> 11
	return float64(n) / float64(1<<53)
}

func cryptoRandUint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic("entropy: crypto/rand unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// cryptoRandUint64n returns a uniform value in [0, n) by rejecting the
// biased tail of the 64-bit range.
func cryptoRandUint64n(n uint64) uint64 {
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v := cryptoRandUint64()
		if v < limit {
			return v % n
		}
	}
}
