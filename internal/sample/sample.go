// Package sample emits fresh output sequences for self-testing: either
// from a seed (discarding a pseudo-random depth first, to exercise the
// search engine's offset handling) or by continuing a generator that
// state inference has already primed.
package sample

import (
	"math/rand"

	"github.com/cranbrook-labs/seedrecover/internal/prng"
)

// DepthRange bounds the pseudo-random starting depth FromSeed discards
// before it starts emitting observable output.
type DepthRange struct {
	Min, Max int
}

// DefaultDepthRange matches the modest depth spec.md expects observation
// windows to live within.
var DefaultDepthRange = DepthRange{Min: 0, Max: 10000}

// FromSeed seeds a fresh generator for algorithm, discards a pseudo-random
// number of outputs drawn from depthRange via r, and returns the next n
// outputs. Passing a fixed-seed r makes the discard depth -- and so the
// whole emitted sequence -- reproducible across runs and platforms.
func FromSeed(algorithm string, seed uint32, n int, depthRange DepthRange, r *rand.Rand) ([]uint32, error) {
	gen, err := prng.Make(algorithm)
	if err != nil {
		return nil, err
	}
	gen.Seed(seed)

	discard := depthRange.Min
	if span := depthRange.Max - depthRange.Min; span > 0 {
		discard += r.Intn(span)
	}
	for i := 0; i < discard; i++ {
		gen.Next()
	}

	out := make([]uint32, n)
	for i := range out {
		out[i] = gen.Next()
	}
	return out, nil
}

// FromState emits the next n outputs from a generator already primed by
// state inference.
func FromState(gen prng.Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = gen.Next()
	}
	return out
}
