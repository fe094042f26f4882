// Package infer recovers a PRNG's internal state directly from enough
// observed outputs, for the algorithms whose output transform has a known
// inverse, instead of brute-forcing the seed.
package infer

import "github.com/cranbrook-labs/seedrecover/internal/prng"

// State attempts state inference for algorithm against observations. It
// reports success only when the algorithm supports inference, enough
// observations were supplied, and the reconstructed state's continuation
// matches every observation beyond the state width — callers should fall
// back to brute force on failure.
func State(algorithm string, observations []uint32) (prng.Generator, bool) {
	switch algorithm {
	case "mt19937":
		return MT19937(observations)
	default:
		return nil, false
	}
}

// MT19937 reconstructs the raw MT19937 state array from the first 624
// observations (assumed to be consecutive outputs starting at the very
// beginning of a stream — the tempering transform is only invertible
// word-for-word under that assumption, since twisting mixes words
// together thereafter). Any remaining observations are used to verify the
// reconstruction by regenerating and comparing.
func MT19937(observations []uint32) (*prng.MT19937, bool) {
	descriptor, err := prng.DescriptorFor("mt19937")
	if err != nil || len(observations) < descriptor.StateWords {
		return nil, false
	}

	state := make([]uint32, descriptor.StateWords)
	for i := range state {
		state[i] = prng.UntemperMT(observations[i])
	}

	gen := prng.NewMT19937()
	if err := gen.SetState(state); err != nil {
		return nil, false
	}

	for _, want := range observations[descriptor.StateWords:] {
		if gen.Next() != want {
			return nil, false
		}
	}

	return gen, true
}
