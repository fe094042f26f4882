package search

import "github.com/cranbrook-labs/seedrecover/internal/prng"

// Observations is the ordered sequence of observed outputs a run is
// trying to explain. It is read-only once a run starts.
type Observations []uint32

// Score replays depth successive outputs from gen and finds the offset at
// which the longest contiguous run of observed reappears. At each
// candidate offset k, values[k:k+L] is compared elementwise against
// observed; the score for that offset is the length of its longest
// unbroken run of matching positions (not necessarily starting at index
// 0 — a single corrupted observation should not zero out an otherwise
// perfect alignment). Ties prefer the lowest offset. gen must already be
// primed (seeded or state-set) before calling Score; depth must be at
// least len(observed).
func Score(gen prng.Generator, observed []uint32, depth int) (matchLen int, offset int) {
	if depth < len(observed) {
		panic("search: depth must be >= len(observed)")
	}

	values := make([]uint32, depth)
	for i := range values {
		values[i] = gen.Next()
	}

	L := len(observed)
	for k := 0; k <= depth-L; k++ {
		run := 0
		best := 0
		for i := 0; i < L; i++ {
			if values[k+i] == observed[i] {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
		if best > matchLen {
			matchLen = best
			offset = k
		}
	}
	return matchLen, offset
}

// Confidence expresses a match length as a percentage of the observation
// length.
func Confidence(matchLen, observedLen int) float64 {
	if observedLen == 0 {
		return 0
	}
	return float64(matchLen) / float64(observedLen) * 100
}
