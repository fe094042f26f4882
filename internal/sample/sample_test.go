package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cranbrook-labs/seedrecover/internal/prng"
)

// S5: sample generation is identical across runs when the depth-selection
// RNG is seeded the same way.
func TestFromSeedDeterministicWithFixedDepthRNG(t *testing.T) {
	is := assert.New(t)

	a, err := FromSeed("mt19937", 42, 10, DefaultDepthRange, rand.New(rand.NewSource(1)))
	is.NoError(err)

	b, err := FromSeed("mt19937", 42, 10, DefaultDepthRange, rand.New(rand.NewSource(1)))
	is.NoError(err)

	is.Equal(a, b)
}

func TestFromSeedDiscardsWithinRange(t *testing.T) {
	is := assert.New(t)

	depthRange := DepthRange{Min: 5, Max: 6} // forces exactly 5 discards
	r := rand.New(rand.NewSource(2))

	got, err := FromSeed("mt19937", 42, 3, depthRange, r)
	is.NoError(err)

	reference, _ := prng.Make("mt19937")
	reference.Seed(42)
	for i := 0; i < 5; i++ {
		reference.Next()
	}
	want := []uint32{reference.Next(), reference.Next(), reference.Next()}

	is.Equal(want, got)
}

func TestFromSeedUnknownAlgorithm(t *testing.T) {
	is := assert.New(t)

	_, err := FromSeed("not-an-algorithm", 1, 5, DefaultDepthRange, rand.New(rand.NewSource(1)))
	is.Error(err)
}

func TestFromStateContinuesGenerator(t *testing.T) {
	is := assert.New(t)

	gen, _ := prng.Make("mt19937")
	gen.Seed(7)
	gen.Next() // advance a little, as if this were a freshly inferred generator

	reference, _ := prng.Make("mt19937")
	reference.Seed(7)
	reference.Next()

	want := []uint32{reference.Next(), reference.Next()}
	got := FromState(gen, 2)

	is.Equal(want, got)
}
