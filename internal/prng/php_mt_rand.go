package prng

// PHPMTRand reproduces PHP's pre-7.1 mt_rand(): the same MT19937 engine
// and seeding recurrence, but an output transform that discards the low
// bit of each tempered word, yielding a 31-bit value in [0, 0x7fffffff].
type PHPMTRand struct {
	inner MT19937
}

var phpMTRandDescriptor = Descriptor{
	Name:               "php-mt_rand",
	Label:              "PHP mt_rand (pre-7.1)",
	SeedBits:           32,
	StateWords:         mt19937N,
	MaxOutput:          0x7fffffff,
	InferenceSupported: false,
}

func NewPHPMTRand() *PHPMTRand {
	return &PHPMTRand{inner: *NewMT19937()}
}

func (g *PHPMTRand) Descriptor() Descriptor { return phpMTRandDescriptor }

func (g *PHPMTRand) MaxOutput() uint32 { return phpMTRandDescriptor.MaxOutput }

func (g *PHPMTRand) Seed(seed uint32) { g.inner.Seed(seed) }

func (g *PHPMTRand) SetState(state []uint32) error { return g.inner.SetState(state) }

// Next returns the next output with PHP's one-bit-narrower masking
// applied on top of the standard MT19937 tempering.
func (g *PHPMTRand) Next() uint32 {
	return g.inner.Next() >> 1
}

// UntemperPHPCandidates returns both pre-temper words consistent with a
// single observed PHP mt_rand output: the low bit discarded by the `>> 1`
// output transform can be either 0 or 1, so a lone observation cannot
// disambiguate it. Resolving the ambiguity across an entire state array
// requires verifying candidates against the generator's own continuation,
// which is why php-mt_rand declines direct state inference (see
// DESIGN.md) in favour of brute force over the 32-bit seed.
func UntemperPHPCandidates(y uint32) [2]uint32 {
	return [2]uint32{
		UntemperMT(y << 1),
		UntemperMT((y << 1) | 1),
	}
}
