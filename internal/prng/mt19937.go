package prng

// MT19937 implements the standard 32-bit Mersenne Twister. It is the
// default algorithm used by, among others, Python, Ruby and the reference
// "mt19937ar.c" distributed by Matsumoto and Nishimura.
//
// State is an array of 624 32-bit words; outputs are produced 624 at a
// time by the twist step, then individually tempered as they're consumed.
type MT19937 struct {
	mt  [mt19937N]uint32
	mti int
}

const (
	mt19937N         = 624
	mt19937M         = 397
	mt19937MatrixA   = 0x9908b0df
	mt19937UpperMask = 0x80000000
	mt19937LowerMask = 0x7fffffff
)

var mt19937Descriptor = Descriptor{
	Name:               "mt19937",
	Label:              "Mersenne Twister (MT19937)",
	SeedBits:           32,
	StateWords:         mt19937N,
	MaxOutput:          0xffffffff,
	InferenceSupported: true,
}

// NewMT19937 returns an unseeded MT19937. Calling Next() before Seed or
// SetState behaves as if Seed(5489) had been called, matching the
// reference implementation's documented default.
func NewMT19937() *MT19937 {
	return &MT19937{mti: mt19937N + 1}
}

func (g *MT19937) Descriptor() Descriptor { return mt19937Descriptor }

func (g *MT19937) MaxOutput() uint32 { return mt19937Descriptor.MaxOutput }

// Seed sets up the state array via the published 1812433253 recurrence.
func (g *MT19937) Seed(seed uint32) {
	g.mt[0] = seed
	for g.mti = 1; g.mti < mt19937N; g.mti++ {
		g.mt[g.mti] = 1812433253*(g.mt[g.mti-1]^(g.mt[g.mti-1]>>30)) + uint32(g.mti)
	}
	g.mti = mt19937N
}

// SetState installs a raw (untempered) state array, as recovered by state
// inference. The generator will twist on the very next call to Next,
// producing the continuation that follows the 624 words just installed.
func (g *MT19937) SetState(state []uint32) error {
	if len(state) != mt19937N {
		return stateLengthError("mt19937", mt19937N, len(state))
	}
	copy(g.mt[:], state)
	g.mti = mt19937N
	return nil
}

// Next advances the generator and returns the next tempered output.
func (g *MT19937) Next() uint32 {
	if g.mti >= mt19937N {
		g.twist()
	}
	y := g.mt[g.mti]
	g.mti++
	return temperMT(y)
}

func (g *MT19937) twist() {
	if g.mti == mt19937N+1 {
		// Seed was never called; use the documented default seed.
		g.Seed(5489)
	}

	mag01 := [2]uint32{0, mt19937MatrixA}

	var kk int
	for ; kk < mt19937N-mt19937M; kk++ {
		y := (g.mt[kk] & mt19937UpperMask) | (g.mt[kk+1] & mt19937LowerMask)
		g.mt[kk] = g.mt[kk+mt19937M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mt19937N-1; kk++ {
		y := (g.mt[kk] & mt19937UpperMask) | (g.mt[kk+1] & mt19937LowerMask)
		g.mt[kk] = g.mt[kk+(mt19937M-mt19937N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (g.mt[mt19937N-1] & mt19937UpperMask) | (g.mt[0] & mt19937LowerMask)
	g.mt[mt19937N-1] = g.mt[mt19937M-1] ^ (y >> 1) ^ mag01[y&1]

	g.mti = 0
}

// temperMT applies the standard MT19937 tempering transform to a raw
// state word.
func temperMT(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// UntemperMT inverts temperMT, recovering the raw state word that
// produced a given tempered output. Used by state inference.
func UntemperMT(y uint32) uint32 {
	y = invertRightShiftXor(y, 18)
	y = invertLeftShiftXorMask(y, 15, 0xefc60000)
	y = invertLeftShiftXorMask(y, 7, 0x9d2c5680)
	y = invertRightShiftXor(y, 11)
	return y
}

// invertRightShiftXor inverts y = w ^ (w >> shift), recovering w.
func invertRightShiftXor(y uint32, shift uint) uint32 {
	w := y
	for i := uint(0); i < 32; i += shift {
		w = y ^ (w >> shift)
	}
	return w
}

// invertLeftShiftXorMask inverts y = w ^ ((w << shift) & mask), recovering w.
func invertLeftShiftXorMask(y uint32, shift uint, mask uint32) uint32 {
	w := y
	for i := uint(0); i < 32; i += shift {
		w = y ^ ((w << shift) & mask)
	}
	return w
}
