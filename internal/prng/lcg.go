package prng

// lcg32 is the shared shape of the classic 32-bit linear congruential
// generators below: state = state*multiplier + increment (mod 2**32),
// output = the middle 15 bits of the new state. Both glibc's legacy
// rand() and the Microsoft C runtime's rand() follow this shape; only
// the multiplier and increment differ.
type lcg32 struct {
	state      uint32
	multiplier uint32
	increment  uint32
	descriptor Descriptor
}

func (g *lcg32) Descriptor() Descriptor { return g.descriptor }

func (g *lcg32) MaxOutput() uint32 { return g.descriptor.MaxOutput }

func (g *lcg32) Seed(seed uint32) {
	g.state = seed
}

func (g *lcg32) SetState(state []uint32) error {
	if len(state) != 1 {
		return stateLengthError(g.descriptor.Name, 1, len(state))
	}
	g.state = state[0]
	return nil
}

func (g *lcg32) Next() uint32 {
	g.state = g.state*g.multiplier + g.increment
	return (g.state >> 16) & 0x7fff
}

// GlibcLCG reproduces glibc's historical single-word rand() (the TYPE_0
// mode of random(), also used by glibc's own rand() on hosts that select
// it): next = next*1103515245 + 12345, output = bits 16..30 of next.
type GlibcLCG struct{ lcg32 }

var glibcLCGDescriptor = Descriptor{
	Name:               "glibc-lcg",
	Label:              "glibc-style LCG (TYPE_0 rand)",
	SeedBits:           32,
	StateWords:         1,
	MaxOutput:          0x7fff,
	InferenceSupported: false,
}

func NewGlibcLCG() *GlibcLCG {
	return &GlibcLCG{lcg32{multiplier: 1103515245, increment: 12345, descriptor: glibcLCGDescriptor}}
}

// MSVCLCG reproduces the Microsoft C runtime's rand(): next =
// next*214013 + 2531011, output = bits 16..30 of next.
type MSVCLCG struct{ lcg32 }

var msvcLCGDescriptor = Descriptor{
	Name:               "msvc-lcg",
	Label:              "Microsoft C runtime LCG (rand)",
	SeedBits:           32,
	StateWords:         1,
	MaxOutput:          0x7fff,
	InferenceSupported: false,
}

func NewMSVCLCG() *MSVCLCG {
	return &MSVCLCG{lcg32{multiplier: 214013, increment: 2531011, descriptor: msvcLCGDescriptor}}
}
