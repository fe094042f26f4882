// Package prng reproduces the observable output sequences of a handful of
// legacy, non-cryptographic PRNG algorithms, bit for bit, starting from
// either a seed or a raw internal state.
package prng

import "fmt"

// Descriptor describes a supported algorithm: enough for a caller to size
// buffers and decide whether state inference is worth attempting, without
// constructing a generator first.
type Descriptor struct {
	Name                string
	Label               string
	SeedBits            int
	StateWords          int
	MaxOutput           uint32
	InferenceSupported  bool
}

// Generator is the uniform contract over every supported algorithm. Each
// implementation owns its state representation; callers never reach into
// it directly.
type Generator interface {
	// Seed installs an initial state derived from seed per the
	// algorithm's defined seeding procedure.
	Seed(seed uint32)

	// SetState installs a raw state vector. Its length must equal the
	// descriptor's StateWords, or an error is returned.
	SetState(state []uint32) error

	// Next advances the state and returns the next output.
	Next() uint32

	// MaxOutput is the algorithm's upper output bound (inclusive).
	MaxOutput() uint32

	// Descriptor reports static facts about this algorithm.
	Descriptor() Descriptor
}

// entry binds a descriptor to a constructor, mirroring the teacher's
// generatorType -> constructor switch but as data rather than a literal
// switch statement, so Names() can report stable order.
type entry struct {
	descriptor Descriptor
	build      func() Generator
}

var registry = []entry{
	{mt19937Descriptor, func() Generator { return NewMT19937() }},
	{glibcLCGDescriptor, func() Generator { return NewGlibcLCG() }},
	{msvcLCGDescriptor, func() Generator { return NewMSVCLCG() }},
	{phpMTRandDescriptor, func() Generator { return NewPHPMTRand() }},
}

// Names returns the registered algorithm names in stable order; the first
// entry is the default algorithm.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.descriptor.Name
	}
	return names
}

// Supports reports whether name is a registered algorithm.
func Supports(name string) bool {
	for _, e := range registry {
		if e.descriptor.Name == name {
			return true
		}
	}
	return false
}

// Descriptors returns the descriptor for every registered algorithm, in
// registry order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(registry))
	for i, e := range registry {
		out[i] = e.descriptor
	}
	return out
}

// DescriptorFor looks up a single algorithm's descriptor.
func DescriptorFor(name string) (Descriptor, error) {
	for _, e := range registry {
		if e.descriptor.Name == name {
			return e.descriptor, nil
		}
	}
	return Descriptor{}, fmt.Errorf("prng: unknown algorithm %q", name)
}

// Make constructs a fresh, unseeded generator instance for name.
func Make(name string) (Generator, error) {
	for _, e := range registry {
		if e.descriptor.Name == name {
			return e.build(), nil
		}
	}
	return nil, fmt.Errorf("prng: unknown algorithm %q", name)
}
