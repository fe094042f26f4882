// Package controller is the facade described in spec.md §4.7: it owns
// configuration, the accumulated observation sequence, and dispatches
// either to state inference or to the parallel brute-force search engine,
// exposing live progress and cancellation handles while a search runs.
package controller

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cranbrook-labs/seedrecover/internal/infer"
	"github.com/cranbrook-labs/seedrecover/internal/prng"
	"github.com/cranbrook-labs/seedrecover/internal/search"
)

// Config holds the per-run configuration slots from spec.md §4.7. Like
// the teacher's own Config, these are not meant to be mutated
// concurrently with a run in progress: set them beforehand, then read
// them after.
type Config struct {
	Algorithm     string
	Depth         int
	Workers       int
	MinConfidence float64
	Lower         uint64
	Upper         uint64
}

// fullSeedSpace is the exclusive upper bound covering every 32-bit seed,
// the implicit default range absent the -u CLI shortcut.
const fullSeedSpace = 1 << 32

// DefaultConfig returns the documented defaults: first registered
// algorithm, depth 1000, platform-suggested parallelism, minimum
// confidence 100%, and the full 32-bit seed range.
func DefaultConfig() Config {
	return Config{
		Algorithm:     prng.Names()[0],
		Depth:         1000,
		Workers:       runtime.GOMAXPROCS(0),
		MinConfidence: 100.0,
		Lower:         0,
		Upper:         fullSeedSpace,
	}
}

// Controller is a single run's state machine: idle -> loading
// (AddObservation) -> (inferring | searching) -> reporting -> idle.
type Controller struct {
	config       Config
	observations search.Observations
	engine       *search.Engine
}

// New returns a Controller with DefaultConfig and no observations loaded.
func New() *Controller {
	return &Controller{config: DefaultConfig()}
}

// SetAlgorithm selects a registered PRNG algorithm by name.
func (c *Controller) SetAlgorithm(name string) error {
	if !prng.Supports(name) {
		return fmt.Errorf("controller: unknown algorithm %q", name)
	}
	c.config.Algorithm = name
	return nil
}

func (c *Controller) Algorithm() string { return c.config.Algorithm }

// SetDepth sets the scorer's replay depth; must be at least 1 (and, in
// practice, at least the eventual observation count).
func (c *Controller) SetDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("controller: depth must be >= 1, got %d", depth)
	}
	c.config.Depth = depth
	return nil
}

func (c *Controller) Depth() int { return c.config.Depth }

// SetWorkers sets the brute-force worker count; must be at least 1.
func (c *Controller) SetWorkers(workers int) error {
	if workers < 1 {
		return fmt.Errorf("controller: workers must be >= 1, got %d", workers)
	}
	c.config.Workers = workers
	return nil
}

func (c *Controller) Workers() int { return c.config.Workers }

// SetMinConfidence sets the minimum confidence percentage a result must
// meet to be reported; must be in (0, 100].
func (c *Controller) SetMinConfidence(pct float64) error {
	if pct <= 0 || pct > 100 {
		return fmt.Errorf("controller: confidence must be in (0, 100], got %v", pct)
	}
	c.config.MinConfidence = pct
	return nil
}

func (c *Controller) MinConfidence() float64 { return c.config.MinConfidence }

// SetRange sets the brute-force seed range to [lower, upper).
func (c *Controller) SetRange(lower, upper uint64) {
	c.config.Lower = lower
	c.config.Upper = upper
}

// SetRangeAroundNow implements the -u CLI shortcut from spec.md §6:
// [now-1yr, now+1yr] in seconds-since-epoch, clamped at zero.
func (c *Controller) SetRangeAroundNow(now time.Time) {
	const yearSecs = 365 * 24 * 60 * 60

	epoch := now.Unix()
	lower := epoch - yearSecs
	if lower < 0 {
		lower = 0
	}
	upper := epoch + yearSecs
	if upper < 0 {
		upper = 0
	}

	c.config.Lower = uint64(lower)
	c.config.Upper = uint64(upper)
}

// Range returns the configured brute-force seed range.
func (c *Controller) Range() (lower, upper uint64) {
	return c.config.Lower, c.config.Upper
}

// AddObservation appends one observed output to the sequence.
func (c *Controller) AddObservation(v uint32) {
	c.observations = append(c.observations, v)
}

// Observations returns a copy of the currently loaded observation sequence.
func (c *Controller) Observations() search.Observations {
	return append(search.Observations(nil), c.observations...)
}

// Reset clears loaded observations and any prior run, returning the
// controller to its idle state with its configuration untouched.
func (c *Controller) Reset() {
	c.observations = nil
	c.engine = nil
}

// BruteForce dispatches a parallel seed search over the configured range
// against the loaded observations. It blocks until the search completes
// or is cancelled via Cancel; run it from its own goroutine to poll
// Status/Completed concurrently.
func (c *Controller) BruteForce() (search.Results, error) {
	if len(c.observations) == 0 {
		return nil, fmt.Errorf("controller: no observations loaded")
	}
	if c.config.Depth < len(c.observations) {
		return nil, fmt.Errorf("controller: depth %d is smaller than %d loaded observations", c.config.Depth, len(c.observations))
	}

	job := search.Job{
		Algorithm:     c.config.Algorithm,
		Observed:      c.observations,
		Lower:         c.config.Lower,
		Upper:         c.config.Upper,
		Depth:         c.config.Depth,
		Workers:       c.config.Workers,
		MinConfidence: c.config.MinConfidence,
	}

	c.engine = search.NewEngine(job)
	return c.engine.Run(), nil
}

// InferState attempts to reconstruct the generator's internal state
// directly from the loaded observations, without brute force. It reports
// false if the algorithm lacks an inverter, there are too few
// observations, or verification against any surplus observations fails.
func (c *Controller) InferState() (prng.Generator, bool) {
	return infer.State(c.config.Algorithm, c.observations)
}

// Started reports whether a dispatched BruteForce run has begun.
func (c *Controller) Started() bool {
	return c.engine != nil && c.engine.Started()
}

// Completed reports whether the dispatched BruteForce run has finished,
// naturally or via cancellation.
func (c *Controller) Completed() bool {
	return c.engine != nil && c.engine.Completed()
}

// Status returns the aggregate number of candidates evaluated so far.
func (c *Controller) Status() uint64 {
	if c.engine == nil {
		return 0
	}
	return c.engine.Status()
}

// SearchSpace returns the size of the currently configured brute-force range.
func (c *Controller) SearchSpace() uint64 {
	return c.config.Upper - c.config.Lower
}

// Cancel requests that an in-progress BruteForce run stop early. Safe to
// call concurrently with BruteForce. A no-op if no run has been dispatched.
func (c *Controller) Cancel() {
	if c.engine != nil {
		c.engine.Cancel()
	}
}
