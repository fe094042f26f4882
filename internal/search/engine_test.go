package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cranbrook-labs/seedrecover/internal/prng"
)

func captureOutputs(t *testing.T, algorithm string, seed uint32, n int) []uint32 {
	t.Helper()
	gen, err := prng.Make(algorithm)
	assert.NoError(t, err)
	gen.Seed(seed)

	out := make([]uint32, n)
	for i := range out {
		out[i] = gen.Next()
	}
	return out
}

// S1: MT19937, seed 31337, 10 observations, range [0, 100000), depth 100.
func TestEngineFindsKnownMT19937Seed(t *testing.T) {
	is := assert.New(t)

	observed := captureOutputs(t, "mt19937", 31337, 10)

	job := Job{
		Algorithm:     "mt19937",
		Observed:      observed,
		Lower:         0,
		Upper:         100000,
		Depth:         100,
		Workers:       4,
		MinConfidence: 100,
	}

	results := NewEngine(job).Run()
	is.Len(results, 1)
	is.Equal(uint32(31337), results[0].Seed)
	is.InDelta(100.0, results[0].Confidence, 0.001)
}

// S3: glibc LCG, seed 1, range [0, 256), depth 20; identical result sets
// across worker counts.
func TestEngineWorkerCountInvariance(t *testing.T) {
	is := assert.New(t)

	observed := captureOutputs(t, "glibc-lcg", 1, 8)

	for _, workers := range []int{1, 2, 4, 8} {
		job := Job{
			Algorithm:     "glibc-lcg",
			Observed:      observed,
			Lower:         0,
			Upper:         256,
			Depth:         20,
			Workers:       workers,
			MinConfidence: 100,
		}

		results := NewEngine(job).Run()
		is.Len(results, 1, "workers=%d", workers)
		is.Equal(uint32(1), results[0].Seed, "workers=%d", workers)
		is.InDelta(100.0, results[0].Confidence, 0.001, "workers=%d", workers)
	}
}

// S4: one corrupted observation still surfaces the true seed at reduced confidence.
func TestEngineToleratesSingleCorruptedObservation(t *testing.T) {
	is := assert.New(t)

	observed := captureOutputs(t, "mt19937", 777, 10)
	corrupted := append([]uint32(nil), observed...)
	corrupted[0] = corrupted[0] + 1

	job := Job{
		Algorithm:     "mt19937",
		Observed:      corrupted,
		Lower:         0,
		Upper:         2000,
		Depth:         50,
		Workers:       2,
		MinConfidence: 50,
	}

	results := NewEngine(job).Run()
	is.NotEmpty(results)
	is.Equal(uint32(777), results[0].Seed)
	is.InDelta(90.0, results[0].Confidence, 0.001)
}

func TestResultsSortedByConfidenceThenSeed(t *testing.T) {
	is := assert.New(t)

	r := Results{
		{Seed: 5, Confidence: 80},
		{Seed: 1, Confidence: 100},
		{Seed: 2, Confidence: 100},
		{Seed: 3, Confidence: 90},
	}

	expected := Results{
		{Seed: 1, Confidence: 100},
		{Seed: 2, Confidence: 100},
		{Seed: 3, Confidence: 90},
		{Seed: 5, Confidence: 80},
	}

	sortResults(r)
	is.Equal(expected, r)
}

func sortResults(r Results) {
	// exercises the same sort.Interface the engine relies on
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r.Less(j, j-1); j-- {
			r.Swap(j, j-1)
		}
	}
}

// P5: when a run completes without cancellation, aggregated status equals
// the full range size.
func TestEngineStatusCompletesFullRange(t *testing.T) {
	is := assert.New(t)

	job := Job{
		Algorithm:     "glibc-lcg",
		Observed:      []uint32{0, 0, 0, 0},
		Lower:         0,
		Upper:         5000,
		Depth:         10,
		Workers:       5,
		MinConfidence: 100,
	}

	e := NewEngine(job)
	e.Run()

	is.True(e.Completed())
	is.Equal(e.Range(), e.Status())
}

// S6: cancelling a run over a large range stops it well short of
// completion and still leaves the engine in a consistent completed state.
func TestEngineCancellationStopsEarly(t *testing.T) {
	is := assert.New(t)

	job := Job{
		Algorithm:     "mt19937",
		Observed:      []uint32{1, 2, 3, 4},
		Lower:         0,
		Upper:         200000000,
		Depth:         20,
		Workers:       4,
		MinConfidence: 100,
	}

	e := NewEngine(job)

	done := make(chan Results, 1)
	go func() { done <- e.Run() }()

	time.Sleep(50 * time.Millisecond)
	e.Cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop after cancellation")
	}

	is.True(e.Completed())
	is.Less(e.Status(), e.Range())
}
