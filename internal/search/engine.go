// Package search implements the parallel brute-force seed search: it
// partitions a seed range across worker goroutines, scores each candidate
// by simulated replay, and aggregates results above a confidence
// threshold while reporting live progress.
package search

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cranbrook-labs/seedrecover/internal/prng"
)

// cancelCheckInterval is how many candidates a worker evaluates between
// checks of the shared cancellation flag, per the coarse-granularity
// cooperative cancellation the design calls for.
const cancelCheckInterval = 4096

// Job bundles everything a run needs and is immutable for its duration.
type Job struct {
	Algorithm     string
	Observed      Observations
	Lower         uint64 // inclusive
	Upper         uint64 // exclusive, so the full 32-bit space is [0, 1<<32)
	Depth         int
	Workers       int
	MinConfidence float64
}

// WorkerStatus is a single worker's monotonically increasing count of
// candidates evaluated, safe to read concurrently with the worker that
// owns it.
type WorkerStatus struct {
	evaluated atomic.Uint64
}

// Evaluated returns the number of candidates this worker has scored so far.
func (s *WorkerStatus) Evaluated() uint64 { return s.evaluated.Load() }

// Engine drives a single brute-force run: it owns the worker pool, the
// shared run-flag atomics, and the per-worker status vector.
type Engine struct {
	job      Job
	statuses []*WorkerStatus

	started   atomic.Bool
	completed atomic.Bool
	cancelled atomic.Bool
}

// NewEngine prepares an Engine for job. Workers below 1 is treated as 1.
func NewEngine(job Job) *Engine {
	workers := job.Workers
	if workers < 1 {
		workers = 1
	}

	e := &Engine{job: job, statuses: make([]*WorkerStatus, workers)}
	for i := range e.statuses {
		e.statuses[i] = &WorkerStatus{}
	}
	return e
}

// Started reports whether any worker has begun evaluating candidates.
func (e *Engine) Started() bool { return e.started.Load() }

// Completed reports whether the run has finished (naturally or via cancellation).
func (e *Engine) Completed() bool { return e.completed.Load() }

// Cancel requests that every worker stop at its next cancellation check.
// Safe to call concurrently with Run.
func (e *Engine) Cancel() { e.cancelled.Store(true) }

// Statuses exposes the per-worker status vector, for progress reporters
// that want a finer-grained view than the aggregate Status.
func (e *Engine) Statuses() []*WorkerStatus { return e.statuses }

// Status returns the total number of candidates evaluated across all
// workers so far.
func (e *Engine) Status() uint64 {
	var total uint64
	for _, s := range e.statuses {
		total += s.Evaluated()
	}
	return total
}

// Range is the size of the seed space this engine was configured to cover.
func (e *Engine) Range() uint64 {
	return e.job.Upper - e.job.Lower
}

// Run partitions [Lower, Upper) into near-equal contiguous sub-ranges, one
// per worker, scores every candidate seed in its own goroutine, then
// merges, deduplicates and deterministically sorts the results once every
// worker has joined.
func (e *Engine) Run() Results {
	e.started.Store(true)
	defer e.completed.Store(true)

	workers := len(e.statuses)
	lower, upper := e.job.Lower, e.job.Upper
	if upper < lower {
		upper = lower
	}
	total := upper - lower

	chunk := total / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}

	perWorker := make([][]Result, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := lower + uint64(w)*chunk
		hi := lo + chunk
		if w == workers-1 || hi > upper {
			hi = upper
		}
		if lo >= upper {
			lo, hi = upper, upper
		}

		wg.Add(1)
		go func(idx int, lo, hi uint64) {
			defer wg.Done()
			perWorker[idx] = e.evaluateRange(idx, lo, hi)
		}(w, lo, hi)
	}

	wg.Wait()

	return mergeResults(perWorker)
}

func mergeResults(perWorker [][]Result) Results {
	seen := make(map[uint32]bool)
	var merged Results

	for _, rs := range perWorker {
		for _, r := range rs {
			if seen[r.Seed] {
				continue
			}
			seen[r.Seed] = true
			merged = append(merged, r)
		}
	}

	sort.Sort(merged)
	return merged
}

// evaluateRange is a single worker's loop: it owns one generator instance
// for the lifetime of the range and re-seeds it per candidate, avoiding
// any heap churn in the inner loop.
func (e *Engine) evaluateRange(workerIdx int, lo, hi uint64) []Result {
	gen, err := prng.Make(e.job.Algorithm)
	if err != nil {
		return nil
	}

	status := e.statuses[workerIdx]
	var results []Result
	var sinceCheck uint64

	for s := lo; s < hi; s++ {
		gen.Seed(uint32(s))
		matchLen, _ := Score(gen, e.job.Observed, e.job.Depth)
		confidence := Confidence(matchLen, len(e.job.Observed))

		if confidence >= e.job.MinConfidence {
			results = append(results, Result{Seed: uint32(s), Confidence: confidence})
		}

		status.evaluated.Add(1)
		sinceCheck++
		if sinceCheck >= cancelCheckInterval {
			sinceCheck = 0
			if e.cancelled.Load() {
				break
			}
		}
	}

	return results
}
