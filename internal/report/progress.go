// Package report renders the human-readable progress line and result
// lines described in spec.md §6: a single line overwritten in place while
// a search runs, and "Found seed N with a confidence of P%" per accepted
// candidate.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cranbrook-labs/seedrecover/internal/search"
)

// renderPeriod is how often the rendered line actually refreshes its
// rate/ETA figures.
const renderPeriod = 2 * time.Second

// pollPeriod is how often the aggregate status is sampled. Sampling only
// reads atomic counters, so it can run far more often than the line is
// redrawn.
const pollPeriod = 100 * time.Millisecond

// Progress polls an aggregate candidate count and renders a single,
// repeatedly overwritten progress line until the run completes.
type Progress struct {
	Total     uint64
	Status    func() uint64
	Completed func() bool
}

// Run blocks the calling goroutine, polling at pollPeriod and redrawing
// at renderPeriod, until Completed reports true. Callers should run it in
// its own goroutine alongside the search it is reporting on.
func (p Progress) Run(w io.Writer) {
	start := time.Now()

	var avgRate float64
	lastCount := p.Status()
	lastSample := start
	nextRender := start.Add(renderPeriod)

	ticker := time.NewTicker(pollPeriod)
	defer ticker.Stop()

	for now := range ticker.C {
		count := p.Status()
		done := p.Completed()

		if elapsed := now.Sub(lastSample).Seconds(); elapsed > 0 {
			instant := float64(count-lastCount) / elapsed
			if avgRate == 0 {
				avgRate = instant
			} else {
				// Rolling average, same smoothing weight the teacher
				// uses for its bandwidth-limiting delay calculation.
				avgRate = (avgRate*7 + instant) / 8
			}
		}
		lastCount = count
		lastSample = now

		if now.After(nextRender) || done {
			p.render(w, count, avgRate, now.Sub(start))
			nextRender = now.Add(renderPeriod)
		}

		if done {
			fmt.Fprintln(w)
			return
		}
	}
}

func (p Progress) render(w io.Writer, count uint64, rate float64, elapsed time.Duration) {
	pct := 100.0
	if p.Total > 0 {
		pct = float64(count) / float64(p.Total) * 100
	}

	eta := "unknown"
	if rate > 0 && p.Total > count {
		remaining := time.Duration(float64(p.Total-count)/rate*float64(time.Second))
		eta = remaining.Truncate(time.Second).String()
	}

	fmt.Fprintf(w, "\r%5.1f%%  %s / %s seeds  %s/sec  eta %s  elapsed %s  ",
		pct,
		humanize.Comma(int64(count)),
		humanize.Comma(int64(p.Total)),
		humanize.Comma(int64(rate)),
		eta,
		elapsed.Truncate(time.Second),
	)
}

// FormatResult renders an accepted candidate exactly as spec.md §6
// specifies.
func FormatResult(r search.Result) string {
	return fmt.Sprintf("Found seed %d with a confidence of %s%%", r.Seed, formatConfidence(r.Confidence))
}

func formatConfidence(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
