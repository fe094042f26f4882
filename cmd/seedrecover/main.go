package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docopt/docopt-go"

	"github.com/cranbrook-labs/seedrecover/internal/controller"
	"github.com/cranbrook-labs/seedrecover/internal/logger"
	"github.com/cranbrook-labs/seedrecover/internal/prng"
	"github.com/cranbrook-labs/seedrecover/internal/report"
	"github.com/cranbrook-labs/seedrecover/internal/sample"
)

// defaultSampleCount is how many outputs -g emits. The CLI surface in
// spec.md §6 has no flag for this, so it's a fixed constant rather than
// configurable.
const defaultSampleCount = 20

// Arguments is the struct DocOpt binds our command line options into.
type Arguments struct {
	Input      string
	Algorithm  string
	Depth      string
	Threads    string
	Confidence string
	AroundNow  bool
	Generate   string
	Help       bool
}

// usage returns the DocOpt usage string. The algorithm names are spliced
// in from the registry so the help text never drifts from what's actually
// registered.
func usage() string {
	return fmt.Sprintf(`seedrecover: recover PRNG seeds and internal state from observed output.

Usage:
  seedrecover [-i PATH] [-r NAME] [-d N] [-t N] [-c PCT] [-u] [-g SEED]
  seedrecover -h | --help

Options:
  -h, --help                 Show this help.
  -i PATH, --input PATH      Load observations from PATH: newline-separated
                              decimal or 0x-prefixed hexadecimal 32-bit
                              integers, one per line.
  -r NAME, --algorithm NAME  Select the PRNG algorithm (%s).   [default: mt19937]
  -d N, --depth N            Set the scorer depth, N >= 1.    [default: 1000]
  -t N, --threads N          Set the worker count, N >= 1. Defaults to the
                              platform's suggested parallelism.
  -c PCT, --confidence PCT   Minimum confidence percentage to report, in
                              (0, 100].                        [default: 100]
  -u, --around-now           Narrow the brute-force range to [now-1yr, now+1yr],
                              seconds since the epoch. Without it, the full
                              32-bit seed space is searched.
  -g SEED, --generate SEED   Sample-generation mode: with no observations
                              loaded, emit outputs from SEED; with enough
                              observations to infer state, continue from the
                              inferred generator instead.
`, strings.Join(prng.Names(), ", "))
}

// dieOnError mirrors the teacher's helper: on error, print a message and
// exit non-zero.
func dieOnError(err error, format string, a ...interface{}) {
	if err != nil {
		fmt.Fprintf(os.Stderr, format, a...)
		fmt.Fprintf(os.Stderr, ": %v\n", err)
		os.Exit(-1)
	}
}

// parseObservation parses a single line of -i input: a decimal or
// 0x-prefixed hexadecimal 32-bit unsigned integer. Malformed lines are
// rejected rather than coerced to zero.
func parseObservation(line string) (uint32, error) {
	line = strings.TrimSpace(line)
	base := 10
	if strings.HasPrefix(line, "0x") || strings.HasPrefix(line, "0X") {
		line = line[2:]
		base = 16
	}
	v, err := strconv.ParseUint(line, base, 32)
	if err != nil {
		return 0, fmt.Errorf("bad observation %q: %w", line, err)
	}
	return uint32(v), nil
}

// loadObservations reads newline-separated observations from path into
// ctrl, skipping blank lines and rejecting any malformed one.
func loadObservations(path string, ctrl *controller.Controller) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parseObservation(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		ctrl.AddObservation(v)
	}
	return scanner.Err()
}

func main() {
	opts, err := docopt.ParseDoc(usage())
	dieOnError(err, "Error parsing arguments")

	var args Arguments
	err = opts.Bind(&args)
	dieOnError(err, "Failure binding arguments")

	ctrl := controller.New()

	if args.Algorithm != "" {
		dieOnError(ctrl.SetAlgorithm(args.Algorithm), "Unknown algorithm %q", args.Algorithm)
	}

	if args.Depth != "" {
		depth, err := strconv.Atoi(args.Depth)
		dieOnError(err, "Bad depth %q", args.Depth)
		dieOnError(ctrl.SetDepth(depth), "Bad depth %q", args.Depth)
	}

	if args.Threads != "" {
		threads, err := strconv.Atoi(args.Threads)
		dieOnError(err, "Bad thread count %q", args.Threads)
		dieOnError(ctrl.SetWorkers(threads), "Bad thread count %q", args.Threads)
	}

	if args.Confidence != "" {
		pct, err := strconv.ParseFloat(args.Confidence, 64)
		dieOnError(err, "Bad confidence %q", args.Confidence)
		dieOnError(ctrl.SetMinConfidence(pct), "Bad confidence %q", args.Confidence)
	}

	if args.AroundNow {
		ctrl.SetRangeAroundNow(time.Now())
	}

	if args.Input != "" {
		dieOnError(loadObservations(args.Input, ctrl), "Failure loading observations from %q", args.Input)
	}

	if args.Generate != "" {
		runGenerate(ctrl, &args)
		return
	}

	runBruteForce(ctrl)
}

// runGenerate implements the -g sample-generation self-test mode: it
// continues from an inferred generator state when enough observations were
// loaded to support inference, otherwise it generates fresh from SEED.
func runGenerate(ctrl *controller.Controller, args *Arguments) {
	seed64, err := strconv.ParseUint(args.Generate, 10, 32)
	dieOnError(err, "Bad seed %q", args.Generate)
	seed := uint32(seed64)

	if len(ctrl.Observations()) > 0 {
		if gen, ok := ctrl.InferState(); ok {
			for _, v := range sample.FromState(gen, defaultSampleCount) {
				fmt.Println(v)
			}
			return
		}
		logger.Warnf("could not infer state from loaded observations, falling back to from-seed\n")
	}

	// Deterministic across runs (S5): the depth-selection RNG is derived
	// from the seed itself rather than the clock.
	depthRNG := rand.New(rand.NewSource(int64(seed)))
	out, err := sample.FromSeed(ctrl.Algorithm(), seed, defaultSampleCount, sample.DefaultDepthRange, depthRNG)
	dieOnError(err, "Failure generating samples")
	for _, v := range out {
		fmt.Println(v)
	}
}

// runBruteForce dispatches the parallel search, reporting live progress to
// stderr and printing every accepted result to stdout.
func runBruteForce(ctrl *controller.Controller) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		results, err := ctrl.BruteForce()
		dieOnError(err, "Failure running brute-force search")
		for _, r := range results {
			fmt.Println(report.FormatResult(r))
		}
	}()

	progress := report.Progress{
		Total:     ctrl.SearchSpace(),
		Status:    ctrl.Status,
		Completed: ctrl.Completed,
	}
	progress.Run(os.Stderr)

	<-done
}
