package search

// Result is a single candidate seed that matched an observation sequence
// well enough to report: it is only ever produced for confidences at or
// above a run's configured minimum.
type Result struct {
	Seed       uint32
	Confidence float64
}

// Results is sortable by descending confidence, then ascending seed, so
// that runs over the same inputs always report in the same order
// regardless of worker count (spec invariant: deterministic ordering).
type Results []Result

func (r Results) Len() int { return len(r) }

func (r Results) Less(i, j int) bool {
	if r[i].Confidence != r[j].Confidence {
		return r[i].Confidence > r[j].Confidence
	}
	return r[i].Seed < r[j].Seed
}

func (r Results) Swap(i, j int) { r[i], r[j] = r[j], r[i] }
