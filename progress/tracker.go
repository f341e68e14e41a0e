// Package progress derives a monotonic completion fraction from the raw,
// possibly oscillating, progress measure of a running sort.
package progress

// Tracker keeps the high-water mark of the raw progress so the displayed
// fraction never regresses within a run, and clamps to exactly 1 once the
// sort reports completion.
type Tracker struct {
	max float64
}

// NewTracker returns a tracker at zero progress.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update folds a raw progress sample into the tracker and returns the
// monotonic fraction in [0,1].
func (t *Tracker) Update(raw float64, sorted bool) float64 {
	if sorted {
		t.max = 1
		return t.max
	}
	if raw < 0 {
		raw = 0
	}
	if raw > 1 {
		raw = 1
	}
	if raw > t.max {
		t.max = raw
	}
	return t.max
}

// Fraction returns the current monotonic fraction without updating it.
func (t *Tracker) Fraction() float64 {
	return t.max
}

// Reset drops the fraction back to zero for a new run.
func (t *Tracker) Reset() {
	t.max = 0
}
