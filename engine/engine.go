// Package engine implements the five sorting algorithms as stepping
// automatons: each call to Step performs exactly one elementary unit of
// work (one comparison, or one comparison plus a conditional exchange) and
// leaves enough state behind to resume on the next tick. The running sort
// can therefore be paused after every operation, inspected for rendering
// and audio, and resumed without losing correctness.
package engine

import "github.com/Readm/sortviz/dataset"

// Algorithm selects one of the available sorting automatons.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Quick
	Merge
)

// Count is the number of selectable algorithms.
const Count = 5

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "Bubble Sort"
	case Selection:
		return "Selection Sort"
	case Insertion:
		return "Insertion Sort"
	case Quick:
		return "Quick Sort"
	case Merge:
		return "Merge Sort"
	default:
		return "Unknown"
	}
}

// Result reports what a single Step call did.
type Result struct {
	// Touched is the index the step touched, or -1 when the step was a
	// bookkeeping transition (range pop, run-size doubling, terminal no-op).
	Touched int
	// Value is the element value to feed the audio tone; 0 means silence.
	Value int
	// Compared is true when the step performed a comparison.
	Compared bool
	// Swapped is true when the step exchanged elements or wrote one back
	// from the merge scratch buffer.
	Swapped bool
	// Done becomes true on the step that completes the sort and stays true
	// on every no-op call afterwards.
	Done bool
}

// View exposes the automaton cursors a renderer needs: which bars are
// being compared, which bar is the pivot or current minimum, where the
// merge write head sits, and which region has reached its final position.
type View struct {
	// Primary holds the indices under active comparison (red).
	Primary []int
	// Secondary holds the pivot / running-minimum index (magenta), if any.
	Secondary []int
	// Recent is the merge write head (last written index), -1 when absent.
	Recent int
	// Settled reports per index whether the element is known to be in its
	// final position. Nil when the algorithm tracks no settled region.
	Settled func(i int) bool
}

// Stepper is the common contract of the per-algorithm automatons. A
// Stepper is bound to one dataset for one run; switching algorithm or
// reshuffling builds a fresh one.
type Stepper interface {
	// Algorithm identifies the variant.
	Algorithm() Algorithm
	// Step advances the sort by exactly one elementary operation.
	Step(d *dataset.Dataset) Result
	// Done reports whether the sequence is fully sorted.
	Done() bool
	// View returns the current highlight cursors.
	View() View
	// RawProgress returns the instantaneous (possibly non-monotonic)
	// completion measure in [0,1].
	RawProgress(d *dataset.Dataset) float64
}

// New builds the automaton for the requested algorithm, bound to d.
// Datasets of length 0 or 1 are already sorted, so the automaton starts in
// the terminal state and Step never touches the data.
func New(algo Algorithm, d *dataset.Dataset) Stepper {
	switch algo {
	case Selection:
		return newSelectionSorter(d)
	case Insertion:
		return newInsertionSorter(d)
	case Quick:
		return newQuickSorter(d)
	case Merge:
		return newMergeSorter(d)
	default:
		return newBubbleSorter(d)
	}
}

// noTouch is the Result of a bookkeeping step.
func noTouch(done bool) Result {
	return Result{Touched: -1, Done: done}
}

// scanProgress is the raw progress of the index-scanning algorithms.
func scanProgress(outer, n int) float64 {
	if n <= 0 {
		return 1
	}
	return float64(outer) / float64(n)
}
