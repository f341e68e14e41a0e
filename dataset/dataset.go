package dataset

import (
	"math/rand"
	"time"
)

// Value range constants for generated bar heights.
const (
	MinValue   = 5
	ValueSpan  = 100
	MaxValue   = MinValue + ValueSpan - 1
	DefaultLen = 150
)

// Dataset holds the array of bar heights being sorted, together with the
// stepped reshuffle lifecycle. The length is fixed at construction and
// never changes afterwards.
type Dataset struct {
	values []int
	rng    *rand.Rand

	shuffling     bool
	shuffleCursor int
}

// New creates a dataset of n random values. A non-zero seed makes the
// dataset deterministic (used by tests); seed 0 falls back to wall clock.
func New(n int, seed int64) *Dataset {
	if n < 0 {
		n = 0
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := &Dataset{
		values: make([]int, n),
		rng:    rand.New(rand.NewSource(seed)),
	}
	d.Regenerate()
	return d
}

// Len returns the fixed element count.
func (d *Dataset) Len() int {
	return len(d.values)
}

// Values returns the backing slice. Callers must treat it as read-only;
// mutation goes through Swap and Set so the stepping automatons remain the
// only writers.
func (d *Dataset) Values() []int {
	return d.values
}

// At returns the value at index i.
func (d *Dataset) At(i int) int {
	return d.values[i]
}

// Set overwrites the value at index i.
func (d *Dataset) Set(i, v int) {
	d.values[i] = v
}

// Swap exchanges two elements.
func (d *Dataset) Swap(i, j int) {
	d.values[i], d.values[j] = d.values[j], d.values[i]
}

// Regenerate replaces every value with a fresh random height in
// [MinValue, MaxValue] and cancels any reshuffle in progress.
func (d *Dataset) Regenerate() {
	for i := range d.values {
		d.values[i] = MinValue + d.rng.Intn(ValueSpan)
	}
	d.shuffling = false
	d.shuffleCursor = 0
}

// BeginReshuffle starts a stepped reshuffle of the current values. The
// multiset of values is preserved; only the order changes.
func (d *Dataset) BeginReshuffle() {
	d.shuffleCursor = 0
	d.shuffling = len(d.values) > 0
}

// Shuffling reports whether a reshuffle is in progress.
func (d *Dataset) Shuffling() bool {
	return d.shuffling
}

// ShuffleCursor returns the index currently being exchanged, for
// highlighting.
func (d *Dataset) ShuffleCursor() int {
	return d.shuffleCursor
}

// ReshuffleStep performs one exchange of the reshuffle pass: the element
// at the cursor is swapped with a random partner and the cursor advances.
// It returns the index touched and whether the reshuffle has finished.
//
// The partner is drawn from the full index range on every step rather than
// the shrinking range of a textbook Fisher-Yates, so the resulting
// permutation is mildly biased. This matches the tool's historical visual
// behavior and is kept deliberately.
func (d *Dataset) ReshuffleStep() (touched int, done bool) {
	if !d.shuffling {
		return -1, true
	}
	if d.shuffleCursor >= len(d.values) {
		d.shuffling = false
		return -1, true
	}
	partner := d.rng.Intn(len(d.values))
	d.Swap(d.shuffleCursor, partner)
	touched = d.shuffleCursor
	d.shuffleCursor++
	if d.shuffleCursor >= len(d.values) {
		d.shuffling = false
		return touched, true
	}
	return touched, false
}
