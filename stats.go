package main

import (
	"fmt"
	"time"

	"github.com/Readm/sortviz/engine"
)

// RunStats accumulates the work of one sorting run. Counters only ever
// grow within a run; Reset zeroes them when a new run starts.
type RunStats struct {
	Comparisons uint64
	Swaps       uint64
	// LogicTime is the summed wall-clock time of the pure step
	// computations, excluding every pacing sleep.
	LogicTime time.Duration
}

// Observe folds one step result into the counters.
func (s *RunStats) Observe(res engine.Result, elapsed time.Duration) {
	if s == nil {
		return
	}
	if res.Compared {
		s.Comparisons++
	}
	if res.Swapped {
		s.Swaps++
	}
	s.LogicTime += elapsed
}

// Reset zeroes the counters for a new run.
func (s *RunStats) Reset() {
	if s == nil {
		return
	}
	s.Comparisons = 0
	s.Swaps = 0
	s.LogicTime = 0
}

// LogicMillis returns the logic time in milliseconds for display.
func (s *RunStats) LogicMillis() float64 {
	if s == nil {
		return 0
	}
	return float64(s.LogicTime) / float64(time.Millisecond)
}

// RunSummary is the headless-mode end-of-run report.
type RunSummary struct {
	Algorithm   string
	DatasetSize int
	Steps       uint64
	Stats       RunStats
}

// PrintSummary writes the headless run report to stdout.
func PrintSummary(sum *RunSummary) {
	if sum == nil {
		fmt.Println("No summary available")
		return
	}
	fmt.Println("=== Run Summary ===")
	fmt.Printf("Algorithm: %s\n", sum.Algorithm)
	fmt.Printf("Dataset Size: %d\n", sum.DatasetSize)
	fmt.Printf("Steps: %d\n", sum.Steps)
	fmt.Printf("Comparisons: %d\n", sum.Stats.Comparisons)
	fmt.Printf("Swaps: %d\n", sum.Stats.Swaps)
	fmt.Printf("Logic Time: %.3fms\n", sum.Stats.LogicMillis())
}
