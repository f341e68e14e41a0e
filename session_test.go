package main

import (
	"context"
	"sort"
	"testing"

	"github.com/Readm/sortviz/audio"
	"github.com/Readm/sortviz/engine"
	"github.com/Readm/sortviz/visual"
)

// scriptedVisualizer feeds a fixed command sequence to the session and
// records published frames.
type scriptedVisualizer struct {
	pending []visual.ControlCommand
	frames  []*visual.Frame
}

func (s *scriptedVisualizer) SetHeadless(bool) {}
func (s *scriptedVisualizer) IsHeadless() bool { return false }

func (s *scriptedVisualizer) PublishFrame(frame *visual.Frame) {
	s.frames = append(s.frames, frame)
}

func (s *scriptedVisualizer) NextCommand() (visual.ControlCommand, bool) {
	if len(s.pending) == 0 {
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
	cmd := s.pending[0]
	s.pending = s.pending[1:]
	return cmd, true
}

func (s *scriptedVisualizer) WaitCommand(ctx context.Context) (visual.ControlCommand, bool) {
	return s.NextCommand()
}

func testConfig(size int, algo string) *Config {
	cfg := DefaultConfig()
	cfg.DatasetSize = size
	cfg.Algorithm = algo
	cfg.Seed = 1
	cfg.VisualMode = "none"
	return cfg
}

func newTestSession(t *testing.T, size int, algo string) *Session {
	t.Helper()
	cfg := testConfig(size, algo)
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	return NewSession(cfg, visual.NewNullVisualizer(), &audio.Monitor{})
}

func TestDelayFloorsAtZero(t *testing.T) {
	s := newTestSession(t, 10, "bubble")
	for i := 0; i < 20; i++ {
		s.handleCommand(visual.ControlCommand{Type: visual.CommandSpeedUp})
	}
	if s.DelayMS() != 0 {
		t.Fatalf("delay went below zero: %d", s.DelayMS())
	}
	s.handleCommand(visual.ControlCommand{Type: visual.CommandSlowDown})
	s.handleCommand(visual.ControlCommand{Type: visual.CommandSlowDown})
	if s.DelayMS() != 2 {
		t.Fatalf("delay = %d after two increments, want 2", s.DelayMS())
	}
	s.handleCommand(visual.ControlCommand{Type: visual.CommandSpeedUp})
	if s.DelayMS() != 1 {
		t.Fatalf("delay = %d after decrement, want 1", s.DelayMS())
	}
}

func TestHeadlessRunSortsDataset(t *testing.T) {
	for _, algo := range []string{"bubble", "selection", "insertion", "quick", "merge"} {
		s := newTestSession(t, 40, algo)
		sum := s.RunHeadless()
		if !sort.IntsAreSorted(s.data.Values()) {
			t.Fatalf("%s: dataset not sorted after headless run", algo)
		}
		if sum.Stats.Comparisons == 0 {
			t.Fatalf("%s: no comparisons recorded", algo)
		}
		if s.tracker.Fraction() != 1 {
			t.Fatalf("%s: progress = %f, want 1", algo, s.tracker.Fraction())
		}
	}
}

func TestBubbleScenarioThroughSession(t *testing.T) {
	s := newTestSession(t, 5, "bubble")
	values := []int{40, 10, 30, 20, 50}
	for i, v := range values {
		s.data.Set(i, v)
	}

	sum := s.RunHeadless()
	want := []int{10, 20, 30, 40, 50}
	for i, v := range s.data.Values() {
		if v != want[i] {
			t.Fatalf("sorted output mismatch: %v", s.data.Values())
		}
	}
	if sum.Stats.Comparisons != 10 {
		t.Fatalf("comparisons = %d, want 10", sum.Stats.Comparisons)
	}
	if sum.Stats.Swaps != 4 {
		t.Fatalf("swaps = %d, want 4", sum.Stats.Swaps)
	}
}

func TestTinyDatasetsFinishWithZeroStats(t *testing.T) {
	for _, size := range []int{0, 1} {
		s := newTestSession(t, size, "merge")
		sum := s.RunHeadless()
		if sum.Stats.Comparisons != 0 || sum.Stats.Swaps != 0 {
			t.Fatalf("size %d: stats not zero: %+v", size, sum.Stats)
		}
	}
}

func TestSelectCommandResetsRun(t *testing.T) {
	s := newTestSession(t, 20, "bubble")
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.stats.Comparisons == 0 {
		t.Fatal("expected comparisons before the switch")
	}

	s.handleCommand(visual.ControlCommand{Type: visual.CommandSelect, Algorithm: 4})
	if s.algo != engine.Quick {
		t.Fatalf("algorithm = %v, want Quick", s.algo)
	}
	if s.stats.Comparisons != 0 || s.stats.Swaps != 0 {
		t.Fatalf("stats survived the switch: %+v", *s.stats)
	}
	if s.tracker.Fraction() != 0 {
		t.Fatalf("progress survived the switch: %f", s.tracker.Fraction())
	}
	if s.data.Len() != 20 {
		t.Fatalf("dataset length changed: %d", s.data.Len())
	}
}

func TestInvalidSelectIsIgnored(t *testing.T) {
	s := newTestSession(t, 10, "insertion")
	if !s.handleCommand(visual.ControlCommand{Type: visual.CommandSelect, Algorithm: 9}) {
		t.Fatal("invalid select should not terminate the session")
	}
	if s.algo != engine.Insertion {
		t.Fatalf("algorithm changed to %v on invalid select", s.algo)
	}
}

func TestReshuffleKeepsMultisetAndResetsStats(t *testing.T) {
	s := newTestSession(t, 30, "selection")
	for i := 0; i < 25; i++ {
		s.Tick()
	}
	before := make(map[int]int)
	for _, v := range s.data.Values() {
		before[v]++
	}

	s.handleCommand(visual.ControlCommand{Type: visual.CommandReshuffle})
	if !s.data.Shuffling() {
		t.Fatal("expected shuffle in progress")
	}
	for i := 0; i < s.data.Len()+1 && s.data.Shuffling(); i++ {
		s.Tick()
	}
	if s.data.Shuffling() {
		t.Fatal("shuffle did not finish")
	}

	after := make(map[int]int)
	for _, v := range s.data.Values() {
		after[v]++
	}
	for v, c := range before {
		if after[v] != c {
			t.Fatalf("value %d count changed %d -> %d", v, c, after[v])
		}
	}
	if s.stats.Comparisons != 0 || s.stats.Swaps != 0 {
		t.Fatalf("stats not reset after reshuffle: %+v", *s.stats)
	}
}

func TestProgressMonotonicAcrossTicks(t *testing.T) {
	s := newTestSession(t, 25, "quick")
	last := 0.0
	for !s.sorter.Done() {
		s.Tick()
		frame := s.buildFrame()
		if frame.Progress < last {
			t.Fatalf("progress regressed: %f -> %f", last, frame.Progress)
		}
		last = frame.Progress
	}
	if last != 1 {
		t.Fatalf("final progress = %f, want 1", last)
	}
}

func TestQuitCommandStopsRun(t *testing.T) {
	viz := &scriptedVisualizer{
		pending: []visual.ControlCommand{{Type: visual.CommandQuit}},
	}
	cfg := testConfig(10, "bubble")
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	s := NewSession(cfg, viz, &audio.Monitor{})
	s.Run() // returns immediately once the quit command drains
	if !s.stopped {
		t.Fatal("session did not stop on quit")
	}
}

func TestFrameDescribesSession(t *testing.T) {
	s := newTestSession(t, 12, "bubble")
	s.Tick()
	frame := s.buildFrame()

	if len(frame.Bars) != 12 {
		t.Fatalf("frame has %d bars, want 12", len(frame.Bars))
	}
	if frame.Lines[0] != "ALGORITHM:  Bubble Sort" {
		t.Fatalf("unexpected first line: %q", frame.Lines[0])
	}
	if frame.Shuffling {
		t.Fatal("frame reports shuffling during a sort")
	}
	if frame.ToneHz == 0 {
		t.Fatal("expected an audible tone after a step")
	}
	for _, bar := range frame.Bars {
		if bar.Value <= 0 {
			t.Fatalf("bar with non-positive value: %+v", bar)
		}
	}
}

func TestMonitorFollowsTouchedValue(t *testing.T) {
	s := newTestSession(t, 8, "insertion")
	s.Tick()
	if s.Monitor().Load() <= 0 {
		t.Fatalf("monitor = %d after a step, want the touched value", s.Monitor().Load())
	}
	s.RunHeadless()
	s.Tick() // terminal tick publishes silence
	if s.Monitor().Load() != 0 {
		t.Fatalf("monitor = %d after completion, want 0", s.Monitor().Load())
	}
}
