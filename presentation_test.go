package main

import (
	"strings"
	"testing"

	"github.com/Readm/sortviz/engine"
	"github.com/Readm/sortviz/visual"
)

func TestGradientColorEndpoints(t *testing.T) {
	cases := []struct {
		value int
		want  visual.Color
	}{
		{0, visual.Color{R: 30, G: 30, B: 150}},
		{100, visual.Color{R: 130, G: 230, B: 255}},
		{104, visual.Color{R: 130, G: 230, B: 255}}, // clamped above the gradient ceiling
		{50, visual.Color{R: 80, G: 130, B: 202}},
	}
	for _, tc := range cases {
		if got := gradientColor(tc.value); got != tc.want {
			t.Errorf("gradientColor(%d) = %+v, want %+v", tc.value, got, tc.want)
		}
	}
}

func TestBarColorRolePrecedence(t *testing.T) {
	view := engine.View{
		Primary:   []int{3},
		Secondary: []int{3, 4},
		Recent:    -1,
		Settled:   func(k int) bool { return k == 0 },
	}

	if got := barColor(3, 50, view, false, false, -1); got != colorSecondary {
		t.Errorf("secondary should override primary, got %+v", got)
	}
	if got := barColor(4, 50, view, false, false, -1); got != colorSecondary {
		t.Errorf("secondary index not highlighted, got %+v", got)
	}
	if got := barColor(0, 50, view, false, false, -1); got != colorSettled {
		t.Errorf("settled index not whitened, got %+v", got)
	}
	if got := barColor(1, 50, view, false, false, -1); got != gradientColor(50) {
		t.Errorf("plain index lost its gradient color, got %+v", got)
	}
}

func TestBarColorRecentOverridesHighlights(t *testing.T) {
	view := engine.View{Primary: []int{2}, Recent: 2}
	if got := barColor(2, 10, view, false, false, -1); got != colorSettled {
		t.Errorf("recent write should render white, got %+v", got)
	}
}

func TestBarColorSortedIgnoresHighlights(t *testing.T) {
	view := engine.View{Primary: []int{1}, Recent: -1}
	if got := barColor(1, 10, view, true, false, -1); got != colorSettled {
		t.Errorf("sorted array should be uniformly white, got %+v", got)
	}
}

func TestBarColorShuffleCursor(t *testing.T) {
	var view engine.View
	view.Recent = -1
	if got := barColor(5, 10, view, false, true, 5); got != colorPrimary {
		t.Errorf("shuffle cursor should be red, got %+v", got)
	}
	if got := barColor(4, 10, view, false, true, 5); got != gradientColor(10) {
		t.Errorf("non-cursor bar should keep its gradient during shuffle, got %+v", got)
	}
}

func TestStatusLinesShuffling(t *testing.T) {
	lines := statusLines(InfoFor(engine.Bubble), &RunStats{}, 3, true)
	if len(lines) != 1 || lines[0] != "STATUS: Shuffling..." {
		t.Fatalf("unexpected shuffle status block: %q", lines)
	}
}

func TestStatusLinesFormat(t *testing.T) {
	stats := &RunStats{Comparisons: 42, Swaps: 7}
	lines := statusLines(InfoFor(engine.Quick), stats, 5, false)

	want := []string{
		"ALGORITHM:  Quick Sort",
		"COMPLEXITY: O(N log N) - Fast",
		"HOW IT WORKS: Divides list around a pivot point.",
		"",
		"Comparisons:  42",
		"Swaps:        7",
	}
	if len(lines) != 8 {
		t.Fatalf("status block has %d lines, want 8", len(lines))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[6], "Real CPU Time:") || !strings.HasSuffix(lines[6], "ms") {
		t.Errorf("unexpected CPU time line: %q", lines[6])
	}
	if lines[7] != "Delay Added:  5ms" {
		t.Errorf("unexpected delay line: %q", lines[7])
	}
}

func TestInfoForCoversEveryAlgorithm(t *testing.T) {
	for a := engine.Algorithm(0); int(a) < engine.Count; a++ {
		info := InfoFor(a)
		if info.Name == "" || info.Complexity == "" || info.Mechanism == "" {
			t.Errorf("%v: incomplete info %+v", a, info)
		}
	}
}
