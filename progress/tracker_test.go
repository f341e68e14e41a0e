package progress

import "testing"

func TestTrackerNeverRegresses(t *testing.T) {
	tr := NewTracker()
	samples := []float64{0.1, 0.4, 0.3, 0.7, 0.2, 0.7}
	max := 0.0
	for _, raw := range samples {
		got := tr.Update(raw, false)
		if raw > max {
			max = raw
		}
		if got != max {
			t.Fatalf("Update(%f) = %f, want high-water %f", raw, got, max)
		}
	}
}

func TestTrackerClampsToOneWhenSorted(t *testing.T) {
	tr := NewTracker()
	tr.Update(0.5, false)
	if got := tr.Update(0.2, true); got != 1 {
		t.Fatalf("sorted update = %f, want 1", got)
	}
	if tr.Fraction() != 1 {
		t.Fatalf("fraction after sorted = %f, want 1", tr.Fraction())
	}
}

func TestTrackerClampsRawRange(t *testing.T) {
	tr := NewTracker()
	if got := tr.Update(-0.5, false); got != 0 {
		t.Fatalf("negative raw produced %f", got)
	}
	if got := tr.Update(1.5, false); got != 1 {
		t.Fatalf("raw above one produced %f", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Update(0.9, false)
	tr.Reset()
	if tr.Fraction() != 0 {
		t.Fatalf("fraction after reset = %f, want 0", tr.Fraction())
	}
}
