package engine

import "github.com/Readm/sortviz/dataset"

// selectionSorter scans [i+1, n) for the minimum, then exchanges it into
// position i. The prefix [0, i) always holds the i smallest values in
// sorted order.
type selectionSorter struct {
	i, j   int
	minIdx int
	done   bool
	n      int
}

func newSelectionSorter(d *dataset.Dataset) *selectionSorter {
	s := &selectionSorter{j: 1, n: d.Len()}
	if s.n < 2 {
		s.done = true
	}
	return s
}

func (s *selectionSorter) Algorithm() Algorithm { return Selection }

func (s *selectionSorter) Done() bool { return s.done }

func (s *selectionSorter) Step(d *dataset.Dataset) Result {
	if s.done {
		return noTouch(true)
	}
	res := Result{
		Touched:  s.j,
		Value:    d.At(s.j),
		Compared: true,
	}
	if d.At(s.j) < d.At(s.minIdx) {
		s.minIdx = s.j
	}
	s.j++
	if s.j >= s.n {
		d.Swap(s.i, s.minIdx)
		res.Swapped = true
		s.i++
		s.j = s.i + 1
		s.minIdx = s.i
		if s.i >= s.n-1 {
			s.done = true
		}
	}
	res.Done = s.done
	return res
}

func (s *selectionSorter) View() View {
	v := View{Recent: -1}
	if !s.done {
		v.Primary = []int{s.j}
		v.Secondary = []int{s.minIdx}
	}
	i := s.i
	v.Settled = func(k int) bool { return k < i }
	return v
}

func (s *selectionSorter) RawProgress(d *dataset.Dataset) float64 {
	if s.done {
		return 1
	}
	return scanProgress(s.i, d.Len())
}
