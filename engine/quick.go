package engine

import "github.com/Readm/sortviz/dataset"

// span is a pending (low, high) range awaiting partitioning.
type span struct {
	lo, hi int
}

// quickSorter is an iterative Lomuto quicksort: the recursion is an
// explicit stack of pending spans, and the partition scan is unrolled to
// one comparison per step. The pivot is always the last element of the
// range; the O(N^2) worst case on already-sorted input is a known
// characteristic of the scheme.
type quickSorter struct {
	stack        []span
	lo, hi, i, j int
	partitioning bool
	done         bool
}

func newQuickSorter(d *dataset.Dataset) *quickSorter {
	s := &quickSorter{}
	if d.Len() < 2 {
		s.done = true
		return s
	}
	s.stack = append(s.stack, span{0, d.Len() - 1})
	return s
}

func (s *quickSorter) Algorithm() Algorithm { return Quick }

func (s *quickSorter) Done() bool { return s.done }

func (s *quickSorter) Step(d *dataset.Dataset) Result {
	if s.done {
		return noTouch(true)
	}
	if !s.partitioning {
		if len(s.stack) == 0 {
			s.done = true
			return noTouch(true)
		}
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.lo, s.hi = top.lo, top.hi
		s.i = s.lo - 1
		s.j = s.lo
		s.partitioning = true
		return noTouch(false)
	}

	res := Result{Touched: s.j, Value: d.At(s.j)}
	if s.j < s.hi {
		res.Compared = true
		if d.At(s.j) < d.At(s.hi) {
			s.i++
			d.Swap(s.i, s.j)
			res.Swapped = true
		}
		s.j++
	} else {
		// Final pivot swap; push the non-degenerate sub-ranges, left on
		// top so it partitions first.
		d.Swap(s.i+1, s.hi)
		res.Swapped = true
		p := s.i + 1
		if p+1 < s.hi {
			s.stack = append(s.stack, span{p + 1, s.hi})
		}
		if s.lo < p-1 {
			s.stack = append(s.stack, span{s.lo, p - 1})
		}
		s.partitioning = false
	}
	return res
}

func (s *quickSorter) View() View {
	v := View{Recent: -1}
	if !s.done && s.partitioning {
		v.Primary = []int{s.j}
		v.Secondary = []int{s.hi}
	}
	return v
}

func (s *quickSorter) RawProgress(d *dataset.Dataset) float64 {
	if s.done {
		return 1
	}
	return AdjacentSortedFraction(d.Values())
}

// AdjacentSortedFraction returns the fraction of adjacent pairs already in
// non-decreasing order; sequences shorter than two elements count as fully
// ordered.
func AdjacentSortedFraction(values []int) float64 {
	if len(values) < 2 {
		return 1
	}
	ordered := 0
	for k := 0; k+1 < len(values); k++ {
		if values[k] <= values[k+1] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(values)-1)
}
