package engine

import "github.com/Readm/sortviz/dataset"

// bubbleSorter walks adjacent pairs, swapping inversions. After outer pass
// i, the last i elements are in final position, so the inner scan shrinks
// by one each pass.
type bubbleSorter struct {
	i, j int
	done bool
	n    int
}

func newBubbleSorter(d *dataset.Dataset) *bubbleSorter {
	s := &bubbleSorter{n: d.Len()}
	if s.n < 2 {
		s.done = true
	}
	return s
}

func (s *bubbleSorter) Algorithm() Algorithm { return Bubble }

func (s *bubbleSorter) Done() bool { return s.done }

func (s *bubbleSorter) Step(d *dataset.Dataset) Result {
	if s.done {
		return noTouch(true)
	}
	res := Result{
		Touched:  s.j + 1,
		Value:    d.At(s.j + 1),
		Compared: true,
	}
	if d.At(s.j) > d.At(s.j+1) {
		d.Swap(s.j, s.j+1)
		res.Swapped = true
	}
	s.j++
	if s.j >= s.n-1-s.i {
		s.j = 0
		s.i++
		if s.i >= s.n-1 {
			s.done = true
		}
	}
	res.Done = s.done
	return res
}

func (s *bubbleSorter) View() View {
	v := View{Recent: -1}
	if !s.done {
		v.Primary = []int{s.j, s.j + 1}
	}
	n, i := s.n, s.i
	v.Settled = func(k int) bool { return k >= n-i }
	return v
}

func (s *bubbleSorter) RawProgress(d *dataset.Dataset) float64 {
	if s.done {
		return 1
	}
	return scanProgress(s.i, d.Len())
}
