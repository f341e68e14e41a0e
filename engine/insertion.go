package engine

import "github.com/Readm/sortviz/dataset"

// insertionSorter bubbles element i leftwards through the sorted prefix
// one exchange per step. The prefix [0, i) is internally sorted at all
// times.
type insertionSorter struct {
	i, j int
	done bool
	n    int
}

func newInsertionSorter(d *dataset.Dataset) *insertionSorter {
	s := &insertionSorter{i: 1, j: 1, n: d.Len()}
	if s.n < 2 {
		s.done = true
	}
	return s
}

func (s *insertionSorter) Algorithm() Algorithm { return Insertion }

func (s *insertionSorter) Done() bool { return s.done }

func (s *insertionSorter) Step(d *dataset.Dataset) Result {
	if s.done {
		return noTouch(true)
	}
	res := Result{
		Touched:  s.j,
		Value:    d.At(s.j),
		Compared: true,
	}
	if s.j > 0 && d.At(s.j) < d.At(s.j-1) {
		d.Swap(s.j, s.j-1)
		res.Swapped = true
		s.j--
	} else {
		s.i++
		s.j = s.i
		if s.i >= s.n {
			s.done = true
		}
	}
	res.Done = s.done
	return res
}

func (s *insertionSorter) View() View {
	v := View{Recent: -1}
	if !s.done {
		v.Primary = []int{s.j}
	}
	return v
}

func (s *insertionSorter) RawProgress(d *dataset.Dataset) float64 {
	if s.done {
		return 1
	}
	return scanProgress(s.i, d.Len())
}
