package engine

import "github.com/Readm/sortviz/dataset"

// mergeSorter is a bottom-up merge sort. Runs of size runSize are merged
// pairwise into runs of twice the size; each merge first snapshots the
// affected sub-range into the scratch buffer (the planning step), then
// writes one element back per step (the copy phase). After all merges at a
// given runSize, the array consists of sorted blocks of that size.
type mergeSorter struct {
	scratch   []int
	runSize   int
	leftStart int

	l, m, r int
	i, j, k int
	copying bool
	done    bool
	n       int
}

func newMergeSorter(d *dataset.Dataset) *mergeSorter {
	s := &mergeSorter{
		scratch: make([]int, d.Len()),
		runSize: 1,
		n:       d.Len(),
	}
	copy(s.scratch, d.Values())
	if s.n < 2 {
		s.done = true
	}
	return s
}

func (s *mergeSorter) Algorithm() Algorithm { return Merge }

func (s *mergeSorter) Done() bool { return s.done }

// Copying reports whether the automaton is in the copy-back phase; the
// session stretches the pacing delay slightly during it so merges stay
// readable.
func (s *mergeSorter) Copying() bool { return s.copying }

func (s *mergeSorter) Step(d *dataset.Dataset) Result {
	if s.done {
		return noTouch(true)
	}
	if !s.copying {
		if s.runSize >= s.n {
			s.done = true
			return noTouch(true)
		}
		if s.leftStart >= s.n-1 {
			s.runSize *= 2
			s.leftStart = 0
			return noTouch(false)
		}
		s.l = s.leftStart
		s.m = min(s.leftStart+s.runSize-1, s.n-1)
		s.r = min(s.leftStart+2*s.runSize-1, s.n-1)
		s.i, s.j, s.k = s.l, s.m+1, s.l
		copy(s.scratch[s.l:s.r+1], d.Values()[s.l:s.r+1])
		s.copying = true
		return noTouch(false)
	}

	if s.k > s.r {
		s.copying = false
		s.leftStart += 2 * s.runSize
		return noTouch(false)
	}
	res := Result{Compared: true, Swapped: true, Touched: s.k}
	if s.i <= s.m && (s.j > s.r || s.scratch[s.i] <= s.scratch[s.j]) {
		res.Value = s.scratch[s.i]
		d.Set(s.k, s.scratch[s.i])
		s.i++
	} else {
		res.Value = s.scratch[s.j]
		d.Set(s.k, s.scratch[s.j])
		s.j++
	}
	s.k++
	return res
}

func (s *mergeSorter) View() View {
	v := View{Recent: -1}
	if !s.done && s.copying && s.k > s.l {
		v.Recent = s.k - 1
	}
	return v
}

func (s *mergeSorter) RawProgress(d *dataset.Dataset) float64 {
	if s.done {
		return 1
	}
	return AdjacentSortedFraction(d.Values())
}
