package metrics

import "github.com/san-kum/sortvis/internal/steps"

// Inversions counts pairs i < j with values[i] > values[j].
func Inversions(values []int) int {
	n := 0
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}

// InversionSeries returns the inversion count of every snapshot.
func InversionSeries(seq steps.Sequence) []float64 {
	out := make([]float64, len(seq))
	for i, s := range seq {
		out[i] = float64(Inversions(s.Values()))
	}
	return out
}

// Sortedness is 1 - inversions/maxInversions of the last observed step.
type Sortedness struct {
	last    []int
	samples int
}

func NewSortedness() *Sortedness {
	return &Sortedness{}
}

func (s *Sortedness) Name() string { return "sortedness" }

func (s *Sortedness) Observe(step steps.Step) {
	s.last = step.Values()
	s.samples++
}

func (s *Sortedness) Value() float64 {
	n := len(s.last)
	if s.samples == 0 || n < 2 {
		return 1.0
	}
	max := n * (n - 1) / 2
	return 1.0 - float64(Inversions(s.last))/float64(max)
}

func (s *Sortedness) Reset() {
	s.last = nil
	s.samples = 0
}
