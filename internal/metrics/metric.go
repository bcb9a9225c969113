package metrics

import "github.com/san-kum/sortvis/internal/steps"

type Metric interface {
	Name() string
	Observe(s steps.Step)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every recorded run.
func Default() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewMoves(),
		NewSortedness(),
	}
}

// Evaluate feeds every step of seq to each metric and collects the values.
func Evaluate(seq steps.Sequence, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms)+1)
	for _, m := range ms {
		m.Reset()
		for _, s := range seq {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	out["steps"] = float64(len(seq))
	return out
}
