package metrics

import "github.com/san-kum/sortvis/internal/steps"

// KindCounter counts steps whose kind is in a fixed set.
type KindCounter struct {
	name  string
	kinds map[steps.Kind]bool
	count int
}

func NewKindCounter(name string, kinds ...steps.Kind) *KindCounter {
	set := make(map[steps.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return &KindCounter{name: name, kinds: set}
}

// NewComparisons counts comparisons and search probes.
func NewComparisons() *KindCounter {
	return NewKindCounter("comparisons", steps.KindCompare, steps.KindProbe)
}

// NewSwaps counts completed exchanges, including merge rotations.
func NewSwaps() *KindCounter {
	return NewKindCounter("swaps", steps.KindSwap)
}

func (k *KindCounter) Name() string { return k.name }

func (k *KindCounter) Observe(s steps.Step) {
	if k.kinds[s.Kind] {
		k.count++
	}
}

func (k *KindCounter) Value() float64 { return float64(k.count) }

func (k *KindCounter) Reset() { k.count = 0 }

// Moves counts array positions whose value changed between consecutive
// steps. It approximates memory writes.
type Moves struct {
	prev  []int
	moves int
}

func NewMoves() *Moves {
	return &Moves{}
}

func (m *Moves) Name() string { return "moves" }

func (m *Moves) Observe(s steps.Step) {
	cur := s.Values()
	if m.prev != nil && len(m.prev) == len(cur) {
		for i := range cur {
			if cur[i] != m.prev[i] {
				m.moves++
			}
		}
	}
	m.prev = cur
}

func (m *Moves) Value() float64 { return float64(m.moves) }

func (m *Moves) Reset() {
	m.prev = nil
	m.moves = 0
}
