package steps

import "strings"

// ElementState is the transient visual state of one array slot.
type ElementState string

const (
	StateDefault       ElementState = "default"
	StateComparing     ElementState = "comparing"
	StateSwapping      ElementState = "swapping"
	StateSwappingLeft  ElementState = "swapping-left"
	StateSwappingRight ElementState = "swapping-right"
	StateSorted        ElementState = "sorted"
	StatePivot         ElementState = "pivot"
	StatePartition     ElementState = "partition"
)

// States lists every element state in display order.
var States = []ElementState{
	StateDefault,
	StateComparing,
	StateSwapping,
	StateSwappingLeft,
	StateSwappingRight,
	StateSorted,
	StatePivot,
	StatePartition,
}

// Valid reports whether s is one of the known states.
func (s ElementState) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// IsSwapping covers the plain and the directional swap states.
func (s ElementState) IsSwapping() bool {
	return s == StateSwapping || s == StateSwappingLeft || s == StateSwappingRight
}

// Kind classifies the micro-operation a step records.
type Kind string

const (
	KindStart       Kind = "start"
	KindCompare     Kind = "compare"
	KindSwapPrepare Kind = "swap-prepare"
	KindSwap        Kind = "swap"
	KindSettle      Kind = "settle"
	KindFinalize    Kind = "finalize"
	KindPivot       Kind = "pivot"
	KindPartition   Kind = "partition"
	KindMerge       Kind = "merge"
	KindProbe       Kind = "probe"
	KindNote        Kind = "note"
	KindDone        Kind = "done"
)

type Element struct {
	Value int          `json:"value"`
	State ElementState `json:"state"`
	Index int          `json:"index"`
}

// Pair is two array positions highlighted together.
type Pair [2]int

// Move describes an element travelling between two positions.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Step is one immutable snapshot. Array is never shared with another step.
type Step struct {
	Array         []Element `json:"array"`
	Description   string    `json:"description"`
	Kind          Kind      `json:"kind"`
	Comparing     *Pair     `json:"comparing,omitempty"`
	Swapping      *Pair     `json:"swapping,omitempty"`
	SwapPositions *Move     `json:"swap_positions,omitempty"`
}

// Values returns the element values of the snapshot in order.
func (s Step) Values() []int {
	return Values(s.Array)
}

// IsSwap reports whether the description announces a swap. Playback uses it
// to give exchange steps a longer dwell time.
func (s Step) IsSwap() bool {
	return strings.Contains(strings.ToLower(s.Description), "swap")
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	c := s
	c.Array = cloneElements(s.Array)
	if s.Comparing != nil {
		p := *s.Comparing
		c.Comparing = &p
	}
	if s.Swapping != nil {
		p := *s.Swapping
		c.Swapping = &p
	}
	if s.SwapPositions != nil {
		m := *s.SwapPositions
		c.SwapPositions = &m
	}
	return c
}

// Sequence is the ordered step list of one algorithm run.
type Sequence []Step

// First returns the opening step. The sequence must not be empty.
func (q Sequence) First() Step {
	return q[0]
}

// Last returns the closing step. The sequence must not be empty.
func (q Sequence) Last() Step {
	return q[len(q)-1]
}

// Clamp bounds i to the valid cursor range [0, len-1].
func (q Sequence) Clamp(i int) int {
	if i >= len(q) {
		i = len(q) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Values extracts the values of elems.
func Values(elems []Element) []int {
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e.Value
	}
	return out
}

// FromValues builds a default-state element array.
func FromValues(values []int) []Element {
	out := make([]Element, len(values))
	for i, v := range values {
		out[i] = Element{Value: v, State: StateDefault, Index: i}
	}
	return out
}

// IsAscending reports whether values are in non-decreasing order.
func IsAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

func cloneElements(src []Element) []Element {
	c := make([]Element, len(src))
	copy(c, src)
	return c
}
