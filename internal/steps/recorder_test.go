package steps

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRecorderEmitCopies(t *testing.T) {
	rec := NewRecorder([]int{5, 3, 8})
	rec.Emit(KindStart, "start")
	rec.Mark(StateComparing, 0, 1)
	rec.Emit(KindCompare, "compare", WithComparing(0, 1))
	rec.Swap(0, 1)
	rec.MarkAll(StateSorted)
	rec.Emit(KindDone, "done")

	seq := rec.Sequence()
	if len(seq) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(seq))
	}

	if got := seq[0].Values(); got[0] != 5 || got[1] != 3 {
		t.Errorf("first snapshot mutated: %v", got)
	}
	for _, e := range seq[0].Array {
		if e.State != StateDefault {
			t.Errorf("first snapshot state changed to %s", e.State)
		}
	}
	if seq[1].Array[0].State != StateComparing || seq[1].Array[2].State != StateDefault {
		t.Errorf("unexpected compare states: %+v", seq[1].Array)
	}
	if seq[1].Comparing == nil || *seq[1].Comparing != (Pair{0, 1}) {
		t.Errorf("expected comparing pair {0,1}, got %v", seq[1].Comparing)
	}
	if got := seq[2].Values(); got[0] != 3 || got[1] != 5 {
		t.Errorf("expected swapped values, got %v", got)
	}

	seq[2].Array[0].Value = 99
	if seq[1].Array[1].Value == 99 || seq[0].Array[0].Value == 99 {
		t.Error("snapshots share backing storage")
	}
}

func TestRecorderIndexIsPosition(t *testing.T) {
	rec := NewRecorder([]int{1, 2, 3})
	rec.Swap(0, 2)
	rec.Emit(KindSwap, "swap")

	for i, e := range rec.Sequence()[0].Array {
		if e.Index != i {
			t.Errorf("position %d carries index %d", i, e.Index)
		}
	}
}

func TestRecorderRotate(t *testing.T) {
	rec := NewRecorder([]int{1, 4, 5, 2})
	rec.Rotate(3, 1)

	want := []int{1, 2, 4, 5}
	got := rec.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	rec.Rotate(0, 2)
	if got := rec.Values(); got[0] != 1 {
		t.Errorf("rotate with to >= from should be a no-op, got %v", got)
	}
}

func TestStepClone(t *testing.T) {
	rec := NewRecorder([]int{2, 1})
	rec.Emit(KindSwapPrepare, "Preparing to swap", WithSwapping(0, 1), WithMove(0, 1))
	orig := rec.Sequence()[0]

	c := orig.Clone()
	c.Array[0].Value = 7
	c.Swapping[0] = 9
	c.SwapPositions.To = 5

	if orig.Array[0].Value != 2 || orig.Swapping[0] != 0 || orig.SwapPositions.To != 1 {
		t.Errorf("clone aliases original: %+v", orig)
	}
}

func TestStepIsSwap(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"Preparing to swap 5 and 3 (5 > 3)", true},
		{"Swap completed! 3 and 5 have been exchanged", true},
		{"Comparing elements at positions 0 and 1 (5 vs 3)", false},
		{"Elements settled in their new positions", false},
	}

	for _, tt := range tests {
		if got := (Step{Description: tt.desc}).IsSwap(); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.desc, tt.want, got)
		}
	}
}

func TestSequenceClamp(t *testing.T) {
	seq := make(Sequence, 4)
	tests := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {3, 3}, {4, 3}, {10, 3},
	}
	for _, tt := range tests {
		if got := seq.Clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestRandomValues(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values, err := RandomValues(rng, DefaultSize, DefaultMin, DefaultMax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != DefaultSize {
		t.Fatalf("expected %d values, got %d", DefaultSize, len(values))
	}
	for _, v := range values {
		if v < DefaultMin || v > DefaultMax {
			t.Errorf("value %d outside [%d, %d]", v, DefaultMin, DefaultMax)
		}
	}

	again, _ := RandomValues(rand.New(rand.NewSource(42)), DefaultSize, DefaultMin, DefaultMax)
	for i := range values {
		if values[i] != again[i] {
			t.Fatal("same seed produced different arrays")
		}
	}
}

func TestRandomValuesInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := RandomValues(rng, 3, 10, 1); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("expected ErrEmptyRange, got %v", err)
	}
	if _, err := RandomValues(rng, -1, 1, 10); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("expected ErrNegativeSize, got %v", err)
	}
}

func TestPickTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []int{4, 9, 16}
	got := PickTarget(rng, values, 1)
	found := false
	for _, v := range values {
		if v == got {
			found = true
		}
	}
	if !found {
		t.Errorf("target %d not drawn from %v", got, values)
	}
	if PickTarget(rng, nil, 1) != 1 {
		t.Error("empty array should fall back to min")
	}
}
