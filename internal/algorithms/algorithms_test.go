package algorithms

import (
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/san-kum/sortvis/internal/steps"
)

func sorters() []Algorithm {
	return []Algorithm{
		NewBubbleSort(),
		NewInsertionSort(),
		NewSelectionSort(),
		NewQuickSort(),
		NewMergeSort(),
	}
}

func testArrays() map[string][]int {
	arrays := map[string][]int{
		"empty":      {},
		"single":     {7},
		"pair":       {2, 1},
		"example":    {5, 3, 8, 1},
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed":   {8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {4, 1, 4, 2, 1, 4, 3, 2},
		"equal":      {9, 9, 9, 9},
	}
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 5; i++ {
		values, _ := steps.RandomValues(rng, steps.DefaultSize, steps.DefaultMin, steps.DefaultMax)
		arrays["random"+string(rune('a'+i))] = values
	}
	return arrays
}

func sortedCopy(values []int) []int {
	c := append([]int(nil), values...)
	sort.Ints(c)
	return c
}

func sameMultiset(a, b []int) bool {
	return reflect.DeepEqual(sortedCopy(a), sortedCopy(b))
}

func TestBubbleSortScenario(t *testing.T) {
	seq := NewBubbleSort().Generate(Input{Values: []int{5, 3, 8, 1}})

	if seq.First().Description != "Starting bubble sort algorithm..." {
		t.Errorf("unexpected first description: %q", seq.First().Description)
	}
	if !strings.Contains(seq[1].Description, "positions 0 and 1 (5 vs 3)") {
		t.Errorf("expected comparison of positions 0 and 1, got %q", seq[1].Description)
	}
	if seq[2].Kind != steps.KindSwapPrepare || !strings.HasPrefix(seq[2].Description, "Preparing to swap 5 and 3") {
		t.Errorf("expected swap preparation after 5 > 3, got %q", seq[2].Description)
	}
	if seq[2].Array[0].State != steps.StateSwapping || seq[2].Array[1].State != steps.StateSwapping {
		t.Errorf("swap preparation should mark both positions swapping: %+v", seq[2].Array)
	}
	if seq[3].Kind != steps.KindSwap || !reflect.DeepEqual(seq[3].Values()[:2], []int{3, 5}) {
		t.Errorf("expected completed swap with [3 5], got %v", seq[3].Values())
	}
	if seq[4].Array[0].State != steps.StateDefault || seq[4].Array[1].State != steps.StateDefault {
		t.Errorf("settle step should reset states: %+v", seq[4].Array)
	}

	if len(seq) != 25 {
		t.Errorf("expected 25 steps, got %d", len(seq))
	}

	last := seq.Last()
	if !reflect.DeepEqual(last.Values(), []int{1, 3, 5, 8}) {
		t.Errorf("expected [1 3 5 8], got %v", last.Values())
	}
	for _, e := range last.Array {
		if e.State != steps.StateSorted {
			t.Errorf("final element %d not sorted: %s", e.Value, e.State)
		}
	}
}

func TestBubbleSortNoSwapStep(t *testing.T) {
	seq := NewBubbleSort().Generate(Input{Values: []int{1, 2}})

	// start, compare, no swap, finalize, done
	if len(seq) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(seq))
	}
	if seq[2].Kind != steps.KindSettle || !strings.HasPrefix(seq[2].Description, "No swap needed") {
		t.Errorf("expected no-swap step, got %q", seq[2].Description)
	}
	if seq[3].Array[1].State != steps.StateSorted {
		t.Errorf("last position should be finalized, got %s", seq[3].Array[1].State)
	}
}

func TestSortsFirstAndLastStep(t *testing.T) {
	for _, alg := range sorters() {
		for name, values := range testArrays() {
			seq := alg.Generate(Input{Values: values})
			id := alg.Info().ID

			if len(seq) < 2 {
				t.Fatalf("%s/%s: expected at least 2 steps, got %d", id, name, len(seq))
			}

			first := seq.First()
			if first.Kind != steps.KindStart || !strings.HasPrefix(first.Description, "Starting") {
				t.Errorf("%s/%s: unexpected first step %q", id, name, first.Description)
			}
			if !reflect.DeepEqual(first.Values(), values) && len(values) > 0 {
				t.Errorf("%s/%s: first snapshot %v differs from input %v", id, name, first.Values(), values)
			}
			for _, e := range first.Array {
				if e.State != steps.StateDefault {
					t.Errorf("%s/%s: first snapshot has state %s", id, name, e.State)
				}
			}

			last := seq.Last()
			if last.Kind != steps.KindDone {
				t.Errorf("%s/%s: last step kind %s", id, name, last.Kind)
			}
			if len(values) > 0 && !reflect.DeepEqual(last.Values(), sortedCopy(values)) {
				t.Errorf("%s/%s: final array %v, expected %v", id, name, last.Values(), sortedCopy(values))
			}
			for _, e := range last.Array {
				if e.State != steps.StateSorted {
					t.Errorf("%s/%s: final element %d is %s", id, name, e.Value, e.State)
				}
			}
		}
	}
}

func TestSortsTrivialInputs(t *testing.T) {
	for _, alg := range sorters() {
		for _, values := range [][]int{{}, {42}} {
			seq := alg.Generate(Input{Values: values})
			if len(seq) != 2 {
				t.Errorf("%s: expected start and completion only for %v, got %d steps", alg.Info().ID, values, len(seq))
			}
			for _, s := range seq {
				if s.Comparing != nil {
					t.Errorf("%s: unexpected comparison for %v", alg.Info().ID, values)
				}
			}
		}
	}
}

func TestSortsSnapshotsArePermutations(t *testing.T) {
	for _, alg := range sorters() {
		for name, values := range testArrays() {
			for i, s := range alg.Generate(Input{Values: values}) {
				if !sameMultiset(s.Values(), values) {
					t.Fatalf("%s/%s: step %d %v is not a permutation of %v", alg.Info().ID, name, i, s.Values(), values)
				}
				for pos, e := range s.Array {
					if e.Index != pos {
						t.Fatalf("%s/%s: step %d position %d has index %d", alg.Info().ID, name, i, pos, e.Index)
					}
					if !e.State.Valid() {
						t.Fatalf("%s/%s: step %d has unknown state %q", alg.Info().ID, name, i, e.State)
					}
				}
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	all := append(sorters(), NewBinarySearch(), NewLinearSearch())
	for _, alg := range all {
		for name, values := range testArrays() {
			in := Input{Values: values, Target: 4}
			a := alg.Generate(in)
			b := alg.Generate(in)
			if len(a) != len(b) {
				t.Fatalf("%s/%s: lengths differ %d vs %d", alg.Info().ID, name, len(a), len(b))
			}
			for i := range a {
				if !reflect.DeepEqual(a[i].Array, b[i].Array) || a[i].Description != b[i].Description {
					t.Fatalf("%s/%s: step %d differs between runs", alg.Info().ID, name, i)
				}
			}
		}
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	values := []int{5, 3, 8, 1, 9, 2}
	orig := append([]int(nil), values...)
	for _, alg := range append(sorters(), NewBinarySearch(), NewLinearSearch()) {
		alg.Generate(Input{Values: values, Target: 8})
		if !reflect.DeepEqual(values, orig) {
			t.Fatalf("%s mutated its input: %v", alg.Info().ID, values)
		}
	}
}

func TestStepsDoNotShareArrays(t *testing.T) {
	for _, alg := range append(sorters(), NewBinarySearch(), NewLinearSearch()) {
		seq := alg.Generate(Input{Values: []int{6, 2, 9, 4}, Target: 9})
		seen := make(map[*steps.Element]int)
		for i, s := range seq {
			p := &s.Array[0]
			if prev, ok := seen[p]; ok {
				t.Fatalf("%s: steps %d and %d share an array", alg.Info().ID, prev, i)
			}
			seen[p] = i
		}
	}
}

func TestExchangeSortsFollowSwapContract(t *testing.T) {
	for _, alg := range []Algorithm{NewBubbleSort(), NewInsertionSort(), NewSelectionSort()} {
		seq := alg.Generate(Input{Values: []int{8, 7, 6, 5, 4, 3, 2, 1}})
		for i, s := range seq {
			if s.Kind != steps.KindSwapPrepare {
				continue
			}
			if i+2 >= len(seq) {
				t.Fatalf("%s: swap preparation at %d is not followed by two steps", alg.Info().ID, i)
			}
			done, settle := seq[i+1], seq[i+2]
			if done.Kind != steps.KindSwap || settle.Kind != steps.KindSettle {
				t.Fatalf("%s: expected swap then settle after step %d, got %s, %s", alg.Info().ID, i, done.Kind, settle.Kind)
			}
			a, b := s.Swapping[0], s.Swapping[1]
			if s.Array[a].Value != done.Array[b].Value || s.Array[b].Value != done.Array[a].Value {
				t.Fatalf("%s: step %d does not exchange positions %d and %d", alg.Info().ID, i, a, b)
			}
			if done.Array[a].State != steps.StateSwapping || settle.Array[a].State != steps.StateDefault {
				t.Fatalf("%s: unexpected states around exchange at step %d", alg.Info().ID, i)
			}
		}
	}
}

func TestQuickSortMarksPivot(t *testing.T) {
	seq := NewQuickSort().Generate(Input{Values: []int{3, 7, 1, 5}})

	s := seq[1]
	if s.Kind != steps.KindPivot || s.Array[3].State != steps.StatePivot {
		t.Fatalf("expected pivot choice on last position, got %q %+v", s.Description, s.Array)
	}
	for i := 0; i < 3; i++ {
		if s.Array[i].State != steps.StatePartition {
			t.Errorf("position %d should be in the partition, got %s", i, s.Array[i].State)
		}
	}

	finalized := 0
	for _, s := range seq {
		if s.Kind == steps.KindFinalize {
			finalized++
		}
	}
	if finalized != 4 {
		t.Errorf("expected every position finalized once, got %d", finalized)
	}
}

func TestMergeSortIsStableOrderOfSteps(t *testing.T) {
	seq := NewMergeSort().Generate(Input{Values: []int{4, 3, 2, 1}})

	var merges int
	for _, s := range seq {
		if s.Kind == steps.KindMerge && strings.HasPrefix(s.Description, "Merged") {
			merges++
		}
	}
	if merges != 3 {
		t.Errorf("expected 3 merged runs for 4 elements, got %d", merges)
	}
	if seq[1].Kind != steps.KindPartition {
		t.Errorf("expected dividing step after start, got %s", seq[1].Kind)
	}
}

func TestBinarySearch(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		target int
		found  bool
		pos    int
	}{
		{"found sorted", []int{1, 3, 5, 7, 9, 11, 13, 15}, 11, true, 5},
		{"found first", []int{1, 3, 5, 7}, 1, true, 0},
		{"missing", []int{1, 3, 5, 7}, 4, false, -1},
		{"unsorted input", []int{9, 2, 7, 4}, 7, true, 2},
		{"empty", []int{}, 3, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewBinarySearch().Generate(Input{Values: tt.values, Target: tt.target})
			last := seq.Last()
			if last.Kind != steps.KindDone {
				t.Fatalf("expected done step, got %s", last.Kind)
			}
			if !tt.found {
				if !strings.Contains(last.Description, "not in the array") {
					t.Errorf("expected not-found description, got %q", last.Description)
				}
				return
			}
			if last.Array[tt.pos].Value != tt.target || last.Array[tt.pos].State != steps.StateSorted {
				t.Errorf("expected %d found at %d, got %+v", tt.target, tt.pos, last.Array)
			}
			probes := 0
			for _, s := range seq {
				if s.Kind == steps.KindProbe {
					probes++
				}
			}
			if probes > 4 {
				t.Errorf("binary search over %d elements probed %d times", len(tt.values), probes)
			}
		})
	}
}

func TestBinarySearchSortsFirst(t *testing.T) {
	seq := NewBinarySearch().Generate(Input{Values: []int{9, 2, 7, 4}, Target: 2})
	if seq[1].Kind != steps.KindNote || !reflect.DeepEqual(seq[1].Values(), []int{2, 4, 7, 9}) {
		t.Errorf("expected sorted note step, got %q %v", seq[1].Description, seq[1].Values())
	}

	sorted := NewBinarySearch().Generate(Input{Values: []int{2, 4, 7, 9}, Target: 2})
	if sorted[1].Kind == steps.KindNote {
		t.Error("ordered input should not be re-sorted")
	}
}

func TestLinearSearch(t *testing.T) {
	seq := NewLinearSearch().Generate(Input{Values: []int{4, 8, 15, 16}, Target: 15})

	// start, (probe, miss) x2, probe, done
	if len(seq) != 7 {
		t.Fatalf("expected 7 steps, got %d", len(seq))
	}
	last := seq.Last()
	if last.Array[2].State != steps.StateSorted || !strings.Contains(last.Description, "after 3 checks") {
		t.Errorf("unexpected final step %q %+v", last.Description, last.Array)
	}

	missing := NewLinearSearch().Generate(Input{Values: []int{4, 8}, Target: 5})
	if len(missing) != 6 || !strings.Contains(missing.Last().Description, "not in the array") {
		t.Errorf("unexpected not-found sequence: %d steps, %q", len(missing), missing.Last().Description)
	}
}
