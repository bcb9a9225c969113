package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

// MergeSort is a top-down merge sort. Runs are merged in place by rotating
// the smaller right head in front of the left head, so every snapshot is a
// permutation of the input.
type MergeSort struct{}

func NewMergeSort() *MergeSort {
	return &MergeSort{}
}

func (m *MergeSort) Info() Info {
	return Info{
		ID:              "merge",
		Name:            "Merge Sort",
		Category:        CategorySorting,
		Summary:         "Stable divide and conquer",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
	}
}

func (m *MergeSort) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)

	rec.Emit(steps.KindStart, "Starting merge sort algorithm...")
	if rec.Len() > 1 {
		m.sort(rec, 0, rec.Len()-1)
	}

	rec.MarkAll(steps.StateSorted)
	rec.Emit(steps.KindDone, "Array is now completely sorted! Merge sort completed successfully!")
	return rec.Sequence()
}

func (m *MergeSort) sort(rec *steps.Recorder, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2

	rec.MarkRange(steps.StatePartition, lo, hi)
	rec.Emit(steps.KindPartition, fmt.Sprintf("Dividing positions %d to %d into %d to %d and %d to %d", lo, hi, lo, mid, mid+1, hi))
	rec.MarkRange(steps.StateDefault, lo, hi)

	m.sort(rec, lo, mid)
	m.sort(rec, mid+1, hi)
	m.merge(rec, lo, mid, hi)
}

func (m *MergeSort) merge(rec *steps.Recorder, lo, mid, hi int) {
	rec.MarkRange(steps.StatePartition, lo, hi)
	rec.Emit(steps.KindMerge, fmt.Sprintf("Merging runs %d to %d and %d to %d", lo, mid, mid+1, hi))

	i, j := lo, mid+1
	for i <= mid && j <= hi {
		left, right := rec.Value(i), rec.Value(j)
		rec.Mark(steps.StateComparing, i, j)
		rec.Emit(steps.KindCompare,
			fmt.Sprintf("Comparing elements at positions %d and %d (%d vs %d)", i, j, left, right),
			steps.WithComparing(i, j))

		if left <= right {
			rec.Mark(steps.StatePartition, i, j)
			rec.Emit(steps.KindSettle, fmt.Sprintf("%d ≤ %d, %d keeps its place", left, right, left), steps.WithComparing(i, j))
			i++
			continue
		}

		rec.Mark(steps.StateSwappingLeft, i)
		rec.Mark(steps.StateSwappingRight, j)
		rec.Emit(steps.KindSwapPrepare,
			fmt.Sprintf("%d < %d, moving %d from position %d to position %d", right, left, right, j, i),
			steps.WithSwapping(i, j), steps.WithMove(j, i))

		rec.Rotate(j, i)
		rec.Mark(steps.StateSwapping, i)
		rec.Emit(steps.KindSwap,
			fmt.Sprintf("Inserted %d at position %d, the left run shifts right", right, i),
			steps.WithSwapping(i, j), steps.WithMove(j, i))

		rec.MarkRange(steps.StatePartition, i, j)
		i++
		mid++
		j++
	}

	rec.MarkRange(steps.StateDefault, lo, hi)
	rec.Emit(steps.KindMerge, fmt.Sprintf("Merged positions %d to %d: %v", lo, hi, rec.Values()[lo:hi+1]))
}
