package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

// QuickSort uses Lomuto partitioning with the last element of each range as
// pivot.
type QuickSort struct{}

func NewQuickSort() *QuickSort {
	return &QuickSort{}
}

func (q *QuickSort) Info() Info {
	return Info{
		ID:              "quick",
		Name:            "Quick Sort",
		Category:        CategorySorting,
		Summary:         "Divide and conquer sorting",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(log n)",
	}
}

func (q *QuickSort) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)

	rec.Emit(steps.KindStart, "Starting quick sort algorithm...")
	if rec.Len() > 1 {
		q.sort(rec, 0, rec.Len()-1)
	}

	rec.MarkAll(steps.StateSorted)
	rec.Emit(steps.KindDone, "Array is now completely sorted! Quick sort completed successfully!")
	return rec.Sequence()
}

func (q *QuickSort) sort(rec *steps.Recorder, lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		rec.Mark(steps.StateSorted, lo)
		rec.Emit(steps.KindFinalize, fmt.Sprintf("Element %d at position %d is in its final position", rec.Value(lo), lo))
		return
	}

	p := q.partition(rec, lo, hi)
	q.sort(rec, lo, p-1)
	q.sort(rec, p+1, hi)
}

func (q *QuickSort) partition(rec *steps.Recorder, lo, hi int) int {
	pivot := rec.Value(hi)
	rec.MarkRange(steps.StatePartition, lo, hi-1)
	rec.Mark(steps.StatePivot, hi)
	rec.Emit(steps.KindPivot, fmt.Sprintf("Choosing %d at position %d as pivot for positions %d to %d", pivot, hi, lo, hi))

	boundary := lo
	for j := lo; j < hi; j++ {
		v := rec.Value(j)
		rec.Mark(steps.StateComparing, j)
		rec.Emit(steps.KindCompare,
			fmt.Sprintf("Comparing %d at position %d with pivot %d", v, j, pivot),
			steps.WithComparing(j, hi))

		if v >= pivot {
			rec.Mark(steps.StatePartition, j)
			rec.Emit(steps.KindPartition, fmt.Sprintf("%d ≥ %d, it stays right of the boundary", v, pivot))
			continue
		}

		if boundary != j {
			rec.Mark(steps.StateSwappingLeft, boundary)
			rec.Mark(steps.StateSwappingRight, j)
			rec.Emit(steps.KindSwapPrepare,
				fmt.Sprintf("Preparing to swap %d and %d to grow the left partition", rec.Value(boundary), v),
				steps.WithSwapping(boundary, j), steps.WithMove(j, boundary))

			rec.Swap(boundary, j)
			rec.Emit(steps.KindSwap,
				fmt.Sprintf("Swap completed! %d moved to position %d", v, boundary),
				steps.WithSwapping(boundary, j), steps.WithMove(j, boundary))
			rec.Mark(steps.StatePartition, boundary, j)
		} else {
			rec.Mark(steps.StatePartition, j)
		}

		boundary++
		rec.Emit(steps.KindPartition, fmt.Sprintf("%d < %d, partition boundary moves to position %d", v, pivot, boundary))
	}

	if boundary != hi {
		rec.Mark(steps.StateSwapping, boundary, hi)
		rec.Emit(steps.KindSwapPrepare,
			fmt.Sprintf("Preparing to swap pivot %d with %d at the boundary", pivot, rec.Value(boundary)),
			steps.WithSwapping(boundary, hi), steps.WithMove(hi, boundary))

		rec.Swap(boundary, hi)
		rec.Emit(steps.KindSwap,
			fmt.Sprintf("Swap completed! Pivot %d moved to position %d", pivot, boundary),
			steps.WithSwapping(boundary, hi), steps.WithMove(hi, boundary))
	}

	rec.MarkRange(steps.StateDefault, lo, hi)
	rec.Mark(steps.StateSorted, boundary)
	rec.Emit(steps.KindFinalize, fmt.Sprintf("Pivot %d is now in its final position %d", pivot, boundary))
	return boundary
}
