package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

type SelectionSort struct{}

func NewSelectionSort() *SelectionSort {
	return &SelectionSort{}
}

func (s *SelectionSort) Info() Info {
	return Info{
		ID:              "selection",
		Name:            "Selection Sort",
		Category:        CategorySorting,
		Summary:         "Simple selection-based sorting",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	}
}

func (s *SelectionSort) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)
	n := rec.Len()

	rec.Emit(steps.KindStart, "Starting selection sort algorithm...")

	for i := 0; i < n-1; i++ {
		minIdx := i
		rec.Mark(steps.StatePivot, i)
		rec.Emit(steps.KindPivot, fmt.Sprintf("Assuming %d at position %d is the minimum", rec.Value(i), i))

		for j := i + 1; j < n; j++ {
			cur, cand := rec.Value(minIdx), rec.Value(j)
			rec.Mark(steps.StateComparing, minIdx, j)
			rec.Emit(steps.KindCompare,
				fmt.Sprintf("Comparing elements at positions %d and %d (%d vs %d)", minIdx, j, cur, cand),
				steps.WithComparing(minIdx, j))

			if cand < cur {
				rec.Mark(steps.StateDefault, minIdx)
				rec.Mark(steps.StatePivot, j)
				minIdx = j
				rec.Emit(steps.KindPivot, fmt.Sprintf("New minimum found: %d at position %d", cand, j))
				continue
			}

			rec.Mark(steps.StatePivot, minIdx)
			rec.Mark(steps.StateDefault, j)
			rec.Emit(steps.KindSettle,
				fmt.Sprintf("No swap needed (%d ≤ %d), minimum unchanged", cur, cand),
				steps.WithComparing(minIdx, j))
		}

		if minIdx != i {
			exchange(rec, i, minIdx)
		} else {
			rec.Mark(steps.StateDefault, i)
			rec.Emit(steps.KindNote, fmt.Sprintf("%d is already the smallest remaining element", rec.Value(i)))
		}

		rec.Mark(steps.StateSorted, i)
		rec.Emit(steps.KindFinalize, fmt.Sprintf("Element %d is now in its final position!", rec.Value(i)))
	}

	rec.MarkAll(steps.StateSorted)
	rec.Emit(steps.KindDone, "Array is now completely sorted! Selection sort completed successfully!")
	return rec.Sequence()
}
