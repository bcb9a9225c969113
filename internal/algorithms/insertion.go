package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

type InsertionSort struct{}

func NewInsertionSort() *InsertionSort {
	return &InsertionSort{}
}

func (s *InsertionSort) Info() Info {
	return Info{
		ID:              "insertion",
		Name:            "Insertion Sort",
		Category:        CategorySorting,
		Summary:         "Simple insertion-based sorting",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	}
}

// Generate walks each element left through the sorted prefix by adjacent
// exchanges until its left neighbour is not greater.
func (s *InsertionSort) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)
	n := rec.Len()

	rec.Emit(steps.KindStart, "Starting insertion sort algorithm...")

	if n > 1 {
		rec.Mark(steps.StateSorted, 0)
		rec.Emit(steps.KindFinalize, fmt.Sprintf("Element %d at position 0 forms the initial sorted region", rec.Value(0)))
	}

	for i := 1; i < n; i++ {
		key := rec.Value(i)
		rec.Mark(steps.StatePivot, i)
		rec.Emit(steps.KindPivot, fmt.Sprintf("Picking %d at position %d to insert into the sorted region", key, i))

		for j := i; j > 0; j-- {
			if !compareAdjacent(rec, j-1) {
				break
			}
		}

		rec.MarkRange(steps.StateSorted, 0, i)
		rec.Emit(steps.KindFinalize, fmt.Sprintf("Element %d inserted, positions 0 to %d are now sorted", key, i))
	}

	rec.MarkAll(steps.StateSorted)
	rec.Emit(steps.KindDone, "Array is now completely sorted! Insertion sort completed successfully!")
	return rec.Sequence()
}
