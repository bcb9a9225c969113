package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

type BubbleSort struct{}

func NewBubbleSort() *BubbleSort {
	return &BubbleSort{}
}

func (b *BubbleSort) Info() Info {
	return Info{
		ID:              "bubble",
		Name:            "Bubble Sort",
		Category:        CategorySorting,
		Summary:         "Simple comparison-based sorting",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
	}
}

func (b *BubbleSort) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)
	n := rec.Len()

	rec.Emit(steps.KindStart, "Starting bubble sort algorithm...")

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			compareAdjacent(rec, j)
		}

		last := n - 1 - i
		rec.Mark(steps.StateSorted, last)
		rec.Emit(steps.KindFinalize, fmt.Sprintf("Element %d is now in its final position!", rec.Value(last)))
	}

	rec.MarkAll(steps.StateSorted)
	rec.Emit(steps.KindDone, "Array is now completely sorted! Bubble sort completed successfully!")
	return rec.Sequence()
}

// compareAdjacent records the comparison of positions j and j+1 and, when
// they are out of order, the four-step exchange. It reports whether the pair
// was exchanged.
func compareAdjacent(rec *steps.Recorder, j int) bool {
	a, b := rec.Value(j), rec.Value(j+1)
	rec.Mark(steps.StateComparing, j, j+1)
	rec.Emit(steps.KindCompare,
		fmt.Sprintf("Comparing elements at positions %d and %d (%d vs %d)", j, j+1, a, b),
		steps.WithComparing(j, j+1))

	if a <= b {
		rec.Mark(steps.StateDefault, j, j+1)
		rec.Emit(steps.KindSettle,
			fmt.Sprintf("No swap needed (%d ≤ %d)", a, b),
			steps.WithComparing(j, j+1))
		return false
	}

	exchange(rec, j, j+1)
	return true
}

// exchange records preparing, performing and settling the swap of i and j.
func exchange(rec *steps.Recorder, i, j int) {
	a, b := rec.Value(i), rec.Value(j)
	rec.Mark(steps.StateSwapping, i, j)
	rec.Emit(steps.KindSwapPrepare,
		fmt.Sprintf("Preparing to swap %d and %d (%d > %d)", a, b, a, b),
		steps.WithSwapping(i, j), steps.WithMove(i, j))

	rec.Swap(i, j)
	rec.Emit(steps.KindSwap,
		fmt.Sprintf("Swap completed! %d and %d have been exchanged", rec.Value(i), rec.Value(j)),
		steps.WithSwapping(i, j), steps.WithMove(i, j))

	rec.Mark(steps.StateDefault, i, j)
	rec.Emit(steps.KindSettle, "Elements settled in their new positions", steps.WithMove(i, j))
}
