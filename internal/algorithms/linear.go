package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/steps"
)

type LinearSearch struct{}

func NewLinearSearch() *LinearSearch {
	return &LinearSearch{}
}

func (l *LinearSearch) Info() Info {
	return Info{
		ID:              "linear",
		Name:            "Linear Search",
		Category:        CategorySearch,
		Summary:         "Simple sequential search",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

func (l *LinearSearch) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)
	target := in.Target

	rec.Emit(steps.KindStart, fmt.Sprintf("Starting linear search for %d...", target))

	for i := 0; i < rec.Len(); i++ {
		v := rec.Value(i)
		rec.Mark(steps.StateComparing, i)
		rec.Emit(steps.KindProbe,
			fmt.Sprintf("Checking position %d (%d vs %d)", i, v, target),
			steps.WithComparing(i, i))

		if v == target {
			rec.MarkAll(steps.StateDefault)
			rec.Mark(steps.StateSorted, i)
			rec.Emit(steps.KindDone, fmt.Sprintf("Found %d at position %d after %d checks! Linear search completed successfully!", target, i, i+1))
			return rec.Sequence()
		}

		rec.Mark(steps.StatePartition, i)
		rec.Emit(steps.KindNote, fmt.Sprintf("%d ≠ %d, moving on", v, target))
	}

	rec.MarkAll(steps.StateDefault)
	rec.Emit(steps.KindDone, fmt.Sprintf("%d is not in the array. Linear search completed!", target))
	return rec.Sequence()
}
