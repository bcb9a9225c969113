package algorithms

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortvis/internal/steps"
)

type BinarySearch struct{}

func NewBinarySearch() *BinarySearch {
	return &BinarySearch{}
}

func (b *BinarySearch) Info() Info {
	return Info{
		ID:              "binary",
		Name:            "Binary Search",
		Category:        CategorySearch,
		Summary:         "Efficient search in sorted arrays",
		TimeComplexity:  "O(log n)",
		SpaceComplexity: "O(1)",
	}
}

// Generate searches in.Target. An unsorted input is shown sorted ascending
// first, since halving is only meaningful on ordered data.
func (b *BinarySearch) Generate(in Input) steps.Sequence {
	rec := steps.NewRecorder(in.Values)
	target := in.Target

	rec.Emit(steps.KindStart, fmt.Sprintf("Starting binary search for %d...", target))

	if values := rec.Values(); !steps.IsAscending(values) {
		sort.Ints(values)
		rec.Reorder(values)
		rec.Emit(steps.KindNote, "Binary search needs ordered data, the array is sorted ascending first")
	}

	lo, hi := 0, rec.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := rec.Value(mid)

		rec.MarkAll(steps.StateDefault)
		rec.MarkRange(steps.StatePartition, lo, hi)
		rec.Mark(steps.StatePivot, mid)
		rec.Emit(steps.KindProbe,
			fmt.Sprintf("Checking middle position %d (value %d) in positions %d to %d", mid, v, lo, hi),
			steps.WithComparing(mid, mid))

		switch {
		case v == target:
			rec.MarkAll(steps.StateDefault)
			rec.Mark(steps.StateSorted, mid)
			rec.Emit(steps.KindDone, fmt.Sprintf("Found %d at position %d! Binary search completed successfully!", target, mid))
			return rec.Sequence()
		case v < target:
			rec.MarkRange(steps.StateDefault, lo, mid)
			lo = mid + 1
			rec.Emit(steps.KindPartition, fmt.Sprintf("%d < %d, discarding the left half up to position %d", v, target, mid))
		default:
			rec.MarkRange(steps.StateDefault, mid, hi)
			hi = mid - 1
			rec.Emit(steps.KindPartition, fmt.Sprintf("%d > %d, discarding the right half from position %d", v, target, mid))
		}
	}

	rec.MarkAll(steps.StateDefault)
	rec.Emit(steps.KindDone, fmt.Sprintf("%d is not in the array. Binary search completed!", target))
	return rec.Sequence()
}
