// Package steps provides the snapshot model shared by every algorithm
// visualization.
//
// An algorithm run is recorded as a [Sequence] of [Step] values. Each step
// owns a private copy of the array, so earlier steps stay valid after the
// working array is mutated:
//
//   - [Element]: one array slot with its value and visual [ElementState]
//   - [Step]: snapshot + description + highlighted positions
//   - [Recorder]: working array that emits deep-copied steps
//
// # Example
//
//	rec := steps.NewRecorder([]int{5, 3, 8, 1})
//	rec.Emit(steps.KindStart, "Starting bubble sort algorithm...")
//	rec.Mark(steps.StateComparing, 0, 1)
//	rec.Emit(steps.KindCompare, "Comparing 5 and 3", steps.WithComparing(0, 1))
//	seq := rec.Sequence()
//
// # Thread Safety
//
// A Recorder is NOT thread-safe. Sequences returned by it are never mutated
// afterwards and may be shared freely.
package steps
