// Package algorithms implements step generators for the visualized sorting
// and searching algorithms.
//
// Each generator is a deterministic function of its [Input]: it replays the
// algorithm on a working copy of the values and records a [steps.Step] for
// every comparison, exchange, pivot choice, partition move, merge or probe.
//
//   - Sorting: [BubbleSort], [InsertionSort], [SelectionSort], [QuickSort], [MergeSort]
//   - Search: [BinarySearch], [LinearSearch]
//
// Every sequence starts with a "Starting ..." step and ends with a step in
// which the array is fully sorted (sorts) or the target is found or reported
// missing (searches).
package algorithms
