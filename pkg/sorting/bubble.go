package sorting

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/trace"
)

// Bubble compares adjacent pairs left to right and swaps on a strict greater-than.
// A pass without swaps ends the run early and marks every remaining index sorted.
func Bubble(array []int, rec *trace.Recorder) {
	n := len(array)
	var sorted []int

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			rec.Compare()
			rec.Record(frame(array, idx(j, j+1), nil, sorted,
				fmt.Sprintf("Comparing %d and %d", array[j], array[j+1])))

			if array[j] > array[j+1] {
				array[j], array[j+1] = array[j+1], array[j]
				swapped = true
				rec.Swap()
				rec.Record(frame(array, nil, idx(j, j+1), sorted,
					fmt.Sprintf("Swapping %d and %d", array[j+1], array[j])))
			}
		}

		boundary := n - 1 - i
		sorted = append(sorted, boundary)
		rec.Record(frame(array, nil, nil, sorted,
			fmt.Sprintf("Element %d is now in its sorted position", array[boundary])))

		if !swapped {
			sorted = append(sorted, trace.Range(boundary)...)
			rec.Record(frame(array, nil, nil, sorted,
				"No swaps in this pass, remaining elements are already sorted"))
			return
		}
	}
}
