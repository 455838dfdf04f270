package sorting

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/trace"
)

// Selection scans the unsorted suffix for its minimum (strict less-than)
// and swaps it onto the sorted boundary when it is not already there.
func Selection(array []int, rec *trace.Recorder) {
	n := len(array)

	for i := 0; i < n-1; i++ {
		minIdx := i
		prefix := trace.Range(i)

		rec.Record(frame(array, idx(i), nil, prefix,
			fmt.Sprintf("Starting pass %d. Current minimum is %d at index %d", i+1, array[i], i)))

		for j := i + 1; j < n; j++ {
			rec.Compare()
			rec.Record(frame(array, idx(minIdx, j), nil, prefix,
				fmt.Sprintf("Comparing current min %d with %d", array[minIdx], array[j])))

			if array[j] < array[minIdx] {
				minIdx = j
				rec.Record(frame(array, idx(minIdx), nil, prefix,
					fmt.Sprintf("Found new minimum: %d at index %d", array[minIdx], minIdx)))
			}
		}

		if minIdx != i {
			array[i], array[minIdx] = array[minIdx], array[i]
			rec.Swap()
			rec.Record(frame(array, nil, idx(i, minIdx), trace.Range(i+1),
				fmt.Sprintf("Swapping minimum %d with %d", array[i], array[minIdx])))
		} else {
			rec.Record(frame(array, nil, nil, trace.Range(i+1),
				fmt.Sprintf("Minimum %d is already in correct position, no swap needed", array[i])))
		}
	}
}
