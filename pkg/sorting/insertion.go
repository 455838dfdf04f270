package sorting

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/trace"
)

// Insertion grows a sorted prefix one key at a time. Shifts are counted as swaps.
func Insertion(array []int, rec *trace.Recorder) {
	n := len(array)
	if n == 0 {
		return
	}

	rec.Record(frame(array, nil, nil, idx(0), "First element is considered sorted"))

	for i := 1; i < n; i++ {
		key := array[i]
		j := i - 1
		prefix := trace.Range(i)

		rec.Record(frame(array, idx(i), nil, prefix,
			fmt.Sprintf("Selected key %d at index %d", key, i)))

		for j >= 0 {
			rec.Compare()
			rec.Record(frame(array, idx(j, j+1), nil, prefix,
				fmt.Sprintf("Comparing %d with key %d", array[j], key)))

			if array[j] <= key {
				break
			}
			array[j+1] = array[j]
			rec.Swap()
			rec.Record(frame(array, nil, idx(j, j+1), prefix,
				fmt.Sprintf("Moving %d to the right", array[j])))
			j--
		}

		array[j+1] = key
		rec.Record(frame(array, nil, idx(j+1), trace.Range(i+1),
			fmt.Sprintf("Inserted key %d at index %d", key, j+1)))
	}
}
