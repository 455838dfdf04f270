package sorting

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/trace"
)

// Quick is a Lomuto-partition quick sort using the last element of each
// sub-range as pivot. Placed pivots and single-element sub-ranges accumulate
// into the sorted set.
func Quick(array []int, rec *trace.Recorder) {
	q := quicker{array: array, rec: rec}
	q.sort(0, len(array)-1)
}

type quicker struct {
	array  []int
	rec    *trace.Recorder
	sorted []int
}

func (q *quicker) sort(low, high int) {
	if low == high {
		q.sorted = append(q.sorted, low)
	}
	if low >= high {
		return
	}

	p := q.partition(low, high)
	q.sorted = append(q.sorted, p)
	q.rec.Record(frame(q.array, nil, nil, q.sorted,
		fmt.Sprintf("Pivot %d is now sorted", q.array[p])))

	q.sort(low, p-1)
	q.sort(p+1, high)
}

func (q *quicker) partition(low, high int) int {
	a := q.array
	pivot := a[high]
	i := low - 1

	q.rec.Record(frame(a, idx(high), nil, q.sorted,
		fmt.Sprintf("Chosen pivot: %d at index %d", pivot, high)))

	for j := low; j < high; j++ {
		q.rec.Compare()
		q.rec.Record(frame(a, idx(j, high), nil, q.sorted,
			fmt.Sprintf("Comparing %d with pivot %d", a[j], pivot)))

		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
			q.rec.Swap()
			q.rec.Record(frame(a, nil, idx(i, j), q.sorted,
				fmt.Sprintf("Swapping %d and %d (smaller than pivot)", a[i], a[j])))
		}
	}

	a[i+1], a[high] = a[high], a[i+1]
	q.rec.Swap()
	q.rec.Record(frame(a, nil, idx(i+1, high), q.sorted,
		fmt.Sprintf("Placing pivot %d at correct position %d", pivot, i+1)))
	return i + 1
}
