package sorting

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/trace"
)

// Merge is a top-down merge sort. Ties prefer the left run, which keeps it stable.
// Every placement, including draining leftover runs, is recorded and counted as a swap.
func Merge(array []int, rec *trace.Recorder) {
	m := merger{array: array, rec: rec}
	m.sort(0, len(array)-1)
}

type merger struct {
	array []int
	rec   *trace.Recorder
}

func (m *merger) sort(l, r int) {
	if l >= r {
		return
	}
	mid := l + (r-l)/2

	m.rec.Record(frame(m.array, nil, nil, nil,
		fmt.Sprintf("Dividing array from index %d to %d", l, r)))

	m.sort(l, mid)
	m.sort(mid+1, r)
	m.merge(l, mid, r)
}

func (m *merger) merge(l, mid, r int) {
	left := append([]int(nil), m.array[l:mid+1]...)
	right := append([]int(nil), m.array[mid+1:r+1]...)

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		m.rec.Compare()
		m.rec.Record(frame(m.array, idx(l+i, mid+1+j), nil, nil,
			fmt.Sprintf("Comparing left subarray value %d with right subarray value %d", left[i], right[j])))

		if left[i] <= right[j] {
			m.place(k, left[i], "Placing %d at index %d")
			i++
		} else {
			m.place(k, right[j], "Placing %d at index %d")
			j++
		}
		k++
	}

	for ; i < len(left); i, k = i+1, k+1 {
		m.place(k, left[i], "Placing remaining %d at index %d")
	}
	for ; j < len(right); j, k = j+1, k+1 {
		m.place(k, right[j], "Placing remaining %d at index %d")
	}
}

func (m *merger) place(k, value int, format string) {
	m.array[k] = value
	m.rec.Swap()
	m.rec.Record(frame(m.array, nil, idx(k), nil, fmt.Sprintf(format, value, k)))
}
