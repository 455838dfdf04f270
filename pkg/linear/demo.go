package linear

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
)

// demoValues are pushed at the start of the scripted demo.
var demoValues = []int{10, 25, 5, 40}

const demoLate = 99

// Demo records the scripted walkthrough: push four values, remove one,
// push one more, then remove everything.
func Demo(kind Kind, rec *trace.Recorder) {
	var items []int
	add := func(explanation string) {
		rec.Record(domain.Step{Array: items, Explanation: explanation})
	}
	verb := "Push"
	if kind == KindQueue {
		verb = "Enqueue"
	}

	add("Starting Demo...")

	for _, v := range demoValues {
		items = append(items, v)
		add(fmt.Sprintf("%s %d", verb, v))
	}

	v := items[removalIndex(kind, items)]
	items = remove(kind, items)
	if kind == KindQueue {
		add(fmt.Sprintf("Dequeue %d (FIFO - First In First Out)", v))
	} else {
		add(fmt.Sprintf("Pop %d (LIFO - Last In First Out)", v))
	}

	items = append(items, demoLate)
	add(fmt.Sprintf("%s %d", verb, demoLate))

	for len(items) > 0 {
		v := items[removalIndex(kind, items)]
		items = remove(kind, items)
		if kind == KindQueue {
			add(fmt.Sprintf("Dequeue %d", v))
		} else {
			add(fmt.Sprintf("Pop %d", v))
		}
	}

	add("Demo Complete")
}
