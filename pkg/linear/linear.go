// Package linear simulates stacks and queues as step traces.
//
// Two modes share the same step format: full-trace replay (Stack, Queue),
// which pushes every input value and then drains the structure, and the
// interactive Session, which applies one push or pop at a time on top of a
// rewindable history.
package linear

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
)

// Kind selects the removal discipline.
type Kind int

const (
	KindStack Kind = iota // LIFO, removes from the tail
	KindQueue             // FIFO, removes from the head
)

// DefaultCapacity is the interactive capacity limit.
const DefaultCapacity = 10

// KindOf maps a linear Algorithm to its Kind.
func KindOf(a domain.Algorithm) (Kind, error) {
	switch a {
	case domain.StackOps:
		return KindStack, nil
	case domain.QueueOps:
		return KindQueue, nil
	}
	return 0, fmt.Errorf("%w: %s is not a linear structure", domain.ErrUnknownAlgorithm, a)
}

// ParseKind accepts "stack" or "queue".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "stack":
		return KindStack, nil
	case "queue":
		return KindQueue, nil
	}
	return 0, fmt.Errorf("%w: %q is not a linear structure", domain.ErrUnknownAlgorithm, s)
}

// String returns "Stack" or "Queue".
func (k Kind) String() string {
	if k == KindQueue {
		return "Queue"
	}
	return "Stack"
}

// Stack pushes every value in order, then pops until empty.
// Each pop is two steps: a peek at the top and the removal.
func Stack(values []int, rec *trace.Recorder) {
	run(KindStack, values, rec)
}

// Queue enqueues every value in order, then dequeues until empty.
// Each dequeue is two steps: a peek at the front and the removal.
func Queue(values []int, rec *trace.Recorder) {
	run(KindQueue, values, rec)
}

func run(kind Kind, values []int, rec *trace.Recorder) {
	var items []int

	for _, v := range values {
		items = append(items, v)
		rec.Record(domain.Step{
			Array:       items,
			Comparing:   []int{len(items) - 1},
			Explanation: addedMessage(kind, v),
		})
	}

	for len(items) > 0 {
		at := removalIndex(kind, items)
		v := items[at]
		rec.Record(domain.Step{
			Array:       items,
			Comparing:   []int{at},
			Explanation: peekMessage(kind, v),
		})

		items = remove(kind, items)
		rec.Record(domain.Step{
			Array:       items,
			Explanation: removedMessage(kind, v),
		})
	}
}

func removalIndex(kind Kind, items []int) int {
	if kind == KindQueue {
		return 0
	}
	return len(items) - 1
}

// remove returns a fresh slice without the removed element.
func remove(kind Kind, items []int) []int {
	if kind == KindQueue {
		return append([]int{}, items[1:]...)
	}
	return append([]int{}, items[:len(items)-1]...)
}

func addedMessage(kind Kind, v int) string {
	if kind == KindQueue {
		return fmt.Sprintf("Enqueue(%d): Added %d to the rear", v, v)
	}
	return fmt.Sprintf("Push(%d): Added %d to the top of the stack", v, v)
}

func peekMessage(kind Kind, v int) string {
	if kind == KindQueue {
		return fmt.Sprintf("Front: First element is %d", v)
	}
	return fmt.Sprintf("Peek: Top element is %d", v)
}

func removedMessage(kind Kind, v int) string {
	if kind == KindQueue {
		return fmt.Sprintf("Dequeue(): Removed %d from the front", v)
	}
	return fmt.Sprintf("Pop(): Removed %d from the top", v)
}
