package playback

import (
	"sync"
	"time"

	"github.com/aretw0/algotrace/pkg/domain"
)

// EventKind classifies feedback for a shown step.
type EventKind string

const (
	EventCompare  EventKind = "compare"
	EventSwap     EventKind = "swap"
	EventSorted   EventKind = "sorted"
	EventComplete EventKind = "complete"
)

// Event is feedback derived from a frame.
type Event struct {
	Kind    EventKind
	Index   int
	Indices []int
}

// Notifier receives feedback events. Implementations must not block.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// EventFor derives the event of steps[idx]. Newly sorted indices are found
// against steps[idx-1]. It returns false when the step carries nothing to signal.
func EventFor(steps []domain.Step, idx int) (Event, bool) {
	if idx < 0 || idx >= len(steps) {
		return Event{}, false
	}
	s := steps[idx]
	switch {
	case idx == len(steps)-1:
		return Event{Kind: EventComplete, Index: idx}, true
	case len(s.Swapping) > 0:
		return Event{Kind: EventSwap, Index: idx, Indices: s.Swapping}, true
	case len(s.Comparing) > 0:
		return Event{Kind: EventCompare, Index: idx, Indices: s.Comparing}, true
	case idx > 0 && len(s.Sorted) > len(steps[idx-1].Sorted):
		return Event{Kind: EventSorted, Index: idx, Indices: s.Sorted[len(steps[idx-1].Sorted):]}, true
	}
	return Event{}, false
}

// DefaultDebounce is the minimum gap between two events of the same kind.
const DefaultDebounce = 100 * time.Millisecond

// Debounced drops events that arrive within interval of the previous event
// of the same kind. Complete is never dropped.
type Debounced struct {
	next     Notifier
	interval time.Duration

	mu   sync.Mutex
	last map[EventKind]time.Time
}

// Debounce wraps next.
func Debounce(next Notifier, interval time.Duration) *Debounced {
	return &Debounced{
		next:     next,
		interval: interval,
		last:     make(map[EventKind]time.Time),
	}
}

func (d *Debounced) Notify(e Event) {
	d.mu.Lock()
	now := time.Now()
	if e.Kind != EventComplete {
		if last, ok := d.last[e.Kind]; ok && now.Sub(last) < d.interval {
			d.mu.Unlock()
			return
		}
	}
	d.last[e.Kind] = now
	d.mu.Unlock()

	d.next.Notify(e)
}
