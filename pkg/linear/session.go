package linear

import (
	"fmt"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Op is an interactive operation.
type Op int

const (
	OpPush Op = iota // push or enqueue
	OpPop            // pop or dequeue
)

// ParseOp accepts "push", "enqueue", "pop" and "dequeue".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "push", "enqueue":
		return OpPush, nil
	case "pop", "dequeue":
		return OpPop, nil
	}
	return 0, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, s)
}

// Apply branches off history at cursor: it takes the array of history[cursor],
// applies one operation and returns the history truncated after cursor with
// exactly one new step appended. value is ignored for OpPop.
// Rejected operations return the original history unchanged.
func Apply(kind Kind, op Op, history []domain.Step, cursor, value, capacity int) ([]domain.Step, error) {
	if cursor < 0 || cursor >= len(history) {
		return history, fmt.Errorf("%w: %d of %d", domain.ErrStepOutOfRange, cursor, len(history))
	}
	current := history[cursor].Array

	var step domain.Step
	switch op {
	case OpPush:
		if len(current) >= capacity {
			return history, fmt.Errorf("%w (%d elements)", domain.ErrCapacityExceeded, capacity)
		}
		next := append(append([]int{}, current...), value)
		step = domain.Step{
			Array:       next,
			Comparing:   []int{len(next) - 1},
			Explanation: pushedMessage(kind, value),
		}
	case OpPop:
		if len(current) == 0 {
			return history, fmt.Errorf("%w: %s", domain.ErrEmptyStructure, kind)
		}
		v := current[removalIndex(kind, current)]
		step = domain.Step{
			Array:       remove(kind, current),
			Explanation: poppedMessage(kind, v),
		}
	default:
		return history, fmt.Errorf("unknown operation %d", op)
	}

	out := make([]domain.Step, cursor+1, cursor+2)
	copy(out, history[:cursor+1])
	return append(out, step.Clone()), nil
}

// Session keeps the history of an interactive stack or queue.
type Session struct {
	kind     Kind
	capacity int
	steps    []domain.Step
	cursor   int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCapacity overrides DefaultCapacity.
func WithCapacity(n int) SessionOption {
	return func(s *Session) {
		s.capacity = n
	}
}

// NewSession creates a session holding only the empty-structure step.
func NewSession(kind Kind, opts ...SessionOption) *Session {
	s := &Session{kind: kind, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Kind returns the session's structure kind.
func (s *Session) Kind() Kind {
	return s.kind
}

// Reset discards the history.
func (s *Session) Reset() {
	s.steps = []domain.Step{EmptyStep(s.kind)}
	s.cursor = 0
}

// Push adds v at the tail, discarding any steps after the cursor.
func (s *Session) Push(v int) (domain.Step, error) {
	return s.apply(OpPush, v)
}

// Pop removes from the tail (stack) or head (queue), discarding any steps after the cursor.
func (s *Session) Pop() (domain.Step, error) {
	return s.apply(OpPop, 0)
}

func (s *Session) apply(op Op, v int) (domain.Step, error) {
	steps, err := Apply(s.kind, op, s.steps, s.cursor, v, s.capacity)
	if err != nil {
		return domain.Step{}, err
	}
	s.steps = steps
	s.cursor = len(steps) - 1
	return steps[s.cursor], nil
}

// Seek moves the cursor, e.g. to rewind before branching off.
func (s *Session) Seek(i int) error {
	if i < 0 || i >= len(s.steps) {
		return fmt.Errorf("%w: %d of %d", domain.ErrStepOutOfRange, i, len(s.steps))
	}
	s.cursor = i
	return nil
}

// Cursor returns the current step index.
func (s *Session) Cursor() int {
	return s.cursor
}

// Current returns the step at the cursor.
func (s *Session) Current() domain.Step {
	return s.steps[s.cursor]
}

// Steps returns the full history.
func (s *Session) Steps() []domain.Step {
	return s.steps
}

// EmptyStep is the first step of every interactive history.
func EmptyStep(kind Kind) domain.Step {
	return domain.Step{
		Array:       []int{},
		Comparing:   []int{},
		Swapping:    []int{},
		Sorted:      []int{},
		Explanation: fmt.Sprintf("%s is empty", kind),
	}
}

func pushedMessage(kind Kind, v int) string {
	if kind == KindQueue {
		return fmt.Sprintf("Enqueued %d", v)
	}
	return fmt.Sprintf("Pushed %d onto the stack", v)
}

func poppedMessage(kind Kind, v int) string {
	if kind == KindQueue {
		return fmt.Sprintf("Dequeued %d", v)
	}
	return fmt.Sprintf("Popped %d from the stack", v)
}
