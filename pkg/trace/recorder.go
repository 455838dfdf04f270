// Package trace records the ordered step sequence of one algorithm run.
//
// A Recorder owns the operation counters for the run and stamps them onto
// every step it records. Recording always stores a private copy of the
// step's slices and tree, so later mutation of an engine's working state can
// never leak into an already emitted step.
package trace

import "github.com/aretw0/algotrace/pkg/domain"

// Recorder is an append-only collector of steps. It is not safe for
// concurrent use; one Recorder belongs to one trace generation.
type Recorder struct {
	steps    []domain.Step
	counters domain.Counters
}

// NewRecorder creates an empty recorder with zeroed counters.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Compare counts one comparison.
func (r *Recorder) Compare() {
	r.counters.Comparisons++
}

// Swap counts one swap or write.
func (r *Recorder) Swap() {
	r.counters.Swaps++
}

// Counters returns the counters accumulated so far.
func (r *Recorder) Counters() domain.Counters {
	return r.counters
}

// Record appends a snapshot of s stamped with the current counters.
func (r *Recorder) Record(s domain.Step) {
	snap := s.Clone()
	snap.Comparisons = r.counters.Comparisons
	snap.Swaps = r.counters.Swaps
	r.steps = append(r.steps, snap)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Steps returns the recorded sequence. The caller takes ownership.
func (r *Recorder) Steps() []domain.Step {
	return r.steps
}

// Last returns the most recent step, if any.
func (r *Recorder) Last() (domain.Step, bool) {
	if len(r.steps) == 0 {
		return domain.Step{}, false
	}
	return r.steps[len(r.steps)-1], true
}

// Range returns the indices [0, n).
func Range(n int) []int {
	return Span(0, n)
}

// Span returns the indices [from, to).
func Span(from, to int) []int {
	if to <= from {
		return []int{}
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
