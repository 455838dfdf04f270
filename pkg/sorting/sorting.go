// Package sorting implements the step-emitting sorting engines.
//
// Each engine sorts the working array it is given in place and records a
// step for every comparison and every write it performs, in true execution
// order. Engines never see the caller's array: the dispatcher hands them a
// private copy and wraps their output with the initial and final steps.
package sorting

import (
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
)

// Func is the contract shared by every sorting engine.
type Func func(array []int, rec *trace.Recorder)

// frame builds a step over the current working array.
// Nil index sets are normalised to empty ones by the recorder.
func frame(array []int, comparing, swapping, sorted []int, explanation string) domain.Step {
	return domain.Step{
		Array:       array,
		Comparing:   comparing,
		Swapping:    swapping,
		Sorted:      sorted,
		Explanation: explanation,
	}
}

func idx(i ...int) []int {
	return i
}
