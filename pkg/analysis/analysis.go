// Package analysis measures traces: operation counts, the distance from a
// worst-case estimate and a sampled operation curve for plotting.
package analysis

import (
	"fmt"
	"math"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/domain"
)

// Theoretical estimates the worst-case operation count of alg on n elements.
// The n·log2 n constants are empirical and only meant for plotting.
func Theoretical(alg domain.Algorithm, n int) float64 {
	if n <= 0 {
		return 0
	}
	fn := float64(n)
	switch alg {
	case domain.BubbleSort, domain.InsertionSort, domain.SelectionSort:
		return fn * (fn - 1) / 2
	case domain.MergeSort:
		return 1.5 * fn * math.Log2(fn)
	case domain.QuickSort:
		return 1.8 * fn * math.Log2(fn)
	case domain.StackOps, domain.QueueOps:
		return 2 * fn
	}
	return 0
}

// Summary is the measured cost of one trace.
type Summary struct {
	Algorithm   domain.Algorithm `json:"algorithm" yaml:"algorithm"`
	InputSize   int              `json:"inputSize" yaml:"inputSize"`
	Steps       int              `json:"steps" yaml:"steps"`
	Comparisons int              `json:"comparisons" yaml:"comparisons"`
	Swaps       int              `json:"swaps" yaml:"swaps"`
	Theoretical float64          `json:"theoretical" yaml:"theoretical"`
	// Efficiency is actual work as a percentage of the estimate, capped at 100.
	Efficiency int `json:"efficiency" yaml:"efficiency"`
}

// Operations is comparisons plus swaps.
func (s Summary) Operations() int {
	return s.Comparisons + s.Swaps
}

// Summarize reads the final counters of steps. inputSize is the length of
// the traced array.
func Summarize(alg domain.Algorithm, inputSize int, steps []domain.Step) Summary {
	s := Summary{
		Algorithm:   alg,
		InputSize:   inputSize,
		Steps:       len(steps),
		Theoretical: Theoretical(alg, inputSize),
	}
	if len(steps) > 0 {
		last := steps[len(steps)-1]
		s.Comparisons = last.Comparisons
		s.Swaps = last.Swaps
	}
	if s.Theoretical > 0 {
		ratio := math.Round(float64(s.Operations()) / s.Theoretical * 100)
		s.Efficiency = int(min(100, ratio))
	}
	return s
}

// Series samples comparisons+swaps across steps into at most width points,
// always keeping the first and last step.
func Series(steps []domain.Step, width int) []float64 {
	if len(steps) == 0 || width <= 0 {
		return nil
	}
	if width == 1 {
		last := steps[len(steps)-1]
		return []float64{float64(last.Comparisons + last.Swaps)}
	}
	n := min(width, len(steps))
	out := make([]float64, n)
	for i := range out {
		idx := i
		if n < len(steps) {
			idx = i * (len(steps) - 1) / (n - 1)
		}
		out[i] = float64(steps[idx].Comparisons + steps[idx].Swaps)
	}
	return out
}

// TheoreticalSeries spreads the estimate linearly over points samples.
func TheoreticalSeries(alg domain.Algorithm, n, points int) []float64 {
	if points <= 0 {
		return nil
	}
	total := Theoretical(alg, n)
	out := make([]float64, points)
	for i := range out {
		progress := 1.0
		if points > 1 {
			progress = float64(i) / float64(points-1)
		}
		out[i] = math.Floor(total * progress)
	}
	return out
}

// Result pairs a trace with its summary.
type Result struct {
	Summary Summary       `json:"summary" yaml:"summary"`
	Steps   []domain.Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Comparison is two algorithms run on the same input.
type Comparison struct {
	Input []int  `json:"input" yaml:"input"`
	Left  Result `json:"left" yaml:"left"`
	Right Result `json:"right" yaml:"right"`
}

// Winner returns the algorithm with fewer operations, or false on a tie.
func (c Comparison) Winner() (domain.Algorithm, bool) {
	l, r := c.Left.Summary.Operations(), c.Right.Summary.Operations()
	switch {
	case l < r:
		return c.Left.Summary.Algorithm, true
	case r < l:
		return c.Right.Summary.Algorithm, true
	}
	return 0, false
}

// Compare runs a and b over independent copies of input.
func Compare(a, b domain.Algorithm, input []int) (Comparison, error) {
	left, err := run(a, input)
	if err != nil {
		return Comparison{}, err
	}
	right, err := run(b, input)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{
		Input: append([]int{}, input...),
		Left:  left,
		Right: right,
	}, nil
}

func run(alg domain.Algorithm, input []int) (Result, error) {
	steps, err := algotrace.GenerateSteps(alg, input)
	if err != nil {
		return Result{}, fmt.Errorf("failed to trace %s: %w", alg, err)
	}
	return Result{Summary: Summarize(alg, len(input), steps), Steps: steps}, nil
}
