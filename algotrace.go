package algotrace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/graph"
	"github.com/aretw0/algotrace/pkg/linear"
	"github.com/aretw0/algotrace/pkg/sorting"
	"github.com/aretw0/algotrace/pkg/trace"
	"github.com/aretw0/algotrace/pkg/tree"
)

// engines maps every Algorithm to its implementation.
// Each entry receives a private copy of the caller's input.
var engines = map[domain.Algorithm]func([]int, *trace.Recorder){
	domain.BubbleSort:    sorting.Bubble,
	domain.MergeSort:     sorting.Merge,
	domain.QuickSort:     sorting.Quick,
	domain.InsertionSort: sorting.Insertion,
	domain.SelectionSort: sorting.Selection,
	domain.StackOps:      linear.Stack,
	domain.QueueOps:      linear.Queue,
}

// GenerateSteps runs alg over a copy of initial and returns the full trace,
// bracketed by an initial-state step and a final step.
// For sorting algorithms the final step marks every index sorted.
func GenerateSteps(alg domain.Algorithm, initial []int) ([]domain.Step, error) {
	run, ok := engines[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}

	array := append([]int{}, initial...)
	rec := trace.NewRecorder()

	if alg.IsLinear() {
		kind, _ := linear.KindOf(alg)
		rec.Record(domain.Step{Explanation: fmt.Sprintf("Initial state: %s is initially empty", kind)})
		run(array, rec)
		rec.Record(domain.Step{Explanation: fmt.Sprintf("%s operations complete", kind)})
		return rec.Steps(), nil
	}

	rec.Record(domain.Step{Array: array, Explanation: "Initial state"})
	run(array, rec)
	rec.Record(domain.Step{
		Array:       array,
		Sorted:      trace.Range(len(array)),
		Explanation: "Sorting complete!",
	})
	return rec.Steps(), nil
}

// Engine is the high-level entry point for the library.
// It wraps the dispatcher and the tree/graph engines with logging and lifecycle hooks.
type Engine struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	treeOpts []tree.Option
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTreeWidth sets the layout width used by tree inserts.
func WithTreeWidth(width float64) Option {
	return func(e *Engine) {
		e.treeOpts = append(e.treeOpts, tree.WithWidth(width))
	}
}

// WithIDGenerator sets the tree node ID generator.
func WithIDGenerator(gen tree.IDGenerator) Option {
	return func(e *Engine) {
		e.treeOpts = append(e.treeOpts, tree.WithIDGenerator(gen))
	}
}

// New creates an Engine. Without options it logs nowhere and has no hooks.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate is GenerateSteps with logging and hooks.
func (e *Engine) Generate(ctx context.Context, alg domain.Algorithm, initial []int) ([]domain.Step, error) {
	done := e.begin(ctx, alg.String(), len(initial))
	steps, err := GenerateSteps(alg, initial)
	if err != nil {
		e.logger.Warn("trace generation rejected", "algorithm", alg, "err", err)
		return nil, err
	}
	done(steps)
	return steps, nil
}

// InsertNode inserts value into a copy of root and returns the new root and its steps.
func (e *Engine) InsertNode(ctx context.Context, root *domain.TreeNode, value int) (*domain.TreeNode, []domain.Step) {
	done := e.begin(ctx, "tree_insert", tree.Size(root))
	rec := trace.NewRecorder()
	newRoot := tree.Insert(root, value, rec, e.treeOpts...)
	done(rec.Steps())
	return newRoot, rec.Steps()
}

// BuildTree inserts values one by one into an empty tree.
func (e *Engine) BuildTree(ctx context.Context, values []int) (*domain.TreeNode, []domain.Step) {
	done := e.begin(ctx, "tree_build", len(values))
	rec := trace.NewRecorder()
	root := tree.Build(values, rec, e.treeOpts...)
	done(rec.Steps())
	return root, rec.Steps()
}

// SearchTree reports whether value is in the tree, with the steps of the walk.
func (e *Engine) SearchTree(ctx context.Context, root *domain.TreeNode, value int) (bool, []domain.Step) {
	done := e.begin(ctx, "tree_search", tree.Size(root))
	rec := trace.NewRecorder()
	found := tree.Search(root, value, rec)
	done(rec.Steps())
	return found, rec.Steps()
}

// TraverseTree walks the tree in the given order.
func (e *Engine) TraverseTree(ctx context.Context, root *domain.TreeNode, order domain.TraversalOrder) []domain.Step {
	done := e.begin(ctx, "tree_traverse", tree.Size(root))
	rec := trace.NewRecorder()
	tree.Traverse(root, order, rec)
	done(rec.Steps())
	return rec.Steps()
}

// BFS runs a breadth-first traversal from start.
func (e *Engine) BFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error) {
	return e.traverse(ctx, "bfs", g, func(rec *trace.Recorder) error {
		return graph.BFS(g, start, rec)
	})
}

// DFS runs a depth-first traversal from start.
func (e *Engine) DFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error) {
	return e.traverse(ctx, "dfs", g, func(rec *trace.Recorder) error {
		return graph.DFS(g, start, rec)
	})
}

// ShortestPath finds the unweighted shortest path between start and end.
// The path is nil when end is unreachable.
func (e *Engine) ShortestPath(ctx context.Context, g *domain.GraphData, start, end string) ([]string, []domain.Step, error) {
	var path []string
	steps, err := e.traverse(ctx, "shortest_path", g, func(rec *trace.Recorder) error {
		var err error
		path, err = graph.ShortestPath(g, start, end, rec)
		return err
	})
	return path, steps, err
}

func (e *Engine) traverse(ctx context.Context, op string, g *domain.GraphData, fn func(*trace.Recorder) error) ([]domain.Step, error) {
	size := 0
	if g != nil {
		size = len(g.Nodes)
	}
	done := e.begin(ctx, op, size)
	rec := trace.NewRecorder()
	if err := fn(rec); err != nil {
		e.logger.Warn("graph operation rejected", "operation", op, "err", err)
		return nil, err
	}
	done(rec.Steps())
	return rec.Steps(), nil
}

// begin fires OnTraceStart and returns the completion callback.
func (e *Engine) begin(ctx context.Context, op string, size int) func([]domain.Step) {
	started := time.Now()
	if e.hooks.OnTraceStart != nil {
		e.hooks.OnTraceStart(ctx, &domain.TraceEvent{
			EventBase: domain.EventBase{Timestamp: started, Type: domain.EventTraceStart},
			Operation: op,
			InputSize: size,
		})
	}

	return func(steps []domain.Step) {
		var counters domain.Counters
		if len(steps) > 0 {
			last := steps[len(steps)-1]
			counters = domain.Counters{Comparisons: last.Comparisons, Swaps: last.Swaps}
		}
		elapsed := time.Since(started)
		e.logger.Debug("trace generated",
			"operation", op,
			"input_size", size,
			"steps", len(steps),
			"comparisons", counters.Comparisons,
			"swaps", counters.Swaps,
			"duration", elapsed,
		)
		if e.hooks.OnTraceComplete != nil {
			e.hooks.OnTraceComplete(ctx, &domain.TraceEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTraceComplete},
				Operation: op,
				InputSize: size,
				Steps:     len(steps),
				Counters:  counters,
				Duration:  elapsed,
			})
		}
	}
}
