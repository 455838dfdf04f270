/*
Package algotrace is a deterministic step-trace engine for classic sorting
algorithms and basic data structures.

Every engine runs an algorithm against an input and records an ordered,
replayable sequence of steps. Each step captures the full state needed to
draw one frame: an array snapshot, the indices being compared or written,
the indices known to be sorted, cumulative counters and a narration line.
Tree and graph operations add a tree snapshot or a graph overlay.

# Concept

The engine is a pure computation library. Callers (a CLI, the HTTP server,
an MCP client or a test) supply validated input, receive the step slice and
walk it forward and backward as they like. Seeking never re-runs an algorithm.

# Key Features

  - Deterministic Traces: the same input always yields the same steps.
  - Immutable Snapshots: mutating one step never changes another.
  - Exact Replay: every comparison and write is recorded in execution order.
  - Closed Dispatch: algorithms are an enumeration mapped through a lookup table.

# Usage

	steps, err := algotrace.GenerateSteps(domain.BubbleSort, []int{3, 1, 2})
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range steps {
		fmt.Println(s.Explanation, s.Array)
	}

Tree and graph operations are interactive rather than single-shot and are
reached through an Engine:

	eng := algotrace.New(algotrace.WithLogger(logger))
	root, steps := eng.InsertNode(ctx, nil, 50)
	root, more := eng.InsertNode(ctx, root, 30)
*/
package algotrace
