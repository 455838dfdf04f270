package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTraceStart    EventType = "trace_start"
	EventTraceComplete EventType = "trace_complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TraceEvent describes one trace generation.
type TraceEvent struct {
	EventBase
	// Operation is the algorithm display name or the tree/graph operation ("bfs", "tree_insert").
	Operation string `json:"operation"`
	InputSize int    `json:"input_size"`

	// Set on completion only.
	Steps    int           `json:"steps,omitempty"`
	Counters Counters      `json:"counters"`
	Duration time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTraceStart    func(context.Context, *TraceEvent)
	OnTraceComplete func(context.Context, *TraceEvent)
}
