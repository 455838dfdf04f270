package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Combine fans every event out to all hook sets, in order.
// Nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTraceStart: func(ctx context.Context, e *domain.TraceEvent) {
			for _, h := range sets {
				if h.OnTraceStart != nil {
					h.OnTraceStart(ctx, e)
				}
			}
		},
		OnTraceComplete: func(ctx context.Context, e *domain.TraceEvent) {
			for _, h := range sets {
				if h.OnTraceComplete != nil {
					h.OnTraceComplete(ctx, e)
				}
			}
		},
	}
}

// LogHooks logs every completed trace at info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTraceComplete: func(ctx context.Context, e *domain.TraceEvent) {
			logger.InfoContext(ctx, "trace_complete",
				"operation", e.Operation,
				"input_size", e.InputSize,
				"steps", e.Steps,
				"comparisons", e.Counters.Comparisons,
				"swaps", e.Counters.Swaps,
				"duration", e.Duration,
			)
		},
	}
}
