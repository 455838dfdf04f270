package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/observability"
)

// CreateEngine initializes an engine with standard CLI conventions:
// the given logger, debug hooks, and any extra hook sets.
func CreateEngine(logger *slog.Logger, extra ...domain.LifecycleHooks) *algotrace.Engine {
	hooks := observability.Combine(append([]domain.LifecycleHooks{createDebugHooks(logger)}, extra...)...)
	return algotrace.New(
		algotrace.WithLogger(logger),
		algotrace.WithLifecycleHooks(hooks),
	)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTraceStart: func(ctx context.Context, e *domain.TraceEvent) {
			logger.Debug("Trace Start", "operation", e.Operation, "input_size", e.InputSize)
		},
		OnTraceComplete: func(ctx context.Context, e *domain.TraceEvent) {
			logger.Debug("Trace Complete", "operation", e.Operation, "steps", e.Steps, "duration", e.Duration)
		},
	}
}
