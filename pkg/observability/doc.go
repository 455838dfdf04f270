/*
Package observability turns engine lifecycle hooks into logs and Prometheus
metrics.

Hooks are plain domain.LifecycleHooks values, so several sinks can be
combined and handed to algotrace.WithLifecycleHooks:

	m := observability.NewMetrics(registry)
	hooks := observability.Combine(m.Hooks(), observability.LogHooks(logger))
	eng := algotrace.New(algotrace.WithLifecycleHooks(hooks))
*/
package observability
