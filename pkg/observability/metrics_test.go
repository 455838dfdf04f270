package observability_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	eng := algotrace.New(algotrace.WithLifecycleHooks(m.Hooks()))

	steps, err := eng.Generate(context.Background(), domain.BubbleSort, []int{2, 1})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	observability.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `algotrace_traces_total{operation="Bubble Sort"} 1`)
	assert.Contains(t, body, fmt.Sprintf(`algotrace_steps_total{operation="Bubble Sort"} %d`, len(steps)))
	assert.Contains(t, body, `algotrace_comparisons_total{operation="Bubble Sort"} 1`)
	assert.Contains(t, body, `algotrace_swaps_total{operation="Bubble Sort"} 1`)
	assert.Contains(t, body, `algotrace_input_size_count{operation="Bubble Sort"} 1`)
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{
		OnTraceStart: func(context.Context, *domain.TraceEvent) { order = append(order, "a-start") },
	}
	b := domain.LifecycleHooks{
		OnTraceStart:    func(context.Context, *domain.TraceEvent) { order = append(order, "b-start") },
		OnTraceComplete: func(context.Context, *domain.TraceEvent) { order = append(order, "b-done") },
	}

	eng := algotrace.New(algotrace.WithLifecycleHooks(observability.Combine(a, b)))
	_, err := eng.Generate(context.Background(), domain.QuickSort, []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"a-start", "b-start", "b-done"}, order)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	eng := algotrace.New(algotrace.WithLifecycleHooks(observability.LogHooks(logger)))
	_, err := eng.Generate(context.Background(), domain.MergeSort, []int{3, 1, 2})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "trace_complete")
	assert.Contains(t, buf.String(), `operation="Merge Sort"`)
	assert.Contains(t, buf.String(), "input_size=3")
}
