package playback_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []domain.Step {
	steps := make([]domain.Step, n)
	for i := range steps {
		steps[i] = domain.Step{Array: []int{i}, Comparisons: i}
	}
	return steps
}

type recorder struct {
	mu      sync.Mutex
	indices []int
}

func (r *recorder) Show(_ context.Context, f playback.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indices = append(r.indices, f.Index)
	return nil
}

func (r *recorder) seen() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.indices...)
}

func TestPlayer_Navigation(t *testing.T) {
	p := playback.NewPlayer(numbered(5))

	assert.Equal(t, 5, p.Len())
	assert.False(t, p.Prev())
	assert.True(t, p.Next())
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 25.0, p.Progress())

	require.NoError(t, p.Seek(4))
	assert.False(t, p.Next())
	assert.Equal(t, 100.0, p.Progress())

	frame, ok := p.Current()
	require.True(t, ok)
	assert.True(t, frame.Last())
	assert.Equal(t, []int{4}, frame.Step.Array)

	assert.ErrorIs(t, p.Seek(5), domain.ErrStepOutOfRange)
	assert.ErrorIs(t, p.Seek(-1), domain.ErrStepOutOfRange)
	assert.Equal(t, 4, p.Index(), "failed seek must not move the cursor")

	p.Reset()
	assert.Equal(t, 0, p.Index())
}

func TestPlayer_Empty(t *testing.T) {
	p := playback.NewPlayer(nil)
	_, ok := p.Current()
	assert.False(t, ok)
	assert.Zero(t, p.Progress())
	assert.NoError(t, p.Play(context.Background(), &recorder{}))
}

func TestPlayer_SpeedAndInterval(t *testing.T) {
	p := playback.NewPlayer(numbered(2))
	assert.Equal(t, 500*time.Millisecond, p.Interval())

	assert.Equal(t, 2.0, p.SetSpeed(2))
	assert.Equal(t, 250*time.Millisecond, p.Interval())

	assert.Equal(t, playback.MaxSpeed, p.SetSpeed(10))
	assert.Equal(t, 125*time.Millisecond, p.Interval())

	assert.Equal(t, playback.MinSpeed, p.SetSpeed(0))
	assert.Equal(t, 2*time.Second, p.Interval())
}

func TestPlayer_PlayToEnd(t *testing.T) {
	p := playback.NewPlayer(numbered(4), playback.WithSpeed(playback.MaxSpeed))
	rec := &recorder{}

	require.NoError(t, p.Play(context.Background(), rec))
	assert.Equal(t, []int{0, 1, 2, 3}, rec.seen())
	assert.False(t, p.Playing())

	// Playing again from the end starts over.
	rec2 := &recorder{}
	require.NoError(t, p.Play(context.Background(), rec2))
	assert.Equal(t, []int{0, 1, 2, 3}, rec2.seen())
}

func TestPlayer_PauseFromHandler(t *testing.T) {
	p := playback.NewPlayer(numbered(10), playback.WithSpeed(playback.MaxSpeed))
	var shown []int
	h := playback.HandlerFunc(func(_ context.Context, f playback.Frame) error {
		shown = append(shown, f.Index)
		if f.Index == 1 {
			p.Pause()
		}
		return nil
	})

	require.NoError(t, p.Play(context.Background(), h))
	assert.Equal(t, []int{0, 1}, shown)
	assert.Equal(t, 1, p.Index())
	assert.False(t, p.Playing())
}

func TestPlayer_ContextCancel(t *testing.T) {
	p := playback.NewPlayer(numbered(100), playback.WithSpeed(playback.MaxSpeed))
	ctx, cancel := context.WithCancel(context.Background())

	h := playback.HandlerFunc(func(_ context.Context, f playback.Frame) error {
		if f.Index == 2 {
			cancel()
		}
		return nil
	})

	err := p.Play(ctx, h)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, p.Index())
}

func TestPlayer_AlreadyPlaying(t *testing.T) {
	p := playback.NewPlayer(numbered(3))
	started := make(chan struct{})
	release := make(chan struct{})

	h := playback.HandlerFunc(func(ctx context.Context, f playback.Frame) error {
		if f.Index == 0 {
			close(started)
			<-release
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- p.Play(context.Background(), h) }()

	<-started
	assert.True(t, p.Playing())
	assert.ErrorIs(t, p.Play(context.Background(), &recorder{}), playback.ErrAlreadyPlaying)

	p.Pause()
	close(release)
	require.NoError(t, <-done)
}

func TestPlayer_Notifier(t *testing.T) {
	steps, err := algotrace.GenerateSteps(domain.BubbleSort, []int{2, 1})
	require.NoError(t, err)

	var mu sync.Mutex
	var kinds []playback.EventKind
	n := playback.NotifierFunc(func(e playback.Event) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, e.Kind)
	})

	p := playback.NewPlayer(steps, playback.WithSpeed(playback.MaxSpeed), playback.WithNotifier(n))
	require.NoError(t, p.Play(context.Background(), &recorder{}))

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, kinds, playback.EventCompare)
	assert.Contains(t, kinds, playback.EventSwap)
	assert.Contains(t, kinds, playback.EventSorted)
	assert.Equal(t, playback.EventComplete, kinds[len(kinds)-1])
}
