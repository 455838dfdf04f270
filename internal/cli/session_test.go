package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	indices []int
	shown   chan int
}

func newRecorder() *recorder {
	return &recorder{shown: make(chan int, 64)}
}

func (r *recorder) Show(ctx context.Context, f playback.Frame) error {
	r.mu.Lock()
	r.indices = append(r.indices, f.Index)
	r.mu.Unlock()
	r.shown <- f.Index
	return nil
}

func (r *recorder) seen() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int{}, r.indices...)
}

func steps(n int) []domain.Step {
	out := make([]domain.Step, n)
	for i := range out {
		out[i] = domain.Step{Explanation: "step"}
	}
	return out
}

func TestParseKey(t *testing.T) {
	assert.Equal(t, CmdToggle, ParseKey(' '))
	assert.Equal(t, CmdNext, ParseKey('n'))
	assert.Equal(t, CmdPrev, ParseKey('b'))
	assert.Equal(t, CmdFaster, ParseKey('+'))
	assert.Equal(t, CmdSlower, ParseKey('-'))
	assert.Equal(t, CmdReset, ParseKey('r'))
	assert.Equal(t, CmdQuit, ParseKey('q'))
	assert.Equal(t, CmdQuit, ParseKey(3))
	assert.Equal(t, CmdNone, ParseKey('x'))
}

func TestSession_ManualStepping(t *testing.T) {
	rec := newRecorder()
	s := &Session{
		Player:  playback.NewPlayer(steps(4)),
		Handler: rec,
		Keys:    strings.NewReader("nnbxq"),
	}
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []int{0, 1, 2, 1}, rec.seen())
}

func TestSession_BoundsAndReset(t *testing.T) {
	rec := newRecorder()
	s := &Session{
		Player:  playback.NewPlayer(steps(2)),
		Handler: rec,
		Keys:    strings.NewReader("bnnr"),
	}
	// Keys run out without a quit; Run returns at EOF.
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []int{0, 1, 0}, rec.seen())
}

func TestSession_SpeedKeys(t *testing.T) {
	p := playback.NewPlayer(steps(2))
	s := &Session{Player: p, Handler: newRecorder(), Keys: strings.NewReader("+++-q")}
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, playback.DefaultSpeed+2*speedStep, p.Speed())
}

func TestSession_TogglePlaysToEnd(t *testing.T) {
	pr, pw := io.Pipe()
	rec := newRecorder()
	p := playback.NewPlayer(steps(3), playback.WithSpeed(playback.MaxSpeed))
	s := &Session{Player: p, Handler: rec, Keys: pr}

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	require.Equal(t, 0, <-rec.shown)
	_, err := pw.Write([]byte(" "))
	require.NoError(t, err)

	deadline := time.After(5 * time.Second)
	for last := false; !last; {
		select {
		case idx := <-rec.shown:
			last = idx == 2
		case <-deadline:
			t.Fatal("playback did not reach the last step")
		}
	}

	_, err = pw.Write([]byte("q"))
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.NoError(t, pw.Close())
	assert.False(t, p.Playing())
}

func TestSession_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{Player: playback.NewPlayer(steps(2)), Handler: newRecorder(), Keys: pr}

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := Bell{Writer: &buf}
	b.Notify(playback.Event{Kind: playback.EventSwap})
	assert.Empty(t, buf.String())
	b.Notify(playback.Event{Kind: playback.EventComplete})
	assert.Equal(t, "\a", buf.String())
}

func TestCRLFWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := crlfWriter{&buf}.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", buf.String())
}
