package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/algotrace/pkg/domain"
)

const (
	MinSpeed     = 0.25
	MaxSpeed     = 4.0
	DefaultSpeed = 1.0
)

// ErrAlreadyPlaying is returned by Play while another Play is running.
var ErrAlreadyPlaying = errors.New("player is already playing")

// Player walks a trace. It is safe for concurrent use: Pause, Seek and
// SetSpeed may be called while Play runs in another goroutine.
type Player struct {
	mu       sync.Mutex
	steps    []domain.Step
	index    int
	speed    float64
	notifier Notifier
	logger   *slog.Logger
	cancel   context.CancelFunc
}

// Option defines a functional option for configuring the Player.
type Option func(*Player)

// WithSpeed sets the initial speed multiplier.
func WithSpeed(speed float64) Option {
	return func(p *Player) {
		p.speed = clampSpeed(speed)
	}
}

// WithNotifier registers a feedback sink for Play.
func WithNotifier(n Notifier) Option {
	return func(p *Player) {
		p.notifier = n
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// NewPlayer creates a player positioned on the first step.
// The player never modifies steps.
func NewPlayer(steps []domain.Step, opts ...Option) *Player {
	p := &Player{
		steps:  steps,
		speed:  DefaultSpeed,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len returns the number of steps.
func (p *Player) Len() int {
	return len(p.steps)
}

// Index returns the cursor.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Seek moves the cursor to k.
func (p *Player) Seek(k int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if k < 0 || k >= len(p.steps) {
		return fmt.Errorf("%w: %d not in [0, %d)", domain.ErrStepOutOfRange, k, len(p.steps))
	}
	p.index = k
	return nil
}

// Next advances one step. It returns false on the last step.
func (p *Player) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index >= len(p.steps)-1 {
		return false
	}
	p.index++
	return true
}

// Prev goes back one step. It returns false on the first step.
func (p *Player) Prev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index == 0 {
		return false
	}
	p.index--
	return true
}

// Reset stops playback and rewinds to the first step.
func (p *Player) Reset() {
	p.Pause()
	p.mu.Lock()
	p.index = 0
	p.mu.Unlock()
}

// Current returns the frame under the cursor. ok is false for an empty trace.
func (p *Player) Current() (frame Frame, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.steps) == 0 {
		return Frame{}, false
	}
	return p.frameLocked(), true
}

// Progress returns the cursor position as a percentage of the trace.
func (p *Player) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progressLocked()
}

// SetSpeed clamps speed to [MinSpeed, MaxSpeed] and returns the applied value.
// A running Play picks it up on its next tick.
func (p *Player) SetSpeed(speed float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speed = clampSpeed(speed)
	return p.speed
}

// Speed returns the current multiplier.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// Interval is the delay between two frames: one second at speed 0.5.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.intervalLocked()
}

// Playing reports whether Play is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Pause stops a running Play. It is a no-op otherwise.
func (p *Player) Pause() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Play shows the current frame, then advances one step per Interval until
// the last step, Pause or ctx cancellation. Playing from the last step
// starts over. It returns ctx.Err() only when ctx itself was cancelled.
func (p *Player) Play(ctx context.Context, h Handler) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	if len(p.steps) == 0 {
		p.mu.Unlock()
		return nil
	}
	if p.index >= len(p.steps)-1 {
		p.index = 0
	}
	playCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	interval := p.intervalLocked()
	frame := p.frameLocked()
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
		cancel()
	}()

	p.logger.Debug("playback started", "from", frame.Index, "steps", frame.Total, "interval", interval)
	if err := p.show(playCtx, h, frame); err != nil {
		return err
	}
	if frame.Last() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-playCtx.Done():
			p.logger.Debug("playback stopped", "at", p.Index())
			return ctx.Err()
		case <-ticker.C:
		}

		p.mu.Lock()
		if p.index < len(p.steps)-1 {
			p.index++
		}
		frame = p.frameLocked()
		next := p.intervalLocked()
		p.mu.Unlock()

		if next != interval {
			interval = next
			ticker.Reset(interval)
		}
		if err := p.show(playCtx, h, frame); err != nil {
			return err
		}
		if frame.Last() {
			p.logger.Debug("playback finished", "steps", frame.Total)
			return nil
		}
	}
}

func (p *Player) show(ctx context.Context, h Handler, frame Frame) error {
	if p.notifier != nil {
		if e, ok := EventFor(p.steps, frame.Index); ok {
			p.notifier.Notify(e)
		}
	}
	if err := h.Show(ctx, frame); err != nil {
		return fmt.Errorf("failed to show step %d: %w", frame.Index, err)
	}
	return nil
}

func (p *Player) frameLocked() Frame {
	return Frame{
		Index:    p.index,
		Total:    len(p.steps),
		Progress: p.progressLocked(),
		Step:     p.steps[p.index],
	}
}

func (p *Player) progressLocked() float64 {
	switch len(p.steps) {
	case 0:
		return 0
	case 1:
		return 100
	}
	return float64(p.index) / float64(len(p.steps)-1) * 100
}

func (p *Player) intervalLocked() time.Duration {
	return time.Duration(float64(time.Second) / (p.speed * 2))
}

func clampSpeed(speed float64) float64 {
	return max(MinSpeed, min(speed, MaxSpeed))
}
