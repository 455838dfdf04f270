package playback

import (
	"context"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Frame is one step as seen by a Handler.
type Frame struct {
	Index    int         `json:"index"`
	Total    int         `json:"total"`
	Progress float64     `json:"progress"`
	Step     domain.Step `json:"step"`
}

// Last reports whether the frame shows the final step.
func (f Frame) Last() bool {
	return f.Index == f.Total-1
}

// Handler defines the strategy for presenting frames.
// This allows switching between Text (terminal) and JSON (structured) output.
type Handler interface {
	Show(ctx context.Context, frame Frame) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, frame Frame) error

func (f HandlerFunc) Show(ctx context.Context, frame Frame) error {
	return f(ctx, frame)
}
