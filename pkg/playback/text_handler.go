package playback

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/muesli/termenv"
)

// Bar colours, by precedence: sorted, swapping, comparing, idle.
const (
	ColorSorted    = "#10b981"
	ColorSwapping  = "#ef4444"
	ColorComparing = "#f59e0b"
	ColorIdle      = "#14b8a6"
	ColorMuted     = "#6b7280"
)

// DefaultBarWidth is the length of the bar drawn for the largest value.
const DefaultBarWidth = 40

// TextHandler draws frames as horizontal bars for terminals.
type TextHandler struct {
	Writer   io.Writer
	BarWidth int
	// Clear redraws in place instead of appending frames.
	Clear bool

	out *termenv.Output
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithProfile forces a colour profile. termenv.Ascii disables colour.
func WithProfile(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.out = termenv.NewOutput(h.Writer, termenv.WithProfile(p))
	}
}

// WithBarWidth sets the bar length of the largest value.
func WithBarWidth(width int) TextHandlerOption {
	return func(h *TextHandler) {
		if width > 0 {
			h.BarWidth = width
		}
	}
}

// WithClear makes every frame replace the previous one.
func WithClear(clear bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Clear = clear
	}
}

// NewTextHandler creates a handler for terminal output.
// Without WithProfile the profile is detected from w.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:   w,
		BarWidth: DefaultBarWidth,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.out == nil {
		h.out = termenv.NewOutput(w)
	}
	return h
}

func (h *TextHandler) Show(ctx context.Context, frame Frame) error {
	if h.Clear {
		h.out.ClearScreen()
	}
	_, err := io.WriteString(h.Writer, h.Render(frame))
	return err
}

// Render returns the text of one frame.
func (h *TextHandler) Render(frame Frame) string {
	var b strings.Builder
	s := frame.Step

	header := fmt.Sprintf("[%d/%d %3.0f%%]", frame.Index+1, frame.Total, frame.Progress)
	fmt.Fprintf(&b, "%s %s\n", h.paint(header, ColorMuted), s.Explanation)

	switch {
	case s.Tree != nil:
		h.renderTree(&b, s.Tree, "", s.Current)
	case s.Graph != nil:
		h.renderGraph(&b, s)
	default:
		h.renderBars(&b, s)
	}

	counters := fmt.Sprintf("comparisons: %d  swaps: %d", s.Comparisons, s.Swaps)
	fmt.Fprintf(&b, "%s\n\n", h.paint(counters, ColorMuted))
	return b.String()
}

func (h *TextHandler) renderBars(b *strings.Builder, s domain.Step) {
	if len(s.Array) == 0 {
		fmt.Fprintf(b, "  %s\n", h.paint("(empty)", ColorMuted))
		return
	}

	peak, digits := 1, 1
	for _, v := range s.Array {
		peak = max(peak, v)
		digits = max(digits, len(fmt.Sprint(v)))
	}

	for i, v := range s.Array {
		length := 0
		if v > 0 {
			length = max(1, v*h.BarWidth/peak)
		}
		bar := strings.Repeat("█", length)
		fmt.Fprintf(b, "  %*d %s\n", digits, v, h.paint(bar, barColor(s, i)))
	}
}

func barColor(s domain.Step, i int) string {
	switch {
	case slices.Contains(s.Sorted, i):
		return ColorSorted
	case slices.Contains(s.Swapping, i):
		return ColorSwapping
	case slices.Contains(s.Comparing, i):
		return ColorComparing
	}
	return ColorIdle
}

// renderTree prints the tree sideways: right subtree above, left below.
func (h *TextHandler) renderTree(b *strings.Builder, n *domain.TreeNode, indent, current string) {
	if n == nil {
		if indent == "" {
			fmt.Fprintf(b, "  %s\n", h.paint("(empty tree)", ColorMuted))
		}
		return
	}
	h.renderTree(b, n.Right, indent+"    ", current)
	label := fmt.Sprint(n.Value)
	if n.ID == current {
		label = h.paint(label, ColorComparing)
	}
	fmt.Fprintf(b, "  %s%s\n", indent, label)
	h.renderTree(b, n.Left, indent+"    ", current)
}

func (h *TextHandler) renderGraph(b *strings.Builder, s domain.Step) {
	labels := make(map[string]string, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		labels[n.ID] = fmt.Sprint(n.Value)
	}

	visited := make([]string, 0, len(s.Visited))
	for _, id := range s.Visited {
		visited = append(visited, h.paint(labels[id], ColorSorted))
	}
	fmt.Fprintf(b, "  visited: %s\n", strings.Join(visited, " → "))
	if s.Current != "" {
		fmt.Fprintf(b, "  current: %s\n", h.paint(labels[s.Current], ColorComparing))
	}
}

func (h *TextHandler) paint(text, hex string) string {
	return h.out.String(text).Foreground(h.out.Color(hex)).String()
}
