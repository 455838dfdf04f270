package playback

import (
	"context"
	"encoding/json"
	"io"
	"os"
)

// JSONHandler writes each frame as one JSON line (NDJSON).
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Show(ctx context.Context, frame Frame) error {
	return h.Encoder.Encode(frame)
}
