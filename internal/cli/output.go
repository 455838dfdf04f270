package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/playback"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format selects how a trace is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unknown format %q (want text, json or yaml)", domain.ErrInvalidInput, s)
}

// WriteSteps prints every step of a trace at once.
// JSON is one frame per line; YAML is a single document.
func WriteSteps(ctx context.Context, w io.Writer, format Format, profile termenv.Profile, steps []domain.Step) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(steps); err != nil {
			return fmt.Errorf("failed to encode steps: %w", err)
		}
		return enc.Close()
	}

	var h playback.Handler
	if format == FormatJSON {
		h = playback.NewJSONHandler(w)
	} else {
		h = playback.NewTextHandler(w, playback.WithProfile(profile))
	}

	p := playback.NewPlayer(steps)
	for {
		frame, ok := p.Current()
		if !ok {
			return nil
		}
		if err := h.Show(ctx, frame); err != nil {
			return err
		}
		if !p.Next() {
			return nil
		}
	}
}
