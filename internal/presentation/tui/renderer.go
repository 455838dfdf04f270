package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With plain set, or when glamour cannot be initialised, markdown is returned as is.
func NewRenderer(plain bool, wordWrap int) func(string) (string, error) {
	if plain {
		return identity
	}

	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return identity
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

func identity(markdown string) (string, error) {
	return markdown, nil
}
