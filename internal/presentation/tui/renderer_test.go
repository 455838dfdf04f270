package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/algotrace/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_Plain(t *testing.T) {
	render := tui.NewRenderer(true, 0)
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestNewRenderer_Glamour(t *testing.T) {
	render := tui.NewRenderer(false, 60)
	out, err := render("# Bubble Sort\n\nSimple but slow.")
	require.NoError(t, err)
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "Simple but slow.")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), `|___/`)
}
