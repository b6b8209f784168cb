package style

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPaletteOnAsciiRenderer(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	p := NewPalette(r)

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{name: "program", style: p.Program},
		{name: "error", style: p.Error},
		{name: "warning", style: p.Warning},
		{name: "info", style: p.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "out.html: Permission denied", tt.style.Render("out.html: Permission denied"))
		})
	}
}

func TestPaletteColors(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	p := NewPalette(r)

	rendered := p.Error.Render("boom")
	assert.Contains(t, rendered, "boom")
	assert.NotEqual(t, "boom", rendered)
}
