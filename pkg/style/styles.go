// Package style holds the lipgloss palette used for operator messages.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is a set of styles bound to one renderer, so the color profile
// follows the stream the text is written to
type Palette struct {
	Program lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewPalette builds the palette on r
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Program: r.NewStyle().
			Foreground(ProgramColor),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(WarningColor).
			Bold(true),
		Info: r.NewStyle().
			Foreground(InfoColor),
	}
}
