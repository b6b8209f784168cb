package encoder

import (
	"github.com/MilosSubotic/coloring-tee/pkg/colors"
)

// Encoder renders text and style events for one destination
type Encoder interface {
	// Text writes literal text
	Text(s string) error
	// Foreground changes only the foreground color
	Foreground(c colors.Color) error
	// Background changes only the background color
	Background(c colors.Color) error
	// Attribute applies a single attribute; Reset clears everything
	Attribute(a colors.Attribute) error
	// Format applies foreground, background and attribute as one change
	Format(f colors.Format) error
}
