// Package colors defines the closed set of colors and text attributes
// coloring-tee understands, plus the Format value that bundles them.
package colors

import (
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
)

// Color is one of the eight basic terminal colors
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// String returns the configuration name of the color
func (c Color) String() string {
	if c < Black || c > White {
		return "unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the eight defined colors
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

// Names returns the color names in ordinal order
func Names() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}

// ParseColor resolves a configuration color name. Names are matched exactly,
// the same way configuration files have always spelled them.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Black, errors.Newf(errors.ErrConfigInvalid, "unknown color %q", name).
		WithDetail("color", name)
}

// Attribute is a text attribute
type Attribute int

const (
	// Nothing changes no attribute
	Nothing Attribute = iota
	// Reset clears colors and attributes
	Reset
	Bold
	Dim
	Underline
	// UnderlineV2 is a second spelling of underline kept for old configurations
	UnderlineV2
	Blink
	Reverse
	Hidden
)

var attributeNames = [...]string{
	Nothing:     "nothing",
	Reset:       "reset",
	Bold:        "bold",
	Dim:         "dim",
	Underline:   "underline",
	UnderlineV2: "underline_v2",
	Blink:       "blink",
	Reverse:     "reverse",
	Hidden:      "hidden",
}

// String returns the name of the attribute
func (a Attribute) String() string {
	if a < Nothing || a > Hidden {
		return "unknown"
	}
	return attributeNames[a]
}

// ParseAttribute resolves an attribute name
func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return Nothing, errors.Newf(errors.ErrConfigInvalid, "unknown attribute %q", name).
		WithDetail("attribute", name)
}

// Format requests a foreground, background and attribute change in one call
type Format struct {
	Foreground Color
	Background Color
	Attribute  Attribute
}

// NewFormat builds a Format
func NewFormat(foreground, background Color, attribute Attribute) Format {
	return Format{
		Foreground: foreground,
		Background: background,
		Attribute:  attribute,
	}
}

// DefaultFormat is white on black with no attribute, the initial style of HTML output
func DefaultFormat() Format {
	return NewFormat(White, Black, Nothing)
}
