package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/MilosSubotic/coloring-tee/pkg/errors"
)

// Format represents the output format of listing commands
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output stream
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatTOML renders configuration TOML
	FormatTOML
	// FormatYAML renders configuration YAML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output io.Writer) Format {
	if SupportsColor(output) {
		return FormatTerminal
	}
	return FormatText
}

// SupportsColor reports whether output is a color-capable terminal
func SupportsColor(output io.Writer) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	file, ok := output.(*os.File)
	if !ok {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}

// ColorMode is the --color setting for the console sink
type ColorMode int

const (
	// ColorAlways colors the console even when it is not a terminal
	ColorAlways ColorMode = iota
	// ColorAuto colors the console only when it supports color
	ColorAuto
	// ColorNever never colors the console
	ColorNever
)

// String returns the flag value of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "always", "":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAlways, errors.Newf(errors.ErrInvalidInput, "invalid --color value %q (want always, auto or never)", s).
			WithDetail("color", s)
	}
}

// Enabled reports whether the console sink writing to output gets colors
func (m ColorMode) Enabled(output io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		return SupportsColor(output)
	default:
		return true
	}
}
