package encoder

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
)

var ansiForeground = [...]color.Attribute{
	colors.Black:   color.FgBlack,
	colors.Red:     color.FgRed,
	colors.Green:   color.FgGreen,
	colors.Yellow:  color.FgYellow,
	colors.Blue:    color.FgBlue,
	colors.Magenta: color.FgMagenta,
	colors.Cyan:    color.FgCyan,
	colors.White:   color.FgWhite,
}

// ansiAttributes lists the attributes with an SGR code. Dim and Nothing are
// absent on purpose: they emit nothing on a console.
var ansiAttributes = map[colors.Attribute]color.Attribute{
	colors.Reset:       color.Reset,
	colors.Bold:        color.Bold,
	colors.Underline:   color.Underline,
	colors.UnderlineV2: color.Underline,
	colors.Blink:       color.BlinkSlow,
	colors.Reverse:     color.ReverseVideo,
	colors.Hidden:      color.Concealed,
}

// AnsiEncoder renders events as ANSI SGR sequences
type AnsiEncoder struct {
	w io.Writer
}

var _ Encoder = (*AnsiEncoder)(nil)

// NewAnsiEncoder creates an encoder writing to w
func NewAnsiEncoder(w io.Writer) *AnsiEncoder {
	return &AnsiEncoder{w: w}
}

// Text writes s verbatim
func (e *AnsiEncoder) Text(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

// Foreground writes the SGR foreground code of c
func (e *AnsiEncoder) Foreground(c colors.Color) error {
	if !c.Valid() {
		return nil
	}
	return e.sgr(ansiForeground[c])
}

// Background is accepted but never emitted; consoles keep their own background.
func (e *AnsiEncoder) Background(colors.Color) error {
	return nil
}

// Attribute writes the SGR code of a, if it has one
func (e *AnsiEncoder) Attribute(a colors.Attribute) error {
	code, ok := ansiAttributes[a]
	if !ok {
		return nil
	}
	return e.sgr(code)
}

// Format writes the attribute code, then the foreground code
func (e *AnsiEncoder) Format(f colors.Format) error {
	if err := e.Attribute(f.Attribute); err != nil {
		return err
	}
	if err := e.Background(f.Background); err != nil {
		return err
	}
	return e.Foreground(f.Foreground)
}

func (e *AnsiEncoder) sgr(code color.Attribute) error {
	_, err := io.WriteString(e.w, Sequence(code))
	return err
}

// Sequence returns the complete escape sequence for an SGR code
func Sequence(code color.Attribute) string {
	return termenv.CSI + strconv.Itoa(int(code)) + "m"
}
