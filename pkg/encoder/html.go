package encoder

import (
	"io"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
)

var htmlColors = [...]string{
	colors.Black:   "#000",
	colors.Red:     "#f00",
	colors.Green:   "#0f0",
	colors.Yellow:  "#ff0",
	colors.Blue:    "#00f",
	colors.Magenta: "#f0f",
	colors.Cyan:    "#0ff",
	colors.White:   "#fff",
}

// cssAttributes maps attributes to the CSS they append. Dim, Nothing and
// Reverse have no entry and leave the style untouched.
var cssAttributes = map[colors.Attribute]string{
	colors.Bold:        "font-weight: bold; ",
	colors.Underline:   "text-decoration: underline; ",
	colors.UnderlineV2: "text-decoration: underline; ",
	colors.Blink:       "text-decoration:blink; ",
	colors.Hidden:      "visibility: hidden; ",
}

// HTMLColor returns the CSS hex value used for c; anything unknown is white
func HTMLColor(c colors.Color) string {
	if !c.Valid() {
		return htmlColors[colors.White]
	}
	return htmlColors[c]
}

// HTMLEncoder renders events as inline-styled HTML paragraphs.
// The pending style always reflects the most recent style request.
type HTMLEncoder struct {
	w          io.Writer
	foreground string
	background string
	attributes string
}

var _ Encoder = (*HTMLEncoder)(nil)

// NewHTMLEncoder creates an encoder writing to w with initial as pending style.
// Nothing is written until the first event.
func NewHTMLEncoder(w io.Writer, initial colors.Format) *HTMLEncoder {
	e := &HTMLEncoder{w: w}
	e.setForeground(initial.Foreground)
	e.setBackground(initial.Background)
	e.setAttribute(initial.Attribute)
	return e
}

// Style returns the pending CSS: foreground, background, then attributes
func (e *HTMLEncoder) Style() string {
	return e.foreground + e.background + e.attributes
}

// Text writes s escaped
func (e *HTMLEncoder) Text(s string) error {
	_, err := io.WriteString(e.w, Escape(s))
	return err
}

// Foreground replaces the pending foreground and starts a new paragraph
func (e *HTMLEncoder) Foreground(c colors.Color) error {
	e.setForeground(c)
	return e.paragraph()
}

// Background replaces the pending background and starts a new paragraph
func (e *HTMLEncoder) Background(c colors.Color) error {
	e.setBackground(c)
	return e.paragraph()
}

// Attribute updates the pending attributes and starts a new paragraph
func (e *HTMLEncoder) Attribute(a colors.Attribute) error {
	e.setAttribute(a)
	return e.paragraph()
}

// Format applies all three parts and starts a single new paragraph
func (e *HTMLEncoder) Format(f colors.Format) error {
	e.setForeground(f.Foreground)
	e.setBackground(f.Background)
	e.setAttribute(f.Attribute)
	return e.paragraph()
}

func (e *HTMLEncoder) paragraph() error {
	_, err := io.WriteString(e.w, `</p><p style="`+e.Style()+`">`)
	return err
}

func (e *HTMLEncoder) setForeground(c colors.Color) {
	e.foreground = "color: " + HTMLColor(c) + "; "
}

func (e *HTMLEncoder) setBackground(c colors.Color) {
	e.background = "background-color: " + HTMLColor(c) + "; "
}

func (e *HTMLEncoder) setAttribute(a colors.Attribute) {
	if a == colors.Reset {
		e.foreground = ""
		e.background = ""
		e.attributes = ""
		return
	}
	e.attributes += cssAttributes[a]
}
