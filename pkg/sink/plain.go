package sink

import (
	"io"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
)

// PlainSink receives raw text and newlines only. Styling calls succeed and
// write nothing.
type PlainSink struct {
	base
}

var _ Sink = (*PlainSink)(nil)

// NewPlainSink creates a plain sink named name on w. closer may be nil when
// the sink does not own w.
func NewPlainSink(name string, w io.Writer, closer io.Closer) *PlainSink {
	return &PlainSink{base: newBase(name, KindPlain, w, closer)}
}

// WriteText writes text unmodified
func (s *PlainSink) WriteText(text string) error {
	return s.writeRaw(text)
}

func (s *PlainSink) SetForeground(colors.Color) error { return s.checkOpen() }
func (s *PlainSink) SetFormat(colors.Format) error { return s.checkOpen() }
func (s *PlainSink) SetAttribute(colors.Attribute) error { return s.checkOpen() }

// Close flushes and closes the file
func (s *PlainSink) Close() error {
	return s.release()
}
