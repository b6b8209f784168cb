package sink

import (
	"io"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/encoder"
)

// ConsoleSink writes ANSI-colored output to a terminal-like stream.
// Closing it flushes but never closes the stream itself.
type ConsoleSink struct {
	base
	enc *encoder.AnsiEncoder
}

var _ Sink = (*ConsoleSink)(nil)

// NewConsoleSink creates a console sink on w, usually standard output
func NewConsoleSink(w io.Writer) *ConsoleSink {
	s := &ConsoleSink{base: newBase(StdoutName, KindConsole, w, nil)}
	s.enc = encoder.NewAnsiEncoder(s.out)
	return s
}

// WriteText writes text verbatim
func (s *ConsoleSink) WriteText(text string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Text(text))
}

// SetForeground writes the foreground color code
func (s *ConsoleSink) SetForeground(c colors.Color) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Foreground(c))
}

// SetFormat writes the attribute then the foreground code.
// The background is ignored on consoles.
func (s *ConsoleSink) SetFormat(f colors.Format) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Format(f))
}

// SetAttribute writes the attribute code
func (s *ConsoleSink) SetAttribute(a colors.Attribute) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Attribute(a))
}

// Close flushes pending output
func (s *ConsoleSink) Close() error {
	return s.release()
}
