package sink

import (
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/encoder"
)

const (
	htmlHead = "<!DOCTYPE html>\n" +
		"<html>\n" +
		" <head>\n" +
		" <title>"
	htmlStyleOpen = "</title>\n" +
		"  <style>\n" +
		"   p{ white-space: pre-wrap; font-family: monospace;\n" +
		"    margin: 0; padding:0;\n" +
		"    "
	htmlBodyOpen = " }\n" +
		"  </style>\n" +
		" </head>\n" +
		" <body bgcolor=\"black\">\n" +
		"  <p>"

	// HTMLTrailer closes the open paragraph and the document
	HTMLTrailer = "  </p>\n" +
		" </body>\n" +
		"</html>\n"
)

var titlePolicy = bluemonday.StrictPolicy()

// HTMLSink writes inline-styled HTML. The preamble is written when the sink
// is created and the trailer when it is closed, even mid-paragraph.
type HTMLSink struct {
	base
	enc *encoder.HTMLEncoder
}

var _ Sink = (*HTMLSink)(nil)

// NewHTMLSink creates an HTML sink named name on w, writes the preamble
// styled with initial and leaves one paragraph open.
func NewHTMLSink(name string, w io.Writer, closer io.Closer, initial colors.Format) (*HTMLSink, error) {
	s := &HTMLSink{base: newBase(name, KindHTML, w, closer)}
	s.enc = encoder.NewHTMLEncoder(s.out, initial)

	preamble := htmlHead + titlePolicy.Sanitize(name) + htmlStyleOpen + s.enc.Style() + htmlBodyOpen
	if err := s.writeRaw(preamble); err != nil {
		return nil, err
	}
	return s, nil
}

// Style returns the pending CSS of the next paragraph
func (s *HTMLSink) Style() string {
	return s.enc.Style()
}

// WriteText writes escaped text
func (s *HTMLSink) WriteText(text string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Text(text))
}

// SetForeground starts a paragraph with the new foreground
func (s *HTMLSink) SetForeground(c colors.Color) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Foreground(c))
}

// SetFormat starts a paragraph with the whole format applied
func (s *HTMLSink) SetFormat(f colors.Format) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Format(f))
}

// SetAttribute starts a paragraph with the attribute applied
func (s *HTMLSink) SetAttribute(a colors.Attribute) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.writeErr(s.enc.Attribute(a))
}

// Close writes the trailer, then flushes and closes the file
func (s *HTMLSink) Close() error {
	if s.closed {
		return nil
	}
	trailerErr := s.writeRaw(HTMLTrailer)
	if err := s.release(); err != nil {
		return err
	}
	return trailerErr
}
