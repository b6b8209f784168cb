package sink

import (
	stderrors "errors"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
)

// Multiplexer broadcasts every operation to its sinks in registration order
type Multiplexer struct {
	sinks []Sink
}

// NewMultiplexer returns a multiplexer over sinks
func NewMultiplexer(sinks ...Sink) *Multiplexer {
	m := &Multiplexer{}
	for _, s := range sinks {
		m.Register(s)
	}
	return m
}

// Register appends s
func (m *Multiplexer) Register(s Sink) {
	m.sinks = append(m.sinks, s)
}

// Sinks returns the registered sinks in order
func (m *Multiplexer) Sinks() []Sink {
	out := make([]Sink, len(m.sinks))
	copy(out, m.sinks)
	return out
}

// Len returns the number of registered sinks
func (m *Multiplexer) Len() int {
	return len(m.sinks)
}

// Open opens every request with o and registers the sinks that opened.
// Failures do not stop the remaining requests; they are returned as
// warnings and the failed sink is dropped.
func (m *Multiplexer) Open(o *Opener, reqs ...Request) []error {
	logger := logging.GetLogger("sink")

	var warnings []error
	for _, req := range reqs {
		s, err := o.Open(req)
		if err != nil {
			logger.Info().Err(err).
				Str("path", req.Path).
				Str("kind", req.Kind.String()).
				Msg("Sink dropped")
			warnings = append(warnings, err)
			continue
		}
		logger.Debug().
			Str("path", req.Path).
			Str("kind", req.Kind.String()).
			Bool("append", o.Append).
			Msg("Sink opened")
		m.Register(s)
	}
	return warnings
}

// each runs fn on every open sink. When styling is set, sinks with
// coloring disabled are skipped too.
func (m *Multiplexer) each(styling bool, fn func(Sink) error) error {
	var errs []error
	for _, s := range m.sinks {
		if s.Closed() {
			continue
		}
		if styling && !s.ColoringEnabled() {
			continue
		}
		if err := fn(s); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// WriteText writes text to every sink
func (m *Multiplexer) WriteText(text string) error {
	return m.each(false, func(s Sink) error { return s.WriteText(text) })
}

// SetForeground changes the foreground on every coloring sink
func (m *Multiplexer) SetForeground(c colors.Color) error {
	return m.each(true, func(s Sink) error { return s.SetForeground(c) })
}

// SetFormat applies f on every coloring sink
func (m *Multiplexer) SetFormat(f colors.Format) error {
	return m.each(true, func(s Sink) error { return s.SetFormat(f) })
}

// SetAttribute applies a on every coloring sink
func (m *Multiplexer) SetAttribute(a colors.Attribute) error {
	return m.each(true, func(s Sink) error { return s.SetAttribute(a) })
}

// WriteLineTerminator ends the line on every sink and flushes it
func (m *Multiplexer) WriteLineTerminator() error {
	return m.each(false, func(s Sink) error { return s.WriteLineTerminator() })
}

// FlushAll flushes every sink
func (m *Multiplexer) FlushAll() error {
	return m.each(false, func(s Sink) error { return s.Flush() })
}

// CloseAll closes every sink that is still open. Calling it again does
// nothing.
func (m *Multiplexer) CloseAll() error {
	logger := logging.GetLogger("sink")
	return m.each(false, func(s Sink) error {
		err := s.Close()
		logger.Debug().Err(err).Str("sink", s.Name()).Msg("Sink closed")
		return err
	})
}
