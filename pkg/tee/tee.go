// Package tee runs the line processing loop: read a line, classify it, and
// write it to every sink with the matching styling.
package tee

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
	"github.com/MilosSubotic/coloring-tee/pkg/metrics"
	"github.com/MilosSubotic/coloring-tee/pkg/rules"
)

// Mode selects how lines are written
type Mode int

const (
	// ModeColored classifies lines and styles them
	ModeColored Mode = iota
	// ModePlain writes lines unmodified
	ModePlain
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModePlain {
		return "plain"
	}
	return "colored"
}

// Output receives the styled line events. *sink.Multiplexer implements it.
type Output interface {
	WriteText(text string) error
	SetForeground(c colors.Color) error
	SetAttribute(a colors.Attribute) error
	WriteLineTerminator() error
}

// Loop copies input lines to Sinks
type Loop struct {
	Sinks   Output
	Matcher *rules.Matcher
	Mode    Mode
	Bold    bool
	Metrics *metrics.Recorder
}

type readResult struct {
	line string
	err  error
}

// Run processes r line by line until end of input, a write error or ctx
// cancellation. A line being written is always finished before Run returns.
// Cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context, r io.Reader) error {
	logger := logging.GetLogger("tee")
	done := logging.LogOperationStart(logger, "tee")
	defer done()

	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(r, stop)

	count := 0
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Int("lines", count).Msg("Loop cancelled")
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				logger.Debug().Int("lines", count).Msg("End of input")
				return nil
			}
			if res.err != nil {
				return errors.Wrap(res.err, errors.ErrInputRead, "failed to read input")
			}
			if err := l.processLine(res.line); err != nil {
				return err
			}
			count++
		}
	}
}

// readLines reads r on its own goroutine so a blocked read never delays
// cancellation. Lines have no length limit; a final line without a
// terminator is still delivered.
func readLines(r io.Reader, stop <-chan struct{}) <-chan readResult {
	out := make(chan readResult)
	go func() {
		defer close(out)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				select {
				case out <- readResult{line: strings.TrimSuffix(line, "\n")}:
				case <-stop:
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case out <- readResult{err: err}:
				case <-stop:
				}
				return
			}
		}
	}()
	return out
}

func (l *Loop) processLine(line string) error {
	l.Metrics.LineProcessed(len(line))

	var errs []error
	record := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if l.Mode == ModePlain {
		record(l.Sinks.WriteText(line))
		record(l.Sinks.WriteLineTerminator())
		return stderrors.Join(errs...)
	}

	if l.Matcher != nil {
		if c, ok := l.Matcher.Classify(line); ok {
			l.Metrics.LineMatched(c)
			record(l.Sinks.SetForeground(c))
		}
	}
	if l.Bold {
		record(l.Sinks.SetAttribute(colors.Bold))
	}
	record(l.Sinks.WriteText(line))
	record(l.Sinks.SetAttribute(colors.Reset))
	record(l.Sinks.WriteLineTerminator())

	return stderrors.Join(errs...)
}
