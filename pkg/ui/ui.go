// Package ui prints operator messages to standard error and decides whether
// streams get colors.
//
// Messages always name the program first, the way classic Unix tools do:
//
//	coloring-tee: build.html: Permission denied
package ui

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/style"
)

// Reporter writes program-prefixed messages
type Reporter struct {
	w       io.Writer
	program string
	palette style.Palette
}

// NewReporter creates a reporter for program writing to w
func NewReporter(w io.Writer, program string) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if !SupportsColor(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		w:       w,
		program: program,
		palette: style.NewPalette(renderer),
	}
}

// Warn reports a recoverable problem
func (r *Reporter) Warn(err error) {
	r.print(r.palette.Warning, Describe(err))
}

// Warnf reports a recoverable problem from a format string
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.print(r.palette.Warning, fmt.Sprintf(format, args...))
}

// Error reports a fatal problem
func (r *Reporter) Error(err error) {
	r.print(r.palette.Error, Describe(err))
}

// Infof reports progress the operator may care about
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.print(r.palette.Info, fmt.Sprintf(format, args...))
}

func (r *Reporter) print(s lipgloss.Style, msg string) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.palette.Program.Render(r.program+":"), s.Render(msg))
}

// Describe turns err into operator text: the message of each coded error in
// the chain, ending with the system reason, e.g. "out.html: Permission denied".
func Describe(err error) string {
	if err == nil {
		return ""
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			parts = append(parts, Describe(e))
		}
		return strings.Join(parts, "; ")
	}

	var teeErr *errors.TeeError
	if stderrors.As(err, &teeErr) {
		if teeErr.Wrapped == nil {
			return teeErr.Message
		}
		return teeErr.Message + ": " + Describe(teeErr.Wrapped)
	}

	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return capitalize(pathErr.Err.Error())
	}

	return err.Error()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
