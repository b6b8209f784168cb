package sink

import (
	"io"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
)

const (
	// StdoutPath as a file name means standard output
	StdoutPath = "-"
	// StdoutName names the console sink
	StdoutName = "stdout"
)

// Request asks the Opener for one file sink
type Request struct {
	Kind Kind
	Path string
}

// Plain requests a plain file sink
func Plain(path string) Request {
	return Request{Kind: KindPlain, Path: path}
}

// HTML requests an HTML file sink
func HTML(path string) Request {
	return Request{Kind: KindHTML, Path: path}
}

// Opener creates file sinks. Stdout is used for the StdoutPath and is
// never closed by the sinks writing to it.
type Opener struct {
	FS            filesystem.FS
	Append        bool
	Stdout        io.Writer
	InitialFormat colors.Format
}

// NewOpener returns an opener on fsys with the default initial format
func NewOpener(fsys filesystem.FS, stdout io.Writer, appendMode bool) *Opener {
	return &Opener{
		FS:            fsys,
		Append:        appendMode,
		Stdout:        stdout,
		InitialFormat: colors.DefaultFormat(),
	}
}

func (r Request) details() map[string]interface{} {
	return map[string]interface{}{
		"path": r.Path,
		"kind": r.Kind.String(),
	}
}

// Open creates the sink described by req
func (o *Opener) Open(req Request) (Sink, error) {
	if req.Kind != KindPlain && req.Kind != KindHTML {
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot open %s sink from a file", req.Kind).
			WithDetail("path", req.Path)
	}

	w, closer, err := o.destination(req.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSinkOpen, req.Path).WithDetails(req.details())
	}

	if req.Kind == KindPlain {
		return NewPlainSink(req.Path, w, closer), nil
	}

	s, err := NewHTMLSink(req.Path, w, closer, o.InitialFormat)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, errors.Wrap(err, errors.ErrSinkOpen, req.Path).WithDetails(req.details())
	}
	return s, nil
}

func (o *Opener) destination(path string) (io.Writer, io.Closer, error) {
	if path == StdoutPath {
		return o.Stdout, nil, nil
	}
	f, err := o.FS.OpenOutput(path, o.Append)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
