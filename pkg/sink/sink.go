package sink

import (
	"bufio"
	"io"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
)

// Kind identifies the sink implementation
type Kind int

const (
	KindConsole Kind = iota
	KindPlain
	KindHTML
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindPlain:
		return "plain"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Sink is a single output destination
type Sink interface {
	Name() string
	Kind() Kind

	ColoringEnabled() bool
	SetColoringEnabled(enabled bool)

	WriteText(text string) error
	// SetForeground changes the foreground and keeps background and attributes
	SetForeground(c colors.Color) error
	SetFormat(f colors.Format) error
	SetAttribute(a colors.Attribute) error
	WriteLineTerminator() error
	Flush() error

	// Close releases the destination. Closing twice is a no-op.
	Close() error
	Closed() bool
}

// base holds the state every sink shares: the buffered writer, the
// optional underlying closer and the lifecycle flags.
type base struct {
	name     string
	kind     Kind
	coloring bool
	closed   bool
	out      *bufio.Writer
	closer   io.Closer
}

func newBase(name string, kind Kind, w io.Writer, closer io.Closer) base {
	return base{
		name:     name,
		kind:     kind,
		coloring: true,
		out:      bufio.NewWriter(w),
		closer:   closer,
	}
}

func (b *base) Name() string { return b.name }
func (b *base) Kind() Kind { return b.kind }
func (b *base) ColoringEnabled() bool { return b.coloring }
func (b *base) SetColoringEnabled(enabled bool) { b.coloring = enabled }
func (b *base) Closed() bool { return b.closed }

func (b *base) checkOpen() error {
	if b.closed {
		return errors.Newf(errors.ErrSinkClosed, "%s: sink is closed", b.name).
			WithDetail("kind", b.kind.String())
	}
	return nil
}

func (b *base) writeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.ErrSinkWrite, "%s", b.name).
		WithDetail("kind", b.kind.String())
}

func (b *base) writeRaw(s string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	_, err := b.out.WriteString(s)
	return b.writeErr(err)
}

// Flush pushes buffered bytes to the destination
func (b *base) Flush() error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	return b.writeErr(b.out.Flush())
}

// WriteLineTerminator writes a newline and flushes, like endl
func (b *base) WriteLineTerminator() error {
	if err := b.writeRaw("\n"); err != nil {
		return err
	}
	return b.Flush()
}

// release flushes and closes the underlying destination exactly once
func (b *base) release() error {
	if b.closed {
		return nil
	}
	flushErr := b.out.Flush()
	b.closed = true

	var closeErr error
	if b.closer != nil {
		closeErr = b.closer.Close()
	}
	if flushErr != nil {
		return b.writeErr(flushErr)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, errors.ErrSinkWrite, "close %s", b.name).
			WithDetail("kind", b.kind.String())
	}
	return nil
}
