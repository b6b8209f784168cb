package tee_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/beevik/etree"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
	"github.com/MilosSubotic/coloring-tee/pkg/metrics"
	"github.com/MilosSubotic/coloring-tee/pkg/rules"
	"github.com/MilosSubotic/coloring-tee/pkg/sink"
	"github.com/MilosSubotic/coloring-tee/pkg/tee"
)

// syncBuffer is a bytes.Buffer safe to read while the loop writes
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	console *syncBuffer
	fs      filesystem.FS
	mux     *sink.Multiplexer
}

func newFixture(t *testing.T, reqs ...sink.Request) *fixture {
	t.Helper()
	f := &fixture{console: &syncBuffer{}, fs: filesystem.NewMemory()}
	f.mux = sink.NewMultiplexer(sink.NewConsoleSink(f.console))
	require.Empty(t, f.mux.Open(sink.NewOpener(f.fs, f.console, false), reqs...))
	return f
}

func (f *fixture) file(t *testing.T, name string) string {
	t.Helper()
	content, err := f.fs.ReadFile(name)
	require.NoError(t, err)
	return string(content)
}

func paragraphStyle(t *testing.T, html, text string) string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(html))
	for _, p := range doc.FindElements("//p") {
		if p.Text() == text {
			return p.SelectAttrValue("style", "")
		}
	}
	t.Fatalf("no paragraph with text %q", text)
	return ""
}

func TestRun_EndToEnd(t *testing.T) {
	f := newFixture(t, sink.Plain("/build.log"), sink.HTML("/build.html"))
	loop := &tee.Loop{
		Sinks:   f.mux,
		Matcher: rules.New(rules.Rule{Substring: "ERROR", Color: colors.Red}),
		Mode:    tee.ModeColored,
		Bold:    true,
	}

	err := loop.Run(context.Background(), strings.NewReader("hello\nERROR: disk full\nbye\n"))
	require.NoError(t, err)
	require.NoError(t, f.mux.CloseAll())

	assert.Equal(t,
		"\x1b[1mhello\x1b[0m\n"+
			"\x1b[31m\x1b[1mERROR: disk full\x1b[0m\n"+
			"\x1b[1mbye\x1b[0m\n",
		f.console.String())

	assert.Equal(t, "hello\nERROR: disk full\nbye\n", f.file(t, "/build.log"))

	html := f.file(t, "/build.html")
	assert.True(t, strings.HasSuffix(html, sink.HTMLTrailer))

	styles := map[string]string{}
	for _, line := range []string{"hello", "ERROR: disk full", "bye"} {
		styles[line] = paragraphStyle(t, html, line)
	}
	assert.Contains(t, styles["ERROR: disk full"], "color: #f00;")
	assert.Contains(t, styles["ERROR: disk full"], "font-weight: bold;")
	assert.NotContains(t, styles["hello"], "#f00")
	assert.NotContains(t, styles["bye"], "#f00")
	assert.Contains(t, styles["hello"], "font-weight: bold;")
	assert.Contains(t, styles["bye"], "font-weight: bold;")
}

func TestRun_HTMLEscapesText(t *testing.T) {
	f := newFixture(t, sink.HTML("/out.html"))
	loop := &tee.Loop{
		Sinks:   f.mux,
		Matcher: rules.New(rules.Rule{Substring: "<", Color: colors.Green}),
	}

	require.NoError(t, loop.Run(context.Background(), strings.NewReader("a<b & c\n")))
	require.NoError(t, f.mux.CloseAll())

	html := f.file(t, "/out.html")
	assert.Contains(t, html, `<p style="color: #0f0; background-color: #000; ">a&lt;b &amp; c</p>`)
	assert.Equal(t, "color: #0f0; background-color: #000; ", paragraphStyle(t, html, "a<b & c"))
}

func TestRun_PlainModeIsByteIdentical(t *testing.T) {
	inputs := []string{
		"",
		"one line\n",
		"a\n\nb\n",
		"error everywhere\nwarning too\n",
		"unicode ✓ žćč\n",
		"tabs\tand \x1b[31m escapes stay\n",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			f := newFixture(t, sink.Plain("/copy.txt"))
			loop := &tee.Loop{
				Sinks:   f.mux,
				Matcher: rules.New(rules.Rule{Substring: "error", Color: colors.Red}),
				Mode:    tee.ModePlain,
				Bold:    true,
			}

			require.NoError(t, loop.Run(context.Background(), strings.NewReader(input)))
			require.NoError(t, f.mux.CloseAll())

			assert.Equal(t, input, f.console.String())
			assert.Equal(t, input, f.file(t, "/copy.txt"))
		})
	}
}

func TestRun_FinalLineWithoutTerminator(t *testing.T) {
	f := newFixture(t)
	loop := &tee.Loop{Sinks: f.mux, Mode: tee.ModePlain}

	require.NoError(t, loop.Run(context.Background(), strings.NewReader("first\nlast")))
	assert.Equal(t, "first\nlast\n", f.console.String())
}

func TestRun_LongLine(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	f := newFixture(t)
	loop := &tee.Loop{Sinks: f.mux, Mode: tee.ModePlain}

	require.NoError(t, loop.Run(context.Background(), strings.NewReader(long+"\n")))
	assert.Equal(t, long+"\n", f.console.String())
}

func TestRun_ColoringDisabledConsole(t *testing.T) {
	f := newFixture(t)
	f.mux.Sinks()[0].SetColoringEnabled(false)
	loop := &tee.Loop{
		Sinks:   f.mux,
		Matcher: rules.New(rules.Rule{Substring: "ERROR", Color: colors.Red}),
		Bold:    true,
	}

	require.NoError(t, loop.Run(context.Background(), strings.NewReader("ERROR\nok\n")))
	assert.Equal(t, "ERROR\nok\n", f.console.String())
}

func TestRun_ReadError(t *testing.T) {
	f := newFixture(t)
	loop := &tee.Loop{Sinks: f.mux}

	r := io.MultiReader(strings.NewReader("before\n"), iotest.ErrReader(stderrors.New("device gone")))
	err := loop.Run(context.Background(), r)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
	assert.Contains(t, f.console.String(), "before")
}

// failingOutput fails every text write and records the calls it gets
type failingOutput struct {
	calls []string
}

func (o *failingOutput) WriteText(string) error {
	o.calls = append(o.calls, "text")
	return stderrors.New("disk full")
}

func (o *failingOutput) SetForeground(colors.Color) error {
	o.calls = append(o.calls, "fg")
	return nil
}

func (o *failingOutput) SetAttribute(a colors.Attribute) error {
	o.calls = append(o.calls, a.String())
	return nil
}

func (o *failingOutput) WriteLineTerminator() error {
	o.calls = append(o.calls, "eol")
	return nil
}

func TestRun_WriteErrorStopsAfterLine(t *testing.T) {
	out := &failingOutput{}
	loop := &tee.Loop{Sinks: out, Bold: true}

	err := loop.Run(context.Background(), strings.NewReader("one\ntwo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, []string{"bold", "text", "reset", "eol"}, out.calls)
}

func TestRun_Cancellation(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	f := newFixture(t, sink.HTML("/live.html"))
	loop := &tee.Loop{Sinks: f.mux, Mode: tee.ModePlain}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- loop.Run(ctx, pr) }()

	_, err := io.WriteString(pw, "streaming\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return f.console.String() == "streaming\n"
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}

	require.NoError(t, f.mux.CloseAll())
	html := f.file(t, "/live.html")
	assert.Contains(t, html, "streaming\n")
	assert.True(t, strings.HasSuffix(html, sink.HTMLTrailer))
}

func TestRun_Metrics(t *testing.T) {
	rec, err := metrics.New()
	require.NoError(t, err)

	f := newFixture(t)
	loop := &tee.Loop{
		Sinks:   f.mux,
		Matcher: rules.New(rules.Rule{Substring: "ERROR", Color: colors.Red}),
		Metrics: rec,
	}
	require.NoError(t, loop.Run(context.Background(), strings.NewReader("ERROR a\nok\nERROR b\n")))

	count, err := testutil.GatherAndCount(rec.Registry(), "coloring_tee_lines_total", "coloring_tee_lines_matched_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(`
# HELP coloring_tee_lines_matched_total Lines colored by a rule, partitioned by color.
# TYPE coloring_tee_lines_matched_total counter
coloring_tee_lines_matched_total{color="red"} 2
# HELP coloring_tee_lines_total Input lines processed.
# TYPE coloring_tee_lines_total counter
coloring_tee_lines_total 3
`), "coloring_tee_lines_total", "coloring_tee_lines_matched_total"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "colored", tee.ModeColored.String())
	assert.Equal(t, "plain", tee.ModePlain.String())
}
