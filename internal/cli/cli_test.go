package cli

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosSubotic/coloring-tee/pkg/config"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
)

const (
	configPath = "/cfg/tee.toml"
	userConfig = "/home/u/.config/coloring-tee/config.toml"
	input      = "hello\nERROR: disk full\nbye\n"
)

const buildConfig = `
[coloring_tee_config.defaults]
color_schemes = ["build"]
bold = true

[coloring_tee_config.color_schemes]
build = [
  { searchString = "ERROR", color = "red" },
  { searchString = "WARN", color = "yellow" },
]
tests = [
  { searchString = "FAIL", color = "red" },
]
`

type fixedPaths struct{}

func (fixedPaths) ConfigDir() string      { return filepath.Dir(userConfig) }
func (fixedPaths) UserConfigPath() string { return userConfig }
func (fixedPaths) StateDir() string       { return "/home/u/.local/state/coloring-tee" }
func (fixedPaths) LogFilePath() string    { return "/home/u/.local/state/coloring-tee/coloring-tee.log" }

// deniedFS refuses to open the listed output paths
type deniedFS struct {
	filesystem.FS
	denied map[string]bool
}

func (d *deniedFS) OpenOutput(name string, appendMode bool) (io.WriteCloser, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.FS.OpenOutput(name, appendMode)
}

type result struct {
	stdout string
	stderr string
	err    error
}

func newMemoryFS(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/cfg", 0755))
	require.NoError(t, fsys.MkdirAll("/out", 0755))
	require.NoError(t, fsys.WriteFile(configPath, []byte(buildConfig), 0644))
	return fsys
}

func execute(t *testing.T, fsys filesystem.FS, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmdWithEnv(Env{FS: fsys, Paths: fixedPaths{}})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, fsys filesystem.FS, name string) string {
	t.Helper()
	data, err := fsys.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestRun_ColorsConsoleAndTeesFiles(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, input, "--config", configPath, "--html", "/out/build.html", "/out/build.log")
	require.NoError(t, res.err)

	assert.Equal(t,
		"\x1b[1mhello\x1b[0m\n\x1b[31m\x1b[1mERROR: disk full\x1b[0m\n\x1b[1mbye\x1b[0m\n",
		res.stdout)
	assert.Empty(t, res.stderr)

	assert.Equal(t, input, readFile(t, fsys, "/out/build.log"))

	html := readFile(t, fsys, "/out/build.html")
	assert.Contains(t, html, "<title>/out/build.html</title>")
	assert.Contains(t, html, "ERROR: disk full")
	assert.True(t, strings.HasSuffix(html, "</html>\n"))
}

func TestRun_NoColors(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, input, "--config", configPath, "--no-colors", "/out/build.log")
	require.NoError(t, res.err)

	assert.Equal(t, input, res.stdout)
	assert.Equal(t, input, readFile(t, fsys, "/out/build.log"))
}

func TestRun_NoBold(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, "hello\n", "--config", configPath, "--no-bold")
	require.NoError(t, res.err)
	assert.Equal(t, "hello\x1b[0m\n", res.stdout)
}

func TestRun_ColorNever(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, input, "--config", configPath, "--color", "never", "--html", "/out/build.html")
	require.NoError(t, res.err)

	assert.Equal(t, input, res.stdout)
	assert.Contains(t, readFile(t, fsys, "/out/build.html"), `color: #f00;`)
}

func TestRun_InvalidColorMode(t *testing.T) {
	res := execute(t, newMemoryFS(t), input, "--config", configPath, "--color", "sometimes")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
	assert.Empty(t, res.stdout)
}

func TestRun_DashCopiesToStdout(t *testing.T) {
	res := execute(t, newMemoryFS(t), "one\ntwo\n", "--config", configPath, "--no-colors", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "one\none\ntwo\ntwo\n", res.stdout)
}

func TestRun_Append(t *testing.T) {
	fsys := newMemoryFS(t)
	require.NoError(t, fsys.WriteFile("/out/build.log", []byte("earlier\n"), 0644))

	res := execute(t, fsys, "later\n", "--config", configPath, "-a", "/out/build.log")
	require.NoError(t, res.err)
	assert.Equal(t, "earlier\nlater\n", readFile(t, fsys, "/out/build.log"))
}

func TestRun_SelectSchemes(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, "FAIL: TestX\nERROR: x\n", "--config", configPath, "--no-bold", "-c", "tests,rust")
	require.NoError(t, res.err)

	assert.Equal(t, "\x1b[31mFAIL: TestX\x1b[0m\nERROR: x\x1b[0m\n", res.stdout)
	assert.Equal(t, "coloring-tee: unknown color scheme \"rust\"\n", res.stderr)
}

func TestRun_NoColorsSkipsSchemes(t *testing.T) {
	res := execute(t, newMemoryFS(t), input, "--config", configPath, "--no-colors", "-c", "tests,rust")
	require.NoError(t, res.err)

	assert.Equal(t, input, res.stdout)
	assert.Empty(t, res.stderr, "schemes are not resolved when nothing is colored")
}

func TestRun_ConfigWithoutSchemesIsFatal(t *testing.T) {
	fsys := newMemoryFS(t)
	require.NoError(t, fsys.WriteFile(configPath, []byte("[something_else]\nx = 1\n"), 0644))

	res := execute(t, fsys, input, "--config", configPath)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigInvalid))
	assert.Empty(t, res.stdout)
}

func TestRun_SinkOpenFailureWarnsAndContinues(t *testing.T) {
	fsys := &deniedFS{FS: newMemoryFS(t), denied: map[string]bool{"/out/b.html": true}}

	res := execute(t, fsys, input, "--config", configPath, "--no-colors", "-H", "/out/a.html", "-H", "/out/b.html")
	require.NoError(t, res.err)

	assert.Equal(t, "coloring-tee: /out/b.html: Permission denied\n", res.stderr)
	assert.Equal(t, input, res.stdout)
	assert.Contains(t, readFile(t, fsys, "/out/a.html"), "ERROR: disk full")

	_, err := fsys.Stat("/out/b.html")
	assert.Error(t, err)
}

func TestRun_InvalidConfigIsFatal(t *testing.T) {
	fsys := newMemoryFS(t)
	require.NoError(t, fsys.WriteFile(configPath, []byte(`
[coloring_tee_config.color_schemes]
build = [ { searchString = "ERROR", color = "orange" } ]
`), 0644))

	res := execute(t, fsys, input, "--config", configPath, "/out/build.log")
	require.Error(t, res.err)
	assert.True(t, errors.IsConfigError(res.err))
	assert.Equal(t, 1, ExitStatus(res.err))
	assert.Empty(t, res.stdout)

	_, err := fsys.Stat("/out/build.log")
	assert.Error(t, err, "no sink is opened before the configuration loads")
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	res := execute(t, newMemoryFS(t), input, "--config", "/cfg/missing.toml")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
}

func TestRun_CreatesUserConfig(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, "main.c:3: error: x\n", "--no-bold")
	require.NoError(t, res.err)

	assert.Equal(t, config.DefaultConfigContent(), readFile(t, fsys, userConfig))
	assert.Equal(t, "coloring-tee: created configuration file "+userConfig+"\n", res.stderr)
	assert.Equal(t, "\x1b[31mmain.c:3: error: x\x1b[0m\n", res.stdout)
}

func TestRun_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "tee.prom")

	res := execute(t, newMemoryFS(t), input, "--config", configPath, "--metrics-file", metricsPath, "/out/build.log")
	require.NoError(t, res.err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "coloring_tee_lines_total 3")
	assert.Contains(t, string(data), `coloring_tee_lines_matched_total{color="red"} 1`)
	assert.Contains(t, string(data), "coloring_tee_sinks 2")
}

func TestSchemes_Text(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "schemes", "--config", configPath, "-o", "text")
	require.NoError(t, res.err)

	assert.Equal(t,
		"build (selected)\n"+
			"  red      \"ERROR\"\n"+
			"  yellow   \"WARN\"\n"+
			"\n"+
			"tests\n"+
			"  red      \"FAIL\"\n",
		res.stdout)
}

func TestSchemes_TOMLLoadsBack(t *testing.T) {
	fsys := newMemoryFS(t)

	res := execute(t, fsys, "", "schemes", "--config", configPath, "-o", "toml")
	require.NoError(t, res.err)

	require.NoError(t, fsys.WriteFile("/cfg/exported.toml", []byte(res.stdout), 0644))
	cfg, err := config.Load(config.Options{Path: "/cfg/exported.toml", FS: fsys})
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "tests"}, cfg.SchemeNames())
	assert.Equal(t, []string{"build"}, cfg.Defaults.ColorSchemes)
}

func TestSchemes_YAML(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "schemes", "--config", configPath, "-o", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "coloring_tee_config:")
	assert.Contains(t, res.stdout, "searchString: ERROR")
}

func TestSchemes_Terminal(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "schemes", "--config", configPath, "-o", "term")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "build")
	assert.Contains(t, res.stdout, "ERROR")
}

func TestSchemes_UnknownFormat(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "schemes", "--config", configPath, "-o", "json")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestSchemesMarkdownEscapesCells(t *testing.T) {
	assert.Equal(t, `a\|b \*\*\*`, markdownCell("a|b ***"))
}

func TestGenConfig(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "genconfig")
	require.NoError(t, res.err)
	assert.Equal(t, config.DefaultConfigContent(), res.stdout)

	res = execute(t, newMemoryFS(t), "", "genconfig", "--commented")
	require.NoError(t, res.err)
	assert.Equal(t, config.GenerateConfigContent(), res.stdout)
}

func TestVersion(t *testing.T) {
	res := execute(t, newMemoryFS(t), "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "coloring-tee version "))
	assert.Contains(t, res.stdout, "commit:")

	res = execute(t, newMemoryFS(t), "", "--version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "coloring-tee version "))
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, ExitStatus(nil))
	assert.Equal(t, 1, ExitStatus(errors.New(errors.ErrSinkWrite, "out.log")))
	assert.Equal(t, 130, ExitStatus(interrupted(syscall.SIGINT)))
	assert.Equal(t, 143, ExitStatus(interrupted(syscall.SIGTERM)))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, interrupted(syscall.SIGINT))
	assert.Empty(t, buf.String())

	Report(&buf, errors.New(errors.ErrConfigInvalid, "rule 1 of scheme \"gcc\" has no color"))
	assert.Equal(t, "coloring-tee: rule 1 of scheme \"gcc\" has no color\n", buf.String())
}
