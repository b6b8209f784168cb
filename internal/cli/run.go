package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MilosSubotic/coloring-tee/pkg/config"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
	"github.com/MilosSubotic/coloring-tee/pkg/metrics"
	"github.com/MilosSubotic/coloring-tee/pkg/rules"
	"github.com/MilosSubotic/coloring-tee/pkg/sink"
	"github.com/MilosSubotic/coloring-tee/pkg/tee"
	"github.com/MilosSubotic/coloring-tee/pkg/ui"
)

type runOptions struct {
	configPath       string
	appendMode       bool
	ignoreInterrupts bool
	htmlFiles        []string
	noColors         bool
	noBold           bool
	colorSchemes     []string
	colorMode        string
	metricsFile      string
	files            []string
}

// overrides turns the flags the operator set into configuration overrides
func (o *runOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("no-bold") && o.noBold {
		overrides["defaults.bold"] = false
	}
	if cmd.Flags().Changed("color-schemes") {
		overrides["defaults.color_schemes"] = o.colorSchemes
	}
	return overrides
}

// requests lists the sinks to open: plain FILEs first, then HTML files
func (o *runOptions) requests() []sink.Request {
	reqs := make([]sink.Request, 0, len(o.files)+len(o.htmlFiles))
	for _, f := range o.files {
		reqs = append(reqs, sink.Plain(f))
	}
	for _, f := range o.htmlFiles {
		reqs = append(reqs, sink.HTML(f))
	}
	return reqs
}

// loadConfig resolves and loads the configuration. Problems with the
// per-user file that still allow a run are reported on reporter.
func loadConfig(cmd *cobra.Command, env Env, opts *runOptions, reporter *ui.Reporter) (*config.Config, error) {
	res, err := config.Resolve(env.Paths, env.fs(), opts.configPath)
	if err != nil {
		return nil, err
	}
	if res.Warning != nil {
		reporter.Warn(res.Warning)
	}
	if res.Created {
		reporter.Infof(MsgConfigCreated, res.Path)
	}

	return config.Load(config.Options{
		Path:      res.Path,
		FS:        env.FS,
		Overrides: opts.overrides(cmd),
	})
}

func run(cmd *cobra.Command, env Env, opts *runOptions) error {
	logger := logging.GetLogger("cli")
	stdout := cmd.OutOrStdout()
	reporter := ui.NewReporter(cmd.ErrOrStderr(), ProgramName)

	colorMode, err := ui.ParseColorMode(opts.colorMode)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, env, opts, reporter)
	if err != nil {
		return err
	}

	mode := tee.ModeColored
	if opts.noColors {
		mode = tee.ModePlain
	}

	matcher := rules.New()
	if mode == tee.ModeColored {
		var unknown []string
		matcher, unknown = rules.FromSchemes(cfg.Schemes, cfg.Defaults.ColorSchemes)
		for _, name := range unknown {
			reporter.Warnf(MsgUnknownScheme, name)
		}
	}

	var recorder *metrics.Recorder
	if opts.metricsFile != "" {
		if recorder, err = metrics.New(); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot set up metrics")
		}
	}

	console := sink.NewConsoleSink(stdout)
	console.SetColoringEnabled(colorMode.Enabled(stdout))
	mux := sink.NewMultiplexer(console)

	opener := sink.NewOpener(env.fs(), stdout, opts.appendMode)
	for _, warning := range mux.Open(opener, opts.requests()...) {
		reporter.Warn(warning)
		if kind, ok := errors.GetErrorDetails(warning)["kind"].(string); ok {
			recorder.SinkOpenFailed(kind)
		}
	}
	recorder.SetSinks(mux.Len())

	loop := &tee.Loop{
		Sinks:   mux,
		Matcher: matcher,
		Mode:    mode,
		Bold:    cfg.Defaults.Bold,
		Metrics: recorder,
	}

	logger.Info().
		Int("sinks", mux.Len()).
		Int("rules", matcher.Len()).
		Str("mode", mode.String()).
		Bool("bold", loop.Bold).
		Msg("Teeing standard input")

	ctx, caught, stop := notifyContext(cmd.Context(), opts.ignoreInterrupts)
	defer stop()

	runErr := loop.Run(ctx, cmd.InOrStdin())
	closeErr := mux.CloseAll()

	if opts.metricsFile != "" {
		if err := recorder.WriteTextfile(opts.metricsFile); err != nil {
			reporter.Warn(err)
		}
	}

	if sig := caught(); sig != nil {
		logger.Info().Str("signal", sig.String()).Msg("Interrupted")
		return interrupted(sig)
	}
	if runErr != nil {
		if closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Closing sinks failed")
		}
		return runErr
	}
	return closeErr
}

// notifyContext cancels the returned context on SIGINT or SIGTERM and
// reports which signal did it. With ignoreInterrupts SIGINT is ignored.
func notifyContext(parent context.Context, ignoreInterrupts bool) (context.Context, func() os.Signal, func()) {
	ctx, cancel := context.WithCancel(parent)

	signals := []os.Signal{syscall.SIGTERM}
	if ignoreInterrupts {
		signal.Ignore(os.Interrupt)
	} else {
		signals = append(signals, os.Interrupt)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	got := make(chan os.Signal, 1)
	go func() {
		select {
		case sig := <-ch:
			got <- sig
			cancel()
		case <-ctx.Done():
		}
	}()

	var sig os.Signal
	caught := func() os.Signal {
		if sig != nil {
			return sig
		}
		select {
		case sig = <-got:
		default:
		}
		return sig
	}
	stop := func() {
		signal.Stop(ch)
		cancel()
	}
	return ctx, caught, stop
}

// interrupted is the error for a run ended by sig. Its exit status follows
// the shell convention of 128 plus the signal number.
func interrupted(sig os.Signal) error {
	status := 1
	if s, ok := sig.(syscall.Signal); ok {
		status = 128 + int(s)
	}
	return errors.Newf(errors.ErrInterrupted, "interrupted by %s", sig).
		WithDetail("signal", sig.String()).
		WithDetail("status", status)
}

// ExitStatus is the process exit status for an error returned by a command
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrInterrupted) {
		if status, ok := errors.GetErrorDetails(err)["status"].(int); ok {
			return status
		}
	}
	return 1
}

// Report prints err for the operator unless it only records an interrupt
func Report(w io.Writer, err error) {
	if err == nil || errors.IsErrorCode(err, errors.ErrInterrupted) {
		return
	}
	ui.NewReporter(w, ProgramName).Error(err)
}
