package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MilosSubotic/coloring-tee/internal/version"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
	"github.com/MilosSubotic/coloring-tee/pkg/paths"
)

// Env is what the commands read from and write to besides the standard
// streams, which come from the cobra command.
type Env struct {
	// FS opens output files and the configuration. Nil means the real
	// file system.
	FS filesystem.FS
	// Paths locates the per-user configuration
	Paths paths.Paths
	// SetupLogger configures logging for the parsed verbosity
	SetupLogger func(verbosity int)
}

func (e Env) fs() filesystem.FS {
	if e.FS == nil {
		return filesystem.NewOS()
	}
	return e.FS
}

// NewRootCmd creates the root command working on the real system
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(Env{
		Paths:       paths.New(),
		SetupLogger: logging.SetupLogger,
	})
}

// NewRootCmdWithEnv creates the root command for env
func NewRootCmdWithEnv(env Env) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:     ProgramName + " [flags] [FILE]...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if env.SetupLogger != nil {
				env.SetupLogger(verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			return run(cmd, env, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.appendMode, "append", "a", false, MsgFlagAppend)
	flags.BoolVarP(&opts.ignoreInterrupts, "ignore-interrupts", "i", false, MsgFlagIgnoreInterrupts)
	flags.StringArrayVarP(&opts.htmlFiles, "html", "H", nil, MsgFlagHTML)
	flags.BoolVar(&opts.noColors, "no-colors", false, MsgFlagNoColors)
	flags.BoolVar(&opts.noBold, "no-bold", false, MsgFlagNoBold)
	flags.StringSliceVarP(&opts.colorSchemes, "color-schemes", "c", nil, MsgFlagColorSchemes)
	flags.StringVar(&opts.colorMode, "color", "always", MsgFlagColor)
	flags.StringVar(&opts.metricsFile, "metrics-file", "", MsgFlagMetricsFile)
	flags.SortFlags = false

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(ProgramName + " version {{.Version}}\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSchemesCmd(env, opts))
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}
