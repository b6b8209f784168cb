package cli

import (
	_ "embed"
	"strings"
)

// ProgramName prefixes every operator message
const ProgramName = "coloring-tee"

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Copy standard input to files, coloring matched lines"
	MsgVersionShort   = "Print version information"
	MsgSchemesShort   = "List the configured color schemes and their rules"
	MsgGenConfigShort = "Print the default configuration file"

	// Flag descriptions
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAppend           = "Append to the given FILEs, do not overwrite"
	MsgFlagIgnoreInterrupts = "Ignore interrupt signals"
	MsgFlagHTML             = "Also write the colored output as HTML to FILE (repeatable)"
	MsgFlagNoColors         = "Do not color any output"
	MsgFlagNoBold           = "Do not print lines in bold"
	MsgFlagColorSchemes     = "Color schemes to apply, in order (comma separated)"
	MsgFlagConfig           = "Configuration file (default $XDG_CONFIG_HOME/coloring-tee/config.toml)"
	MsgFlagColor            = "Color the console: always, auto or never"
	MsgFlagMetricsFile      = "Write run counters in Prometheus text format to FILE on exit"
	MsgFlagOutput           = "Output format: term, text, toml or yaml (default: auto)"
	MsgFlagCommented        = "Comment out every value so the file only documents the defaults"

	// Status messages
	MsgUnknownScheme     = "unknown color scheme %q"
	MsgConfigCreated     = "created configuration file %s"
	MsgNoSchemes         = "No color schemes configured."
	MsgSchemeSelected    = "selected"
	MsgVersionFormat     = "%s version %s\n"
	MsgVersionCommit     = "  commit: %s\n"
	MsgVersionBuilt      = "  built:  %s\n"
	MsgMetricsWriteError = "cannot write metrics"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
