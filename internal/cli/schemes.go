package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/MilosSubotic/coloring-tee/pkg/config"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/ui"
)

func newSchemesCmd(env Env, opts *runOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: MsgSchemesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == ui.FormatAuto {
				format = ui.DetectFormat(out)
			}

			cfg, err := loadConfig(cmd, env, opts, ui.NewReporter(cmd.ErrOrStderr(), ProgramName))
			if err != nil {
				return err
			}

			switch format {
			case ui.FormatTOML, ui.FormatYAML:
				data, err := cfg.Export(format.String())
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return writeErr(err)
			case ui.FormatTerminal:
				return writeString(out, renderMarkdown(schemesMarkdown(cfg)))
			default:
				return writeString(out, schemesText(cfg))
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func selectedSet(cfg *config.Config) map[string]bool {
	set := make(map[string]bool, len(cfg.Defaults.ColorSchemes))
	for _, name := range cfg.Defaults.ColorSchemes {
		set[name] = true
	}
	return set
}

// schemesText lists every scheme with its rules in match order
func schemesText(cfg *config.Config) string {
	names := cfg.SchemeNames()
	if len(names) == 0 {
		return MsgNoSchemes + "\n"
	}

	selected := selectedSet(cfg)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(name)
		if selected[name] {
			fmt.Fprintf(&b, " (%s)", MsgSchemeSelected)
		}
		b.WriteString("\n")
		for _, rule := range cfg.SchemeRules(name) {
			fmt.Fprintf(&b, "  %-8s %q\n", rule.Color, rule.SearchString)
		}
	}
	return b.String()
}

func schemesMarkdown(cfg *config.Config) string {
	names := cfg.SchemeNames()
	if len(names) == 0 {
		return MsgNoSchemes + "\n"
	}

	selected := selectedSet(cfg)
	var b strings.Builder
	b.WriteString("# Color schemes\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\n## %s", name)
		if selected[name] {
			fmt.Fprintf(&b, " (%s)", MsgSchemeSelected)
		}
		b.WriteString("\n\n| Search string | Color |\n|---|---|\n")
		for _, rule := range cfg.SchemeRules(name) {
			fmt.Fprintf(&b, "| %s | %s |\n", markdownCell(rule.SearchString), rule.Color)
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, "`", "\\`", `*`, `\*`, `_`, `\_`)

func markdownCell(s string) string {
	return markdownEscaper.Replace(s)
}

// renderMarkdown renders content for the terminal, falling back to the
// markdown source when glamour cannot
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return writeErr(err)
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.ErrSinkWrite, "standard output")
}
