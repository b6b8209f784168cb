package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MilosSubotic/coloring-tee/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, ProgramName, version.Version)
			_, _ = fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			_, _ = fmt.Fprintf(out, MsgVersionBuilt, version.Date)
		},
	}
}
