package cli

import (
	"github.com/spf13/cobra"

	"github.com/MilosSubotic/coloring-tee/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var commented bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Print the default configuration file. Redirect it to
$XDG_CONFIG_HOME/coloring-tee/config.toml and edit the color schemes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultConfigContent()
			if commented {
				content = config.GenerateConfigContent()
			}
			return writeString(cmd.OutOrStdout(), content)
		},
	}

	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	return cmd
}
