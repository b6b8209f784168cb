package main

import (
	"os"

	"github.com/MilosSubotic/coloring-tee/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.ExitStatus(err))
	}
}
