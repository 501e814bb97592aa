package main

import (
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipelinesort",
	Short: "Order pipeline launch and check jobs over a fixed number of queues",
	Long: cli.Dedent(`
		Order pipeline launch and check jobs over a fixed number of queues. Launch jobs are spread over
		the queues so that the last queue finishes as early as possible, and every check job is placed
		after its launch job, following the launch completion order.
	`),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level, one of debug, info, warn, error")
}
