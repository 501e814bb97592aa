package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the execution order of a suite's jobs",
	Long: cli.Dedent(`
		Print the execution order of a suite's jobs, one job name per line. Launch jobs come first,
		then the check jobs in the order their launch jobs complete, then every remaining job.
	`),
	Example: cli.Dedent(`
		pipelinesort order --suite 1 --queue-slots 3
		pipelinesort order --jobs testLaunch50,testLaunch30,testCheck30,testCheck50 --queue-slots 2
	`),
	RunE:         runOrder,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func init() {
	addSchedulingFlags(orderCmd)
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, _ []string) error {
	plan, err := planSelectedJobs(cmd)
	if err != nil {
		return err
	}

	for _, d := range plan.Ordered {
		fmt.Fprintln(cmd.OutOrStdout(), d.Name())
	}
	return nil
}
