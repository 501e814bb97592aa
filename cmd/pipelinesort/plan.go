package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the queue assignment behind a suite's execution order",
	Long: cli.Dedent(`
		Show the queue assignment behind a suite's execution order: the launch jobs placed on each queue
		with their start and completion times, the resulting makespan, how many candidate assignments were
		evaluated, and finally the execution order itself.
	`),
	RunE:         runPlan,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func init() {
	addSchedulingFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	plan, err := planSelectedJobs(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(plan.Assignments) == 0 {
		fmt.Fprintln(out, "No launch jobs, order is left untouched")
	} else {
		fmt.Fprintln(out, "Queues:")
		for q, lane := range plan.Lanes() {
			parts := make([]string, len(lane))
			for i, a := range lane {
				parts[i] = a.String()
			}
			fmt.Fprintf(out, "  #%d: %s\n", q, strings.Join(parts, " "))
		}
		fmt.Fprintf(out, "Makespan: %s\n", formatUnits(plan.Makespan))
		fmt.Fprintf(out, "Candidates evaluated: %s\n", formatUnits(plan.Candidates))
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Order:")
	for i, d := range plan.Ordered {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, d.Name())
	}
	return nil
}

// formatUnits adds thousands separators to the full uint64 range.
func formatUnits(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
