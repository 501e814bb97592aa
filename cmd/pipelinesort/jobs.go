package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
	"github.com/streamingfast/cli/sflags"

	"github.com/mrjamesdickson/xnat-selenium-tests/catalog"
	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the jobs of the built-in catalog",
	Long: cli.Dedent(`
		List the jobs of the built-in catalog in catalog order, with their estimated runtime and the
		suites they belong to. Use --suite to restrict the listing to one suite.
	`),
	RunE:         runJobs,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func init() {
	jobsCmd.Flags().Int("suite", 0, "When non-zero, only list jobs owned by this suite id")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	jobs := catalog.Reference.Jobs()
	if suiteID := sflags.MustGetInt(cmd, "suite"); suiteID != 0 {
		jobs = catalog.Reference.JobsForSuite(suiteID)
	}

	out := cmd.OutOrStdout()
	for _, d := range jobs {
		fmt.Fprintf(out, "%-16s %-8s %s\n", d.Name(), runtimeLabel(d), suitesLabel(d))
	}
	return nil
}

func runtimeLabel(d job.Descriptor) string {
	runtime, ok := d.EstimatedRuntime()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", runtime)
}

func suitesLabel(d job.Descriptor) string {
	var parts []string
	for _, s := range d.Suites() {
		parts = append(parts, fmt.Sprintf("%d", s))
	}
	return strings.Join(parts, ",")
}
