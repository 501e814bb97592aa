package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"go.uber.org/zap"

	"github.com/mrjamesdickson/xnat-selenium-tests/catalog"
	"github.com/mrjamesdickson/xnat-selenium-tests/job"
	"github.com/mrjamesdickson/xnat-selenium-tests/scheduler"
)

func addSchedulingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("suite", 1, "Suite id whose catalog jobs are scheduled")
	cmd.Flags().StringSlice("jobs", nil, "Explicit catalog job names to schedule, in this order, instead of a whole suite")
	cmd.Flags().Int("queue-slots", 3, "Number of parallel queues launch jobs are spread over")
	cmd.Flags().Bool("completion-order", false, "Emit launch jobs by completion time instead of input order")
}

func selectedJobs(cmd *cobra.Command) (job.List, error) {
	if names := sflags.MustGetStringSlice(cmd, "jobs"); len(names) != 0 {
		jobs, err := catalog.Reference.Lookup(names...)
		if err != nil {
			return nil, fmt.Errorf("select jobs: %w", err)
		}
		return jobs, nil
	}

	suiteID := sflags.MustGetInt(cmd, "suite")
	jobs := catalog.Reference.JobsForSuite(suiteID)
	if len(jobs) == 0 {
		return nil, fmt.Errorf("suite %d has no jobs, known suites are %v", suiteID, catalog.Reference.Suites())
	}
	return jobs, nil
}

func planSelectedJobs(cmd *cobra.Command) (*scheduler.Plan, error) {
	jobs, err := selectedJobs(cmd)
	if err != nil {
		return nil, err
	}

	var opts []scheduler.Option
	if sflags.MustGetBool(cmd, "completion-order") {
		opts = append(opts, scheduler.WithCompletionOrderedLaunches())
	}
	opts = append(opts, scheduler.WithLogger(zlog))

	queueSlots := sflags.MustGetInt(cmd, "queue-slots")
	zlog.Debug("planning jobs", zap.Array("jobs", jobs), zap.Int("queue_slots", queueSlots))

	plan, err := scheduler.NewSorter(opts...).Plan(jobs, queueSlots)
	if err != nil {
		return nil, fmt.Errorf("order jobs: %w", err)
	}
	return plan, nil
}
