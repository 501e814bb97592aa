package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

// Sorter orders pipeline jobs so that launch jobs are spread over a fixed
// number of queues and every check job runs once its launch job is done.
// A Sorter holds no per-call state and is safe for concurrent use.
type Sorter struct {
	prefixes                  Prefixes
	completionOrderedLaunches bool
	logger                    *zap.Logger
}

type Option func(s *Sorter)

func WithPrefixes(p Prefixes) Option {
	return func(s *Sorter) {
		s.prefixes = p
	}
}

// WithCompletionOrderedLaunches emits the launch jobs by completion time
// instead of in input order.
func WithCompletionOrderedLaunches() Option {
	return func(s *Sorter) {
		s.completionOrderedLaunches = true
	}
}

// WithLogger replaces the package logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sorter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSorter(opts ...Option) *Sorter {
	s := &Sorter{
		prefixes: DefaultPrefixes,
		logger:   zlog,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSorter = NewSorter()

// OrderByJobShopSolution orders jobs with the default Sorter.
func OrderByJobShopSolution(jobs job.List, queueSlots int) (job.List, error) {
	return defaultSorter.OrderByJobShopSolution(jobs, queueSlots)
}

// OrderByJobShopSolution returns a permutation of jobs: the launch jobs,
// then their check jobs in launch completion order, then every other job
// in input order. Input without launch jobs is returned unchanged.
func (s *Sorter) OrderByJobShopSolution(jobs job.List, queueSlots int) (job.List, error) {
	plan, err := s.Plan(jobs, queueSlots)
	if err != nil {
		return nil, err
	}
	return plan.Ordered, nil
}

// Plan computes the same ordering as OrderByJobShopSolution and keeps the
// queue assignment that produced it.
func (s *Sorter) Plan(jobs job.List, queueSlots int) (*Plan, error) {
	if queueSlots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQueueSlots, queueSlots)
	}

	var launches job.List
	var launchPositions []int
	for i, d := range jobs {
		if s.prefixes.IsLaunch(d.Name()) {
			launches = append(launches, d)
			launchPositions = append(launchPositions, i)
		}
	}

	if len(launches) == 0 {
		ordered := make(job.List, len(jobs))
		copy(ordered, jobs)
		return &Plan{Ordered: ordered, QueueSlots: queueSlots}, nil
	}

	sol, err := solve(launches, launchPositions, queueSlots)
	if err != nil {
		return nil, fmt.Errorf("solve schedule: %w", err)
	}
	completion := sol.assignments.byCompletion()

	ordered := make(job.List, 0, len(jobs))
	used := make([]bool, len(jobs))
	place := func(pos int) {
		ordered = append(ordered, jobs[pos])
		used[pos] = true
	}

	if s.completionOrderedLaunches {
		for _, a := range completion {
			place(a.input)
		}
	} else {
		for _, pos := range launchPositions {
			place(pos)
		}
	}

	for _, a := range completion {
		checkName := s.prefixes.CheckNameFor(a.Job.Name())
		pos := indexOf(jobs, checkName)
		if pos == -1 {
			return nil, &MissingCheckError{LaunchJob: a.Job.Name(), CheckJob: checkName}
		}
		if !used[pos] {
			place(pos)
		}
	}

	for pos := range jobs {
		if !used[pos] {
			place(pos)
		}
	}

	plan := &Plan{
		Ordered:     ordered,
		Assignments: completion,
		Makespan:    sol.makespan,
		QueueSlots:  queueSlots,
		Candidates:  sol.candidates,
	}

	s.logger.Debug("ordered jobs by job shop solution",
		zap.Int("job_count", len(jobs)),
		zap.Int("launch_count", len(launches)),
		zap.Int("queue_slots", queueSlots),
		zap.Uint64("makespan", plan.Makespan),
		zap.Uint64("candidates", plan.Candidates),
		zap.Strings("ordered", ordered.Names()),
	)
	return plan, nil
}

// indexOf returns the position of the first job named name, or -1.
func indexOf(jobs job.List, name string) int {
	for i, d := range jobs {
		if d.Name() == name {
			return i
		}
	}
	return -1
}
