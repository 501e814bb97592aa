package scheduler

import (
	"math/bits"

	"go.uber.org/zap"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

type solution struct {
	// assignments follow the order of the launch jobs given to solve
	assignments Assignments
	makespan    uint64
	candidates  uint64
}

// solve assigns every launch job to one of queueSlots queues, minimizing
// the makespan. It enumerates all queueSlots^len(launches) candidates with
// an odometer whose first digit turns slowest, so candidates come in
// lexicographic order of their queue tuple. Among candidates of equal
// makespan the lexicographically smallest tuple wins.
//
// Within a queue, jobs run in the order they appear in launches.
func solve(launches job.List, inputPositions []int, queueSlots int) (*solution, error) {
	n := len(launches)
	choice := make([]int, n)
	loads := make([]uint64, queueSlots)

	var bestChoice []int
	var bestMakespan uint64
	var candidates uint64
	var firstErr error

	for {
		candidates++
		makespan, err := evaluate(launches, choice, loads)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
		} else if bestChoice == nil || makespan < bestMakespan || (makespan == bestMakespan && lexLess(choice, bestChoice)) {
			if bestChoice == nil {
				bestChoice = make([]int, n)
			}
			copy(bestChoice, choice)
			bestMakespan = makespan
		}

		if !advance(choice, queueSlots) {
			break
		}
	}

	if bestChoice == nil {
		return nil, firstErr
	}

	sol := &solution{
		assignments: make(Assignments, n),
		makespan:    bestMakespan,
		candidates:  candidates,
	}
	for q := range loads {
		loads[q] = 0
	}
	for i, launch := range launches {
		runtime, _ := launch.EstimatedRuntime()
		q := bestChoice[i]
		sol.assignments[i] = Assignment{
			Job:      launch,
			Queue:    q,
			Start:    loads[q],
			Duration: runtime,
			input:    inputPositions[i],
		}
		loads[q] += runtime
	}

	if tracer.Enabled() {
		zlog.Debug("solved launch assignment",
			zap.Int("queue_slots", queueSlots),
			zap.Ints("queues", bestChoice),
			zap.Uint64("makespan", bestMakespan),
			zap.Uint64("candidates", candidates),
		)
	}
	return sol, nil
}

// evaluate simulates one candidate and returns its makespan. A launch job
// without a runtime invalidates the candidate, and so does a queue whose
// load does not fit in a uint64.
func evaluate(launches job.List, choice []int, loads []uint64) (makespan uint64, err error) {
	for q := range loads {
		loads[q] = 0
	}
	overflow := false
	for i, launch := range launches {
		runtime, ok := launch.EstimatedRuntime()
		if !ok {
			return 0, &UnestimatedLaunchError{LaunchJob: launch.Name()}
		}
		var carry uint64
		loads[choice[i]], carry = bits.Add64(loads[choice[i]], runtime, 0)
		if carry != 0 {
			overflow = true
		}
	}
	if overflow {
		return 0, ErrRuntimeOverflow
	}
	for _, load := range loads {
		if load > makespan {
			makespan = load
		}
	}
	return makespan, nil
}

// advance moves choice to the next candidate, last digit fastest. It
// returns false once every candidate has been produced.
func advance(choice []int, queueSlots int) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < queueSlots {
			return true
		}
		choice[i] = 0
	}
	return false
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
