package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

func randomJobSet(rnd *rand.Rand) job.List {
	var jobs job.List
	launchCount := rnd.Intn(5)
	for i := 0; i < launchCount; i++ {
		suffix := fmt.Sprintf("%d", i)
		jobs = append(jobs, job.New("testLaunch"+suffix, 1).WithRuntime(uint64(1+rnd.Intn(40))))
		jobs = append(jobs, job.New("testCheck"+suffix, 1))
	}
	for i := rnd.Intn(3); i > 0; i-- {
		jobs = append(jobs, job.New(fmt.Sprintf("unrelated%d", i)))
	}
	rnd.Shuffle(len(jobs), func(i, j int) { jobs[i], jobs[j] = jobs[j], jobs[i] })
	return jobs
}

func TestOrderByJobShopSolution_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	sorter := NewSorter()

	for i := 0; i < 150; i++ {
		jobs := randomJobSet(rnd)
		queueSlots := 1 + rnd.Intn(3)

		t.Run(fmt.Sprintf("%s/%d", jobs, queueSlots), func(t *testing.T) {
			plan, err := sorter.Plan(jobs, queueSlots)
			require.NoError(t, err)
			ordered := plan.Ordered

			assertPermutation(t, jobs, ordered)

			if len(plan.Assignments) == 0 {
				assert.True(t, jobs.Equal(ordered), "no launch jobs must pass through")
				return
			}

			position := map[string]int{}
			for idx, d := range ordered {
				position[d.Name()] = idx
			}
			for idx, a := range plan.Assignments {
				launch := a.Job.Name()
				check := DefaultPrefixes.CheckNameFor(launch)
				assert.Greater(t, position[check], position[launch], "%s after %s", check, launch)

				for _, later := range plan.Assignments[idx+1:] {
					if later.Completion() > a.Completion() {
						laterCheck := DefaultPrefixes.CheckNameFor(later.Job.Name())
						assert.Less(t, position[check], position[laterCheck], "%s before %s", check, laterCheck)
					}
				}
			}

			expectSpan, _ := referenceSolve(launchRuntimes(jobs), queueSlots)
			assert.Equal(t, expectSpan, plan.Makespan)
		})
	}
}

func launchRuntimes(jobs job.List) (out []uint64) {
	for _, d := range jobs {
		if DefaultPrefixes.IsLaunch(d.Name()) {
			r, _ := d.EstimatedRuntime()
			out = append(out, r)
		}
	}
	return
}

func assertPermutation(t *testing.T, in, out job.List) {
	t.Helper()
	require.Len(t, out, len(in))

	key := func(l job.List) []string {
		var keys []string
		for _, d := range l {
			keys = append(keys, d.String())
		}
		sort.Strings(keys)
		return keys
	}
	assert.Equal(t, key(in), key(out))
}

func TestSorter_ConcurrentUse(t *testing.T) {
	jobs := job.List{
		job.New("testLaunchA").WithRuntime(4),
		job.New("testLaunchB").WithRuntime(3),
		job.New("testLaunchC").WithRuntime(2),
		job.New("testCheckA"),
		job.New("testCheckB"),
		job.New("testCheckC"),
	}
	expect, err := OrderByJobShopSolution(jobs, 2)
	require.NoError(t, err)

	results := make(chan job.List, 8)
	for i := 0; i < 8; i++ {
		go func() {
			ordered, err := OrderByJobShopSolution(jobs, 2)
			if err != nil {
				results <- nil
				return
			}
			results <- ordered
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, expect.Names(), (<-results).Names())
	}
}
