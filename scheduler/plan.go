package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

// Plan is the outcome of one scheduling call.
type Plan struct {
	Ordered job.List

	// Assignments holds the launch jobs sorted by completion time, then
	// queue index. Empty when no launch job was scheduled.
	Assignments Assignments
	Makespan    uint64
	QueueSlots  int

	// Candidates is the number of queue assignments enumerated.
	Candidates uint64
}

// Lanes groups the assignments per queue, each lane sorted by start time.
func (p *Plan) Lanes() []Assignments {
	lanes := make([]Assignments, p.QueueSlots)
	for _, a := range p.Assignments {
		lanes[a.Queue] = append(lanes[a.Queue], a)
	}
	for _, lane := range lanes {
		sort.SliceStable(lane, func(i, j int) bool {
			return lane[i].Start < lane[j].Start
		})
	}
	return lanes
}

func (p *Plan) String() string {
	var b strings.Builder
	b.WriteString("queues: \n")
	for q, lane := range p.Lanes() {
		parts := make([]string, len(lane))
		for i, a := range lane {
			parts[i] = a.String()
		}
		fmt.Fprintf(&b, "%d: %s\n", q, strings.Join(parts, " "))
	}
	fmt.Fprintf(&b, "makespan: %d\n", p.Makespan)
	b.WriteString("ordered jobs: \n")
	for _, d := range p.Ordered {
		b.WriteString(d.Name() + "\n")
	}
	return b.String()
}
