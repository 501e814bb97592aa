package scheduler

import (
	"fmt"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

// Assignment places one launch job on a queue.
type Assignment struct {
	Job      job.Descriptor
	Queue    int
	Start    uint64
	Duration uint64

	// position of Job in the scheduled input
	input int
}

func (a Assignment) Completion() uint64 {
	return a.Start + a.Duration
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s[%d-%d]", a.Job.Name(), a.Start, a.Completion())
}

func (a Assignment) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("job", a.Job.Name())
	enc.AddInt("queue", a.Queue)
	enc.AddUint64("start", a.Start)
	enc.AddUint64("completion", a.Completion())
	return nil
}

type Assignments []Assignment

func (l Assignments) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, a := range l {
		if err := enc.AppendObject(a); err != nil {
			return err
		}
	}
	return nil
}

// byCompletion returns a copy sorted by completion time, ties broken by
// ascending queue index. Equal keys keep their relative order.
func (l Assignments) byCompletion() Assignments {
	out := make(Assignments, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completion() != out[j].Completion() {
			return out[i].Completion() < out[j].Completion()
		}
		return out[i].Queue < out[j].Queue
	})
	return out
}
