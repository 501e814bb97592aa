package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQueueSlots = errors.New("queue slots must be at least 1")

	// ErrRuntimeOverflow is returned when every candidate assignment puts
	// more runtime on some queue than a uint64 can hold.
	ErrRuntimeOverflow = errors.New("queue load overflows the runtime range")
)

// MissingCheckError is returned when a launch job has no paired check job
// in the scheduled set. The job set is malformed and no ordering is
// produced.
type MissingCheckError struct {
	LaunchJob string
	CheckJob  string
}

func (e *MissingCheckError) Error() string {
	return fmt.Sprintf("could not find corresponding pipeline check job %s for launch job %s", e.CheckJob, e.LaunchJob)
}

// UnestimatedLaunchError is returned when a launch job has no runtime
// estimate. Every candidate assignment contains that job, so none of them
// is valid.
type UnestimatedLaunchError struct {
	LaunchJob string
}

func (e *UnestimatedLaunchError) Error() string {
	return fmt.Sprintf("launch job %s has no estimated runtime, it cannot be assigned to a queue", e.LaunchJob)
}
