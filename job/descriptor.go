package job

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Descriptor is a single schedulable unit of a pipeline suite. It is
// immutable once built: every method returns copies, and WithRuntime
// produces a new value.
type Descriptor struct {
	name       string
	runtime    uint64
	hasRuntime bool
	suites     []int
}

// New creates a Descriptor without a runtime estimate. Suite ids are
// de-duplicated and kept sorted.
func New(name string, suites ...int) Descriptor {
	return Descriptor{
		name:   name,
		suites: normalizeSuites(suites),
	}
}

// WithRuntime returns a copy of d carrying the given runtime estimate.
func (d Descriptor) WithRuntime(units uint64) Descriptor {
	d.runtime = units
	d.hasRuntime = true
	return d
}

func (d Descriptor) Name() string { return d.name }

// EstimatedRuntime returns the runtime estimate and whether one is set.
// Jobs without an estimate never get a queue.
func (d Descriptor) EstimatedRuntime() (uint64, bool) {
	return d.runtime, d.hasRuntime
}

// Suites returns the owning suite ids, sorted ascending.
func (d Descriptor) Suites() []int {
	if len(d.suites) == 0 {
		return nil
	}
	out := make([]int, len(d.suites))
	copy(out, d.suites)
	return out
}

func (d Descriptor) InSuite(id int) bool {
	idx := sort.SearchInts(d.suites, id)
	return idx < len(d.suites) && d.suites[idx] == id
}

// Equal reports structural equality over every field.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.name != other.name || d.hasRuntime != other.hasRuntime || d.runtime != other.runtime {
		return false
	}
	if len(d.suites) != len(other.suites) {
		return false
	}
	for i := range d.suites {
		if d.suites[i] != other.suites[i] {
			return false
		}
	}
	return true
}

func (d Descriptor) String() string {
	runtime := "none"
	if d.hasRuntime {
		runtime = fmt.Sprintf("%d", d.runtime)
	}
	suites := make([]string, len(d.suites))
	for i, s := range d.suites {
		suites[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("job: name=%s runtime=%s suites=[%s]", d.name, runtime, strings.Join(suites, ","))
}

func (d Descriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", d.name)
	if d.hasRuntime {
		enc.AddUint64("estimated_runtime", d.runtime)
	}
	return enc.AddArray("suites", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, s := range d.suites {
			arr.AppendInt(s)
		}
		return nil
	}))
}

func normalizeSuites(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, id := range in {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
