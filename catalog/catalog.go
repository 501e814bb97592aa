// Package catalog holds the closed set of pipeline jobs known to a suite
// runner. A Catalog is built once and only ever read afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

var (
	ErrNotFound     = errors.New("job not found in catalog")
	ErrDuplicateJob = errors.New("duplicate job in catalog")
	ErrEmptyName    = errors.New("job name cannot be empty")
)

type Catalog struct {
	byName map[string]int
	order  job.List
}

// New builds a Catalog from the given descriptors. The argument order is
// the canonical order used by JobsForSuite and Jobs.
func New(jobs ...job.Descriptor) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]int, len(jobs)),
		order:  make(job.List, 0, len(jobs)),
	}
	for _, d := range jobs {
		if d.Name() == "" {
			return nil, ErrEmptyName
		}
		if _, found := c.byName[d.Name()]; found {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJob, d.Name())
		}
		c.byName[d.Name()] = len(c.order)
		c.order = append(c.order, d)
	}

	zlog.Debug("catalog built", zap.Int("job_count", len(c.order)))
	return c, nil
}

// MustNew is New for catalogs declared at package initialization.
func MustNew(jobs ...job.Descriptor) *Catalog {
	c, err := New(jobs...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %s", err))
	}
	return c
}

func (c *Catalog) Get(name string) (job.Descriptor, error) {
	idx, found := c.byName[name]
	if !found {
		return job.Descriptor{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.order[idx], nil
}

// MustGet panics when name is not registered. The catalog is a static set,
// so an unknown name is a programming error.
func (c *Catalog) MustGet(name string) job.Descriptor {
	d, err := c.Get(name)
	if err != nil {
		panic(fmt.Sprintf("catalog: %s", err))
	}
	return d
}

// Lookup resolves several names at once, preserving the argument order.
func (c *Catalog) Lookup(names ...string) (job.List, error) {
	out := make(job.List, 0, len(names))
	for _, name := range names {
		d, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// JobsForSuite returns every job owned by suiteID, in catalog order.
func (c *Catalog) JobsForSuite(suiteID int) job.List {
	var out job.List
	for _, d := range c.order {
		if d.InSuite(suiteID) {
			out = append(out, d)
		}
	}

	if tracer.Enabled() {
		zlog.Debug("jobs for suite", zap.Int("suite_id", suiteID), zap.Array("jobs", out))
	}
	return out
}

func (c *Catalog) Jobs() job.List {
	out := make(job.List, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int { return len(c.order) }

// Suites lists every suite id referenced by at least one job.
func (c *Catalog) Suites() []int {
	seen := map[int]bool{}
	var out []int
	for _, d := range c.order {
		for _, s := range d.Suites() {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Ints(out)
	return out
}
