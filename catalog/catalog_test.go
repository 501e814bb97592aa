package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

func TestNew_Errors(t *testing.T) {
	_, err := New(job.New("a"), job.New("b"), job.New("a"))
	require.ErrorIs(t, err, ErrDuplicateJob)
	assert.Contains(t, err.Error(), `"a"`)

	_, err = New(job.New(""))
	require.ErrorIs(t, err, ErrEmptyName)

	assert.Panics(t, func() { MustNew(job.New("a"), job.New("a")) })
}

func TestCatalog_Get(t *testing.T) {
	d, err := Reference.Get("testLaunch55")
	require.NoError(t, err)
	assert.Equal(t, "testLaunch55", d.Name())
	runtime, ok := d.EstimatedRuntime()
	require.True(t, ok)
	assert.Equal(t, uint64(55), runtime)

	_, err = Reference.Get("testLaunch999")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "testLaunch999")

	assert.True(t, Reference.MustGet("testCheck5").Equal(job.New("testCheck5", 1)))
	assert.Panics(t, func() { Reference.MustGet("nope") })
}

func TestCatalog_Lookup(t *testing.T) {
	jobs, err := Reference.Lookup("testCheck30", "testLaunch30")
	require.NoError(t, err)
	assert.Equal(t, []string{"testCheck30", "testLaunch30"}, jobs.Names())

	_, err = Reference.Lookup("testCheck30", "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_JobsForSuite(t *testing.T) {
	tests := []struct {
		name    string
		suiteID int
		expect  []string
	}{
		{
			name:    "suite 1 has every job",
			suiteID: 1,
			expect: []string{
				"testLaunch100", "testLaunch55", "testLaunch50", "testLaunch30", "testLaunch40", "testLaunch20", "testLaunch5",
				"testCheck100", "testCheck55", "testCheck50", "testCheck40", "testCheck30", "testCheck20", "testCheck5",
			},
		},
		{
			name:    "suite 2 lacks testCheck5",
			suiteID: 2,
			expect: []string{
				"testLaunch100", "testLaunch55", "testLaunch50", "testLaunch30", "testLaunch40", "testLaunch20", "testLaunch5",
				"testCheck100", "testCheck55", "testCheck50", "testCheck40", "testCheck30", "testCheck20",
			},
		},
		{
			name:    "unknown suite",
			suiteID: 7,
			expect:  []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, Reference.JobsForSuite(test.suiteID).Names())
		})
	}
}

func TestCatalog_JobsForSuiteUsesCatalogOrder(t *testing.T) {
	c := MustNew(
		job.New("z", 3),
		job.New("a", 1),
		job.New("m", 1, 3),
	)
	assert.Equal(t, []string{"z", "m"}, c.JobsForSuite(3).Names())
	assert.Equal(t, []int{1, 3}, c.Suites())
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_JobsReturnsCopy(t *testing.T) {
	jobs := Reference.Jobs()
	require.Len(t, jobs, 14)
	jobs[0] = job.New("tampered")
	assert.Equal(t, "testLaunch100", Reference.Jobs()[0].Name())
}
