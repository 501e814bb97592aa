package catalog

import (
	"github.com/mrjamesdickson/xnat-selenium-tests/job"
)

// Reference is the built-in catalog of the pipeline method suites. Launch
// jobs carry a runtime equal to their suffix; check jobs carry none.
// testCheck5 only belongs to suite 1, so suite 2 is missing a pairing on
// purpose.
var Reference = MustNew(
	job.New("testLaunch100", 1, 2).WithRuntime(100),
	job.New("testLaunch55", 1, 2).WithRuntime(55),
	job.New("testLaunch50", 1, 2).WithRuntime(50),
	job.New("testLaunch30", 1, 2).WithRuntime(30),
	job.New("testLaunch40", 1, 2).WithRuntime(40),
	job.New("testLaunch20", 1, 2).WithRuntime(20),
	job.New("testLaunch5", 1, 2).WithRuntime(5),
	job.New("testCheck100", 1, 2),
	job.New("testCheck55", 1, 2),
	job.New("testCheck50", 1, 2),
	job.New("testCheck40", 1, 2),
	job.New("testCheck30", 1, 2),
	job.New("testCheck20", 1, 2),
	job.New("testCheck5", 1),
)
