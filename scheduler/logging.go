package scheduler

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("scheduler", "github.com/mrjamesdickson/xnat-selenium-tests/scheduler")
