package catalog

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("catalog", "github.com/mrjamesdickson/xnat-selenium-tests/catalog")
