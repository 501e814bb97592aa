package main

import (
	"github.com/streamingfast/logging"
)

var zlog, _ = logging.RootLogger("pipelinesort", "github.com/mrjamesdickson/xnat-selenium-tests/cmd/pipelinesort")
