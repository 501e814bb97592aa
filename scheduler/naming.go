package scheduler

import (
	"strings"
)

// Prefixes is the naming contract between launch and check jobs: a launch
// job named <Launch><suffix> is verified by the check job <Check><suffix>.
type Prefixes struct {
	Launch string
	Check  string
}

var DefaultPrefixes = Prefixes{
	Launch: "testLaunch",
	Check:  "testCheck",
}

func (p Prefixes) IsLaunch(name string) bool {
	return strings.HasPrefix(name, p.Launch)
}

// CheckNameFor returns the name of the check job paired with launchName.
// launchName must carry the launch prefix.
func (p Prefixes) CheckNameFor(launchName string) string {
	return p.Check + strings.TrimPrefix(launchName, p.Launch)
}
