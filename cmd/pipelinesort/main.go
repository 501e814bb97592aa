package main

import (
	"strings"

	"github.com/streamingfast/derr"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

func main() {
	rootCmd.Version = computeVersionString(version, commit, date)
	derr.Check("pipelinesort", rootCmd.Execute())
}

// computeVersionString renders "<version> (Commit <sha7>, Built <date>)",
// leaving out whatever was not injected at build time.
func computeVersionString(version, commit, date string) string {
	var details []string
	if short := shortCommit(commit); short != "" {
		details = append(details, "Commit "+short)
	}
	if date != "" {
		details = append(details, "Built "+date)
	}

	if len(details) == 0 {
		return version
	}
	return version + " (" + strings.Join(details, ", ") + ")"
}

func shortCommit(commit string) string {
	if len(commit) < 7 {
		return ""
	}
	return commit[:7]
}
