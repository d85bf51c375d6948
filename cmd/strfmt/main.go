package main

import (
	"runtime"

	"github.com/bjaus/strfmt"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string.
func versionString() string {
	s, _ := strfmt.Sprintf("strfmt %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
	return s
}
