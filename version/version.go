// Package version holds build metadata injected via ldflags.
package version

import "runtime"

// Set at build time:
//
//	go build -ldflags "-X github.com/jackzampolin/tablescan/version.GitRelease=v0.1.0"
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
)

// GoInfo reports the Go toolchain the binary was built with.
var GoInfo = runtime.Version()
