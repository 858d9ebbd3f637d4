// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Populated via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns the bare version string, e.g. "v0.3.0" or "dev".
func Short() string {
	return Version
}

// Full returns the version with commit hash and build date attached.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
