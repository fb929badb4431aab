// Package version holds build metadata stamped via ldflags.
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full build identifier, e.g. "1.2.0 (abc1234, 2026-08-30)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
