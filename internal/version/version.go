// Package version provides version information for the checkdiff binary.
package version

import "fmt"

// Version information, overridden at release time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the bare version string ("dev" for development builds).
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build information.
// Format: "v0.3.0 (commit: abc123, built: 2026-08-29T10:30:00Z)"
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
