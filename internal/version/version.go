// Package version exposes build-time version metadata.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("domainforge %s (commit %s, built %s)", Version, Commit, BuildDate)
}
