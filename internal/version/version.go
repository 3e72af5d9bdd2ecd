package version

import "fmt"

// Version identifies a build as a four-component application version.
// All components are non-negative; the value is fixed in source and
// never changes after process start.
type Version struct {
	// Major is incremented for incompatible releases.
	Major int
	// Minor is incremented for backwards-compatible feature releases.
	Minor int
	// Patch is incremented for bug-fix releases.
	Patch int
	// Build distinguishes rebuilds of the same patch level.
	Build int
}

// current is the application version of this snapshot.
//
//nolint:gochecknoglobals // The version is process-wide constant data.
var current = Version{Major: 10, Minor: 2, Patch: 7, Build: 3}

var (
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Application returns the application version. The value is returned by
// value, so callers cannot mutate the process-wide constant.
func Application() Version {
	return current
}

// Components returns the four version components in order.
func Components() (major, minor, patch, build int) {
	return current.Major, current.Minor, current.Patch, current.Build
}

// String renders the version in dotted form, e.g. "10.2.7.3".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Short returns only the dotted version string.
func Short() string {
	return current.String()
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Short(), Commit, BuildTime)
}
