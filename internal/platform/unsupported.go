//go:build !windows && !linux && !darwin

package platform

// This package supports Windows, Linux, and macOS only. If you hit this
// compile error, you are building for a target with no platform label; add a
// name_<os>.go file defining Name before extending the supported set.
const Name = unsupportedBuildTarget
