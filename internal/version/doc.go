// Package version exposes the application version for the project.
//
// The four-component version number is fixed in source for each snapshot and
// read through Application or Components. Commit and BuildTime are injected
// at build time via Go ldflags and default to sensible values for local
// builds. Helper functions Short and Full render the version string for CLI
// output and logs.
package version
