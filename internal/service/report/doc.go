// Package report renders the binary's build report: application name,
// version, platform label and build metadata, as plain text or YAML.
//
// It is the consumer of the version and platform packages that a user sees
// when asking the CLI what it is.
package report
