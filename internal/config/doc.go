// Package config defines output settings used by binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the console log level and the report output format.
// The application version and platform label are compiled into the binary
// and are deliberately absent here: nothing in the configuration can change
// them at runtime.
package config
