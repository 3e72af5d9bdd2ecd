// Package platform identifies the build target of the binary.
//
// Name is a string constant selected at compile time by build constraints:
// exactly one of the name_*.go files participates in any supported build, so
// the label is fixed before the program starts and can never be ambiguous at
// runtime. Building for a target outside the supported set fails compilation
// (see unsupported.go).
//
// The OS_UBUNTU-style distinction between an Ubuntu build and a generic
// Linux build is made with the custom `ubuntu` build tag:
//
//	go build -tags ubuntu ./...
package platform
