//go:build linux && ubuntu

package platform

// Name is the human-readable label of this build's target platform.
const Name = LabelUbuntu
