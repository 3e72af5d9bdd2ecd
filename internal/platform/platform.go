package platform

// Labels of all supported build targets.
const (
	// LabelWindows is the label of Windows builds.
	LabelWindows = "Windows XP x86"
	// LabelUbuntu is the label of Linux builds made with the `ubuntu` tag.
	LabelUbuntu = "Ubuntu i386"
	// LabelLinux is the label of generic Linux builds.
	LabelLinux = "Linux"
	// LabelMacOSX is the label of macOS builds.
	LabelMacOSX = "MacOSX x64"
)

// Known returns the fixed set of platform labels a build can carry.
// Name is always a member of this set.
func Known() []string {
	return []string{LabelWindows, LabelUbuntu, LabelLinux, LabelMacOSX}
}
