package platform

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNameIsKnown ensures the compiled-in label is non-empty and drawn from
// the fixed supported set.
func TestNameIsKnown(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Name)
	require.Contains(t, Known(), Name)
}

// TestNameMatchesBuildTarget checks that the label agrees with the operating
// system the test binary was built for.
func TestNameMatchesBuildTarget(t *testing.T) {
	t.Parallel()

	switch runtime.GOOS {
	case "windows":
		require.Equal(t, LabelWindows, Name)
	case "darwin":
		require.Equal(t, LabelMacOSX, Name)
	case "linux":
		// Either the tagged Ubuntu build or the generic one.
		require.Contains(t, []string{LabelLinux, LabelUbuntu}, Name)
	default:
		t.Fatalf("test binary built for unsupported GOOS %q", runtime.GOOS)
	}
}

// TestKnownIsFixed pins the label set; extending the supported platforms
// must be a deliberate change here and in a name_*.go file.
func TestKnownIsFixed(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"Windows XP x86", "Ubuntu i386", "Linux", "MacOSX x64"},
		Known())
}

// TestConcurrentReads reads the label from many goroutines; run with -race
// to confirm no mutable state backs it.
func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	const readers = 32

	var wg sync.WaitGroup

	wg.Add(readers)

	for range readers {
		go func() {
			defer wg.Done()

			require.Contains(t, Known(), Name)
		}()
	}

	wg.Wait()
}
