//go:build forcebacktrace

package backtrace

// captureEnabled ignores EnvVar in forcebacktrace builds.
func captureEnabled() bool {
	return true
}
