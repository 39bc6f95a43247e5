//go:build noderivedisplay

package etrace

import "fmt"

// formatCause renders the cause for the Error form using the cause's
// own display representation. Error kinds are expected to implement
// error or fmt.Stringer under this build.
func formatCause(cause any) string {
	switch v := cause.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
