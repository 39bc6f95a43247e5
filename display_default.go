//go:build !noderivedisplay

package etrace

import "fmt"

// formatCause renders the cause for the Error form. The default build
// derives it from the cause's debug representation, so error kinds
// never have to implement error or fmt.Stringer themselves. Types that
// want a nicer debug form can implement fmt.GoStringer.
func formatCause(cause any) string {
	return fmt.Sprintf("%#v", cause)
}
