//go:build !unix && !windows

package writer

import "os"

// Stderr returns os.Stderr. Platforms in this group (js, wasip1, plan9)
// expose no lower-level write call.
func Stderr() Destination {
	return os.Stderr
}
