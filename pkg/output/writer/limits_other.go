//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package writer

// MaxAtomicWrite falls back to _POSIX_PIPE_BUF, the smallest PIPE_BUF any
// POSIX system may define.
const MaxAtomicWrite = 512
