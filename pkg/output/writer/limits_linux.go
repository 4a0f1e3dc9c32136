//go:build linux

package writer

// MaxAtomicWrite is PIPE_BUF on Linux.
const MaxAtomicWrite = 4096
