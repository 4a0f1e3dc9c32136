//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package writer

// MaxAtomicWrite is PIPE_BUF on Darwin and the BSDs.
const MaxAtomicWrite = 512
