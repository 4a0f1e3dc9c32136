//go:build windows

package writer

// MaxAtomicWrite bounds a single WriteFile or WriteConsole call. Windows
// documents no atomicity limit, so this is a fixed, generous choice.
const MaxAtomicWrite = 4096
