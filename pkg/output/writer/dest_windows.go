//go:build windows

package writer

import (
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// handleDestination writes to a Windows handle. Console handles take UTF-16
// through WriteConsole; anything else takes bytes through WriteFile.
type handleDestination windows.Handle

// Stderr returns the destination for the process's standard error handle.
func Stderr() Destination {
	h, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return handleDestination(windows.InvalidHandle)
	}
	return handleDestination(h)
}

// Handle returns a destination writing to an open handle. The caller keeps
// ownership of h.
func Handle(h windows.Handle) Destination {
	return handleDestination(h)
}

func (h handleDestination) Write(p []byte) (int, error) {
	var n uint32
	err := windows.WriteFile(windows.Handle(h), p, &n, nil)
	return int(n), err
}

// IsConsole reports whether the handle is a character-mode console.
func (h handleDestination) IsConsole() bool {
	return term.IsTerminal(int(h))
}

// WriteConsole writes UTF-16 code units to the console.
func (h handleDestination) WriteConsole(p []uint16) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var n uint32
	err := windows.WriteConsole(windows.Handle(h), &p[0], uint32(len(p)), &n, nil)
	return int(n), err
}
