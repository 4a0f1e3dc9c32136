//go:build unix

package writer

import "golang.org/x/sys/unix"

// fdDestination issues write(2) directly on a file descriptor, bypassing
// os.File and its internal locking.
type fdDestination int

// Stderr returns the destination for file descriptor 2.
func Stderr() Destination {
	return fdDestination(unix.Stderr)
}

// FD returns a destination writing to an open file descriptor. The caller
// keeps ownership of fd.
func FD(fd int) Destination {
	return fdDestination(fd)
}

func (fd fdDestination) Write(p []byte) (int, error) {
	n, err := unix.Write(int(fd), p)
	if n < 0 {
		n = 0
	}
	return n, err
}
