//go:build !windows && !atomicdbg_console

package writer

// consoleBuffer is empty where standard error is never a UTF-16 console.
// Destinations implementing Console are written as bytes.
type consoleBuffer struct{}

func (consoleBuffer) bind(Destination) {}

func (consoleBuffer) active() bool { return false }

func (consoleBuffer) pending() int { return 0 }

func (w *Writer) writeConsole(p []byte) (int, error) {
	return w.writeBytes(p)
}

func (w *Writer) flushConsole() error {
	return nil
}
