//go:build !windows && !atomicdbg_console

package writer

import (
	"testing"
	"unsafe"

	"github.com/vnykmshr/atomicdbg/internal/testutil"
)

func TestConsoleDestinationWrittenAsBytes(t *testing.T) {
	console := testutil.NewMockConsole(true)
	w := newTestWriter(t, console, 64)

	_, err := w.WriteString("héllo\n")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Flush())

	testutil.AssertEqual(t, console.String(), "héllo\n")
	testutil.AssertEqual(t, len(console.ConsoleCalls()), 0)
}

func TestWriterCarriesNoConsoleBuffer(t *testing.T) {
	size := unsafe.Sizeof(Writer{})
	if size > MaxAtomicWrite+256 {
		t.Errorf("Writer is %d bytes, want at most %d", size, MaxAtomicWrite+256)
	}
}
