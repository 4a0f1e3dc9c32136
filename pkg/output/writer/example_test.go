package writer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	adberrors "github.com/vnykmshr/atomicdbg/pkg/common/errors"
)

// Example demonstrates formatting a message and sending it in one write.
func Example() {
	var out bytes.Buffer

	w := NewTo(&out)
	defer func() { _ = w.Close() }()

	fmt.Fprintf(w, "worker %d: ", 3)
	fmt.Fprintln(w, "queue drained")
	_ = w.Flush()

	fmt.Print(out.String())
	fmt.Println(w.Stats().WriteCalls)
	// Output:
	// worker 3: queue drained
	// 1
}

// Example_smallBuffer shows a message larger than the buffer going out in
// several atomic pieces.
func Example_smallBuffer() {
	var out bytes.Buffer

	w, _ := NewWithConfig(&out, Config{Capacity: 8})
	defer func() { _ = w.Close() }()

	_, _ = w.WriteString("a message longer than eight bytes")
	_ = w.Flush()

	fmt.Println(out.String())
	fmt.Println(w.Stats().WriteCalls)
	// Output:
	// a message longer than eight bytes
	// 5
}

// Example_failure shows how a destination error surfaces.
func Example_failure() {
	closed, _ := os.Open(os.DevNull)
	_ = closed.Close()

	w := NewTo(closed)
	defer func() { _ = w.Close() }()

	_, _ = w.WriteString("dropped\n")
	err := w.Flush()
	fmt.Println(errors.Is(err, adberrors.ErrFormat))
	// Output: true
}
