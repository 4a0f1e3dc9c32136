//go:build unix

package integration

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vnykmshr/atomicdbg/internal/testutil"
	"github.com/vnykmshr/atomicdbg/pkg/logging"
	"github.com/vnykmshr/atomicdbg/pkg/output/writer"
)

// readLines drains r in the background and returns a function that waits
// for EOF and yields every line read.
func readLines(t *testing.T, r io.Reader) func() []string {
	t.Helper()
	var (
		lines []string
		done  = make(chan struct{})
	)
	go func() {
		defer close(done)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
	}()
	return func() []string {
		<-done
		return lines
	}
}

func line(id, i, width int) string {
	head := fmt.Sprintf("g%02d-%05d:", id, i)
	return head + strings.Repeat(string(rune('a'+id%26)), width-len(head)-1)
}

// Lines written concurrently to one pipe, each no larger than the atomic
// limit, must arrive whole.
func TestConcurrentWritersDoNotInterleaveOnPipe(t *testing.T) {
	r, pw, err := os.Pipe()
	testutil.AssertNoError(t, err)
	defer func() { _ = r.Close() }()
	wait := readLines(t, r)

	dest := writer.FD(int(pw.Fd()))
	const goroutines, perGoroutine = 8, 200
	width := writer.MaxAtomicWrite / 2

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				w := writer.NewTo(dest)
				_, err := fmt.Fprintln(w, line(g, i, width))
				if err == nil {
					err = w.Flush()
				}
				_ = w.Close()
				if err != nil {
					t.Errorf("write failed: %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	testutil.AssertNoError(t, pw.Close())

	lines := wait()
	testutil.AssertEqual(t, len(lines), goroutines*perGoroutine)
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		var g, i int
		if _, err := fmt.Sscanf(l, "g%02d-%05d:", &g, &i); err != nil {
			t.Fatalf("torn line %q", l)
		}
		if l != line(g, i, width) {
			t.Fatalf("torn line for g%02d-%05d", g, i)
		}
		seen[l] = true
	}
	testutil.AssertEqual(t, len(seen), goroutines*perGoroutine)
}

func TestLoggerOverPipe(t *testing.T) {
	r, pw, err := os.Pipe()
	testutil.AssertNoError(t, err)
	defer func() { _ = r.Close() }()
	wait := readLines(t, r)

	logger := logging.NewWithSink("pipe", logging.Sink{Destination: writer.FD(int(pw.Fd()))})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				logger.Info().Int("g", g).Int("i", i).Msg("event")
			}
		}(g)
	}
	wg.Wait()
	testutil.AssertNoError(t, pw.Close())

	lines := wait()
	testutil.AssertEqual(t, len(lines), 400)
	for _, l := range lines {
		if !strings.HasPrefix(l, "pipe: INFO - event g=") {
			t.Fatalf("unexpected line %q", l)
		}
	}
}

// A message larger than the atomic limit is split, but every piece is
// delivered and no piece exceeds the limit.
func TestOversizedMessageOverPipe(t *testing.T) {
	r, pw, err := os.Pipe()
	testutil.AssertNoError(t, err)
	defer func() { _ = r.Close() }()
	wait := readLines(t, r)

	w := writer.NewTo(writer.FD(int(pw.Fd())))
	msg := strings.Repeat("é", writer.MaxAtomicWrite)
	_, err = fmt.Fprintln(w, msg)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertNoError(t, w.Close())
	testutil.AssertNoError(t, pw.Close())

	lines := wait()
	testutil.AssertEqual(t, len(lines), 1)
	testutil.AssertEqual(t, lines[0], msg)
	if calls := w.Stats().WriteCalls; calls < 2 {
		t.Errorf("expected the message to be split, got %d write calls", calls)
	}
}
