/*
Package atomicdbg provides lock-free, errno-preserving diagnostic output to
standard error.

Every print call owns a private buffer sized to the platform's atomic write
limit (PIPE_BUF on unix) and emits its message with as few write calls as
possible. Messages that fit are written with exactly one call, so output from
concurrent goroutines, or from C code sharing the process, never tears
mid-line. No locks are taken, and errno (or the Windows last-error value) is
restored before the call returns.

Diagnostics (pkg/diag):
  - Eprint, Eprintln, Eprintf: fmt-style printing to standard error
  - Dbg, DbgMany, Here: print source locations and expression values
  - Dump: print pre-built labelled entries in one unit

Output (pkg/output):
  - writer: fixed-capacity atomic writer with UTF-16 console support
  - errstate: capture and restore the calling thread's error status

Logging (pkg/logging):
  - zerolog and standard library loggers backed by the atomic writer

Metrics (pkg/metrics):
  - Prometheus counters for flushes, write calls, partial writes and failures

Example usage:

	import "github.com/vnykmshr/atomicdbg/pkg/diag"

	diag.Eprintln("entering critical section", id)
	size := diag.Dbg(len(freeList))

	w := writer.New()
	defer w.Close()
	fmt.Fprintf(w, "slot %d released\n", slot)
	if err := w.Flush(); err != nil {
		// the message was not delivered
	}

See the examples directory for complete programs.
*/
package atomicdbg
