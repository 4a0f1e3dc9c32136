/*
Package diag prints diagnostics to standard error atomically, without locks,
and without disturbing errno or the Windows last-error value.

Use it where fmt.Fprintln(os.Stderr, ...) or a logger is unsafe or
misleading: inside synchronization primitives, allocators and pools,
runtime hooks, cgo callbacks, init functions that run before logging is
configured, and code that inspects errno right after printing.

# Printing

	diag.Eprint("partial, ")
	diag.Eprintln("state:", state)
	diag.Eprintf("slot %d -> %p\n", i, p)

Each call owns one buffer of writer.MaxAtomicWrite bytes (PIPE_BUF on unix).
A message that fits goes out in a single write call, so lines printed by
concurrent goroutines, or by C code in the same process, never interleave
mid-line. Longer messages are split into several atomic writes.

# Debugging values

	n := diag.Dbg(len(queue))      // [worker.go:42] len(queue) = 3
	diag.DbgMany(head, tail, size) // three lines, flushed together
	diag.Here()                    // [worker.go:44]

Dbg returns its argument. Expression text is read from the caller's source
file; binaries running without their sources print "?" instead. Dump accepts
pre-built entries for callers that track locations themselves.

# Failures

A print whose write fails panics with an *errors.OperationError matching
errors.ErrFormat. The error status is restored before the panic.

# Metrics

	diag.SetMetrics(metrics.NewRegistry(reg).Writer("stderr"))

Instrumentation uses pre-bound counters and atomic adds only.
*/
package diag
