/*
Package writer provides the atomic, lock-free buffered writer behind every
atomicdbg print call.

A Writer gathers one fully formatted message in a fixed buffer of at most
MaxAtomicWrite bytes (PIPE_BUF on unix) and then hands it to the destination
in a single write call. The OS performs writes of that size as one
indivisible operation, so concurrent writers to the same pipe or terminal
never interleave inside a message that fits in one buffer.

# Quick Start

	w := writer.New()    // standard error; captures errno / last-error
	defer w.Close()      // restores it, on every exit path

	fmt.Fprintf(w, "alloc: %d bytes at %p\n", n, ptr)
	if err := w.Flush(); err != nil {
		// errors.Is(err, errors.ErrFormat)
	}

# Buffering

Each Write call is a chunk. A chunk that does not fit in the space left
flushes what is already buffered first, so any message no larger than the
buffer is sent in exactly one write call. Larger messages are split at UTF-8
boundaries and flushed piece by piece; each piece is atomic but other writers
may interleave between pieces. The buffer never grows.

# Flushing

Flush loops until the destination has accepted the whole buffer: partial
transfers re-send the unsent suffix and EINTR retries the same call. Any other
error aborts the flush with a formatting error that wraps the cause; data
already accepted is not retracted and the rest is discarded.

# Consoles

On Windows, standard error attached to a console needs UTF-16 text. A Writer
whose destination implements Console checks on every Write and, for
consoles, transcodes into a separate UTF-16 buffer. The UTF-16 buffer and
path exist only in Windows builds; other platforms carry the byte buffer
alone. Build with the atomicdbg_console tag to enable the console path
elsewhere, for testing. Surrogate pairs never
straddle a flush. If the destination switches between console and
non-console while data is buffered, Write fails with ErrEncodingSwitched
instead of mixing encodings.

# Pooling

Get and Put hand out Writers from a sync.Pool, so a print call does not
allocate a buffer:

	w, err := writer.Get(nil, writer.Config{})
	if err != nil {
		return err
	}
	defer writer.Put(w) // closes w

# Error status

New captures the thread's errno (or Windows last-error) through package
errstate and Close restores it, whatever happened in between. The goroutine
is locked to its OS thread from creation until Close, so every Writer must
be closed.

# Thread Safety

A Writer belongs to one goroutine for one print call. Separate Writers share
no state and take no locks; the only synchronization is what the OS applies
to concurrent writes on the same descriptor.
*/
package writer
