package writer

import (
	"io"
	"sync"
	"unicode/utf8"
	"unsafe"

	adberrors "github.com/vnykmshr/atomicdbg/pkg/common/errors"
	"github.com/vnykmshr/atomicdbg/pkg/common/validation"
	"github.com/vnykmshr/atomicdbg/pkg/metrics"
	"github.com/vnykmshr/atomicdbg/pkg/output/errstate"
)

const module = "writer"

// Destination receives raw write calls. Each Write must be a single
// underlying write operation; the Writer handles partial transfers and EINTR.
type Destination interface {
	Write(p []byte) (int, error)
}

// Console is implemented by destinations that may be character-mode
// consoles requiring UTF-16 text. The UTF-16 path is compiled on Windows
// only (or with the atomicdbg_console build tag); elsewhere a Console is
// written as bytes.
type Console interface {
	// IsConsole reports whether text must go through WriteConsole.
	IsConsole() bool

	// WriteConsole writes UTF-16 code units and returns how many were accepted.
	WriteConsole(p []uint16) (int, error)
}

// Config holds configuration options for a Writer.
type Config struct {
	// Capacity is the usable size of the buffer, in bytes or UTF-16 code
	// units. Zero means MaxAtomicWrite.
	Capacity int

	// Metrics records flush outcomes. Nil disables instrumentation.
	Metrics *metrics.WriterMetrics
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Capacity: MaxAtomicWrite}
}

// Validate checks that the capacity fits one atomic write and can hold any
// single UTF-8 sequence.
func (c Config) Validate() error {
	if err := validation.ValidatePositive(module, "capacity", c.Capacity); err != nil {
		return err
	}
	return validation.ValidateRange(module, "capacity", c.Capacity, utf8.UTFMax, MaxAtomicWrite)
}

// Stats holds counters for one writer's lifetime.
type Stats struct {
	// WriteCalls is the number of underlying write calls issued.
	WriteCalls int

	// BytesWritten is the number of bytes (or UTF-16 code units on the
	// console path) accepted by the destination.
	BytesWritten int

	// Flushes is the number of flushes that completed.
	Flushes int

	// PartialWrites is the number of calls that sent only part of the buffer.
	PartialWrites int

	// Interrupts is the number of calls retried after EINTR.
	Interrupts int

	// Failures is the number of flushes aborted by an error.
	Failures int
}

// Writer accumulates one message in a fixed buffer and emits it with as few
// write calls as possible, each no larger than MaxAtomicWrite. A Writer is
// meant to live for a single print call and is not safe for concurrent use;
// independent Writers share nothing and take no locks.
//
// Text goes either to the byte buffer or, for console destinations, to the
// UTF-16 buffer. A Writer never mixes the two.
type Writer struct {
	dest     Destination
	capacity int
	metrics  *metrics.WriterMetrics

	buf [MaxAtomicWrite]byte
	pos int
	consoleBuffer

	saved  errstate.State
	stats  Stats
	closed bool
}

// New creates a Writer for standard error with the default configuration.
// The caller's error status is captured before anything else happens, and
// the goroutine stays locked to its OS thread until Close is called. Close
// must be called.
func New() *Writer {
	saved := errstate.Save()
	return newWriter(saved, Stderr(), DefaultConfig())
}

// NewTo creates a Writer for dest with the default configuration. As with
// New, the goroutine is locked to its OS thread until Close is called, so
// Close must be called.
func NewTo(dest Destination) *Writer {
	return newWriter(errstate.Save(), dest, DefaultConfig())
}

// NewWithConfig creates a Writer for dest with the specified configuration.
// A nil dest means standard error. Close must be called.
func NewWithConfig(dest Destination, config Config) (*Writer, error) {
	config, err := prepare(config)
	if err != nil {
		return nil, err
	}
	saved := errstate.Save()
	if dest == nil {
		dest = Stderr()
	}
	return newWriter(saved, dest, config), nil
}

var pool = sync.Pool{
	New: func() any { return new(Writer) },
}

// Get is like NewWithConfig but reuses a Writer from a pool instead of
// allocating one. The Writer must be closed and then returned with Put.
func Get(dest Destination, config Config) (*Writer, error) {
	config, err := prepare(config)
	if err != nil {
		return nil, err
	}
	saved := errstate.Save()
	if dest == nil {
		dest = Stderr()
	}
	w := pool.Get().(*Writer)
	w.init(saved, dest, config)
	return w, nil
}

// Put closes w if it is still open and returns it to the pool. w must not
// be used afterwards.
func Put(w *Writer) {
	_ = w.Close()
	w.dest = nil
	w.metrics = nil
	w.consoleBuffer.bind(nil)
	pool.Put(w)
}

func prepare(config Config) (Config, error) {
	if config.Capacity == 0 {
		config.Capacity = DefaultConfig().Capacity
	}
	return config, config.Validate()
}

func newWriter(saved errstate.State, dest Destination, config Config) *Writer {
	w := new(Writer)
	w.init(saved, dest, config)
	return w
}

func (w *Writer) init(saved errstate.State, dest Destination, config Config) {
	w.dest = dest
	w.capacity = config.Capacity
	w.metrics = config.Metrics
	w.pos = 0
	w.consoleBuffer.bind(dest)
	w.saved = saved
	w.stats = Stats{}
	w.closed = false
}

// Write buffers p, flushing first when p does not fit in the space left.
// It returns the number of bytes of p consumed and a formatting error if a
// flush failed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, adberrors.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	if w.active() {
		if w.pos != 0 {
			return 0, adberrors.NewFormatError(module, "Write", adberrors.ErrEncodingSwitched)
		}
		return w.writeConsole(p)
	}
	if w.pending() != 0 {
		return 0, adberrors.NewFormatError(module, "Write", adberrors.ErrEncodingSwitched)
	}
	return w.writeBytes(p)
}

// WriteString is like Write but takes a string.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

func (w *Writer) writeBytes(p []byte) (int, error) {
	// Start the chunk on a fresh buffer when it would not fit, so a chunk no
	// larger than the buffer always goes out in one write.
	if len(p) > w.capacity-w.pos && w.pos > 0 {
		if err := w.flushBytes(); err != nil {
			return 0, err
		}
	}

	n := 0
	for len(p) > 0 {
		room := w.capacity - w.pos
		k := len(p)
		if k > room {
			k = runeCut(p, room)
		}
		if k == 0 {
			if err := w.flushBytes(); err != nil {
				return n, err
			}
			continue
		}
		copy(w.buf[w.pos:], p[:k])
		w.pos += k
		n += k
		p = p[k:]
	}
	return n, nil
}

// runeCut returns the largest k <= room such that p[:k] does not end inside
// a UTF-8 sequence. It requires room < len(p). Bytes that are not valid
// UTF-8 are cut at room.
func runeCut(p []byte, room int) int {
	k := room
	for i := 0; i < utf8.UTFMax-1 && k > 0 && !utf8.RuneStart(p[k]); i++ {
		k--
	}
	if !utf8.RuneStart(p[k]) {
		return room
	}
	return k
}

// Flush sends everything buffered to the destination and empties the
// buffer. Flushing an empty Writer issues no write call.
func (w *Writer) Flush() error {
	if w.closed {
		return adberrors.ErrClosed
	}
	switch {
	case w.pending() > 0:
		return w.flushConsole()
	case w.pos > 0:
		return w.flushBytes()
	}
	return nil
}

func (w *Writer) flushBytes() error {
	s := w.buf[:w.pos]
	res := metrics.FlushResult{}
	err := drain(len(s), func(from int) (int, error) {
		return w.dest.Write(s[from:])
	}, &res)
	w.pos = 0
	return w.finish(res, err)
}

// drain issues write calls until total units have been accepted. A partial
// transfer re-issues the unsent suffix and EINTR retries the same call.
func drain(total int, write func(from int) (int, error), res *metrics.FlushResult) error {
	sent := 0
	for sent < total {
		n, err := write(sent)
		res.WriteCalls++
		if n > total-sent {
			n = total - sent
		}
		if n > 0 {
			sent += n
			res.Units += n
		}
		if err != nil {
			if adberrors.IsInterrupted(err) {
				res.Interrupts++
				continue
			}
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		if sent < total {
			res.Partial++
		}
	}
	return nil
}

func (w *Writer) finish(res metrics.FlushResult, err error) error {
	res.Failed = err != nil
	w.stats.WriteCalls += res.WriteCalls
	w.stats.BytesWritten += res.Units
	w.stats.PartialWrites += res.Partial
	w.stats.Interrupts += res.Interrupts
	if res.Failed {
		w.stats.Failures++
	} else {
		w.stats.Flushes++
	}
	w.metrics.Observe(res)

	if err != nil {
		return adberrors.NewFormatError(module, "Flush", err)
	}
	return nil
}

// Close restores the error status captured when the Writer was created. It
// does not flush; unflushed data is discarded. Close always returns nil and
// is safe to call more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.saved.Restore()
	return nil
}

// Stats returns counters for this writer.
func (w *Writer) Stats() Stats {
	return w.stats
}

// Buffered returns the number of bytes, or UTF-16 code units on the console
// path, waiting to be flushed.
func (w *Writer) Buffered() int {
	if n := w.pending(); n > 0 {
		return n
	}
	return w.pos
}

// Capacity returns the usable buffer size.
func (w *Writer) Capacity() int {
	return w.capacity
}

// IsClosed returns true if the writer is closed.
func (w *Writer) IsClosed() bool {
	return w.closed
}
