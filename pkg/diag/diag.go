package diag

import (
	"fmt"
	"sync/atomic"

	"github.com/vnykmshr/atomicdbg/internal/callsite"
	adberrors "github.com/vnykmshr/atomicdbg/pkg/common/errors"
	"github.com/vnykmshr/atomicdbg/pkg/metrics"
	"github.com/vnykmshr/atomicdbg/pkg/output/errstate"
	"github.com/vnykmshr/atomicdbg/pkg/output/writer"
)

const module = "diag"

// Entry is one labelled value of a debug dump.
type Entry struct {
	// File and Line locate the expression in source.
	File string
	Line int

	// Name is the expression text as written by the caller.
	Name string

	// Value is rendered with %#v.
	Value any
}

var (
	instrumentation atomic.Pointer[metrics.WriterMetrics]

	// destination is nil (standard error) outside of tests.
	destination writer.Destination

	argNames = callsite.ArgsN
)

// SetMetrics installs instrumentation for every subsequent call. Passing nil
// disables it.
func SetMetrics(m *metrics.WriterMetrics) {
	instrumentation.Store(m)
}

// Eprint formats its operands like fmt.Print and writes them to standard
// error in a single atomic write when they fit in writer.MaxAtomicWrite bytes.
// No newline is added.
//
// Eprint takes no locks and leaves errno (or the Windows last-error value)
// as it found it. It panics if standard error cannot be written.
func Eprint(a ...any) {
	emit("Eprint", func(w *writer.Writer) error {
		_, err := fmt.Fprint(w, a...)
		return err
	})
}

// Eprintln is like Eprint but uses fmt.Println spacing and ends the message
// with a newline. With no operands it prints just the newline.
func Eprintln(a ...any) {
	emit("Eprintln", func(w *writer.Writer) error {
		_, err := fmt.Fprintln(w, a...)
		return err
	})
}

// Eprintf is like Eprint but formats according to a format specifier.
func Eprintf(format string, a ...any) {
	emit("Eprintf", func(w *writer.Writer) error {
		_, err := fmt.Fprintf(w, format, a...)
		return err
	})
}

// Here prints "[file:line]" for the calling line.
func Here() {
	saved := errstate.Save()
	defer saved.Restore()

	site := callsite.Caller(1)
	emit("Here", func(w *writer.Writer) error {
		_, err := fmt.Fprintf(w, "[%s:%d]\n", site.File, site.Line)
		return err
	})
}

// Dbg prints "[file:line] expr = value" for its argument and returns the
// argument unchanged, so it can wrap any expression:
//
//	n := diag.Dbg(len(queue)) * 2
//
// The expression text is read from the caller's source file when it is
// available and is "?" otherwise, including when the line holds more than
// one call to Dbg.
func Dbg[T any](v T) T {
	// Reading the caller's source may make system calls, which can clobber
	// the status on Windows.
	saved := errstate.Save()
	defer saved.Restore()

	site := callsite.Caller(1)
	name := argNames(site, "Dbg", 1)[0]
	dump("Dbg", Entry{File: site.File, Line: site.Line, Name: name, Value: v})
	return v
}

// DbgMany prints one "[file:line] expr = value" line per argument through a
// single writer, so the whole group is flushed together and appears as one
// unit when it fits in the buffer. With no arguments it behaves like Here.
func DbgMany(vs ...any) {
	saved := errstate.Save()
	defer saved.Restore()

	site := callsite.Caller(1)
	if len(vs) == 0 {
		emit("DbgMany", func(w *writer.Writer) error {
			_, err := fmt.Fprintf(w, "[%s:%d]\n", site.File, site.Line)
			return err
		})
		return
	}

	names := argNames(site, "DbgMany", len(vs))
	entries := make([]Entry, len(vs))
	for i, v := range vs {
		entries[i] = Entry{File: site.File, Line: site.Line, Name: names[i], Value: v}
	}
	dump("DbgMany", entries...)
}

// Dump writes the entries as "[file:line] name = value" lines through one
// writer. Location and name are taken as given.
func Dump(entries ...Entry) {
	dump("Dump", entries...)
}

func dump(op string, entries ...Entry) {
	emit(op, func(w *writer.Writer) error {
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "[%s:%d] %s = %#v\n", e.File, e.Line, e.Name, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// emit runs one writer lifetime and panics if it failed. The writer is
// closed, and the error status restored, before the panic starts.
func emit(op string, render func(w *writer.Writer) error) {
	if err := run(render); err != nil {
		panic(adberrors.NewFormatError(module, op, err))
	}
}

func run(render func(w *writer.Writer) error) error {
	w, err := writer.Get(destination, writer.Config{Metrics: instrumentation.Load()})
	if err != nil {
		return err
	}
	defer writer.Put(w)

	if err := render(w); err != nil {
		return err
	}
	return w.Flush()
}
