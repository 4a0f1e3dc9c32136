//go:build windows || atomicdbg_console

package writer

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/vnykmshr/atomicdbg/pkg/metrics"
)

// consoleBuffer holds UTF-16 text bound for a console destination.
type consoleBuffer struct {
	console Console
	wbuf    [MaxAtomicWrite]uint16
	wpos    int
}

func (c *consoleBuffer) bind(dest Destination) {
	c.console, _ = dest.(Console)
	c.wpos = 0
}

func (c *consoleBuffer) active() bool {
	return c.console != nil && c.console.IsConsole()
}

func (c *consoleBuffer) pending() int {
	return c.wpos
}

func (w *Writer) writeConsole(p []byte) (int, error) {
	if w.wpos > 0 && utf16Len(p) > w.capacity-w.wpos {
		if err := w.flushConsole(); err != nil {
			return 0, err
		}
	}

	n := 0
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		// Keep both halves of a surrogate pair in the same flush.
		if w.capacity-w.wpos < 2 {
			if err := w.flushConsole(); err != nil {
				return n, err
			}
		}
		w.wpos += encodeRune(w.wbuf[w.wpos:], r)
		p = p[size:]
		n += size
	}
	return n, nil
}

func (w *Writer) flushConsole() error {
	s := w.wbuf[:w.wpos]
	res := metrics.FlushResult{Console: true}
	err := drain(len(s), func(from int) (int, error) {
		return w.console.WriteConsole(s[from:])
	}, &res)
	w.wpos = 0
	return w.finish(res, err)
}

func encodeRune(dst []uint16, r rune) int {
	if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
		dst[0], dst[1] = uint16(r1), uint16(r2)
		return 2
	}
	dst[0] = uint16(r)
	return 1
}

func utf16Len(p []byte) int {
	units := 0
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		units++
		if r >= 0x10000 {
			units++
		}
		p = p[size:]
	}
	return units
}
