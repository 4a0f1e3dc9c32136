package writer

import (
	"fmt"
	"testing"
)

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func BenchmarkWriteFlush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w := NewTo(discard{})
		_, _ = w.WriteString("[main.go:42] counter = 17\n")
		_ = w.Flush()
		_ = w.Close()
	}
}

func BenchmarkFprintf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w := NewTo(discard{})
		_, _ = fmt.Fprintf(w, "[%s:%d] %s = %#v\n", "main.go", 42, "counter", i)
		_ = w.Flush()
		_ = w.Close()
	}
}

func BenchmarkLargeMessage(b *testing.B) {
	msg := make([]byte, 3*MaxAtomicWrite)
	for i := range msg {
		msg[i] = 'x'
	}
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := NewTo(discard{})
		_, _ = w.Write(msg)
		_ = w.Flush()
		_ = w.Close()
	}
}

func BenchmarkPooled(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w, _ := Get(discard{}, Config{})
		_, _ = w.WriteString("[main.go:42] counter = 17\n")
		_ = w.Flush()
		Put(w)
	}
}
