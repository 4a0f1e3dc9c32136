package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/atomicdbg/internal/testutil"
)

func TestObserveByPath(t *testing.T) {
	registry := NewRegistry(prometheus.NewRegistry())
	m := registry.Writer("test")

	m.Observe(FlushResult{WriteCalls: 1, Units: 10})
	m.Observe(FlushResult{Console: true, WriteCalls: 3, Units: 7, Partial: 2, Interrupts: 1})
	m.Observe(FlushResult{WriteCalls: 1, Failed: true})

	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterFlushes.WithLabelValues("test", PathBytes)), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterFailures.WithLabelValues("test", PathBytes)), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterWriteCalls.WithLabelValues("test", PathBytes)), 2.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterFlushes.WithLabelValues("test", PathConsole)), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterPartialWrites.WithLabelValues("test", PathConsole)), 2.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterInterrupts.WithLabelValues("test", PathConsole)), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.WriterBytesWritten.WithLabelValues("test", PathConsole)), 7.0)
}

func TestNilWriterMetrics(t *testing.T) {
	var m *WriterMetrics
	m.Observe(FlushResult{WriteCalls: 1, Units: 1})
}

func TestNamespaceAndLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry := NewRegistryWithConfig(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: "myapp",
		Labels:    prometheus.Labels{"version": "1.0"},
	})
	registry.Writer("w").Observe(FlushResult{WriteCalls: 1, Units: 5})

	expected := `
# HELP myapp_writer_flushes_total Total number of completed buffer flushes
# TYPE myapp_writer_flushes_total counter
myapp_writer_flushes_total{path="bytes",version="1.0",writer_name="w"} 1
myapp_writer_flushes_total{path="console",version="1.0",writer_name="w"} 0
`
	if err := promtest.GatherAndCompare(reg, strings.NewReader(expected), "myapp_writer_flushes_total"); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default should return the same registry")
	}
}
