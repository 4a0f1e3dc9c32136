// Package metrics provides Prometheus instrumentation for atomic writers.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "atomicdbg"

// Output paths used as the "path" label.
const (
	PathBytes   = "bytes"
	PathConsole = "console"
)

// Registry holds all metric instances for writer instrumentation.
type Registry struct {
	WriterFlushes       *prometheus.CounterVec
	WriterWriteCalls    *prometheus.CounterVec
	WriterBytesWritten  *prometheus.CounterVec
	WriterPartialWrites *prometheus.CounterVec
	WriterInterrupts    *prometheus.CounterVec
	WriterFailures      *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig creates a registry honoring the namespace and
// constant labels of config. A nil Registry means prometheus.DefaultRegisterer.
func NewRegistryWithConfig(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	factory := promauto.With(reg)
	labels := []string{"writer_name", "path"}

	counter := func(name, help string) *prometheus.CounterVec {
		return factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        name,
				Help:        help,
				ConstLabels: config.Labels,
			},
			labels,
		)
	}

	return &Registry{
		WriterFlushes:       counter("flushes_total", "Total number of completed buffer flushes"),
		WriterWriteCalls:    counter("write_calls_total", "Total number of underlying write calls issued"),
		WriterBytesWritten:  counter("bytes_written_total", "Total bytes (or UTF-16 code units on the console path) accepted by the destination"),
		WriterPartialWrites: counter("partial_writes_total", "Total number of write calls that transferred only part of the buffer"),
		WriterInterrupts:    counter("interrupts_total", "Total number of write calls retried after EINTR"),
		WriterFailures:      counter("failures_total", "Total number of flushes aborted by a write error"),
	}
}

// Writer resolves the counters for one named writer. The returned value does
// all label lookups up front; recording is a handful of atomic adds, so it is
// safe to use where locks are not.
func (r *Registry) Writer(name string) *WriterMetrics {
	return &WriterMetrics{
		paths: [2]pathCounters{
			r.bind(name, PathBytes),
			r.bind(name, PathConsole),
		},
	}
}

func (r *Registry) bind(name, path string) pathCounters {
	return pathCounters{
		flushes:    r.WriterFlushes.WithLabelValues(name, path),
		writeCalls: r.WriterWriteCalls.WithLabelValues(name, path),
		bytes:      r.WriterBytesWritten.WithLabelValues(name, path),
		partial:    r.WriterPartialWrites.WithLabelValues(name, path),
		interrupts: r.WriterInterrupts.WithLabelValues(name, path),
		failures:   r.WriterFailures.WithLabelValues(name, path),
	}
}

type pathCounters struct {
	flushes    prometheus.Counter
	writeCalls prometheus.Counter
	bytes      prometheus.Counter
	partial    prometheus.Counter
	interrupts prometheus.Counter
	failures   prometheus.Counter
}

// WriterMetrics is a set of pre-bound counters. A nil *WriterMetrics records
// nothing.
type WriterMetrics struct {
	paths [2]pathCounters
}

// FlushResult summarizes one flush for recording.
type FlushResult struct {
	Console    bool
	WriteCalls int
	Units      int
	Partial    int
	Interrupts int
	Failed     bool
}

// Observe records the outcome of one flush.
func (m *WriterMetrics) Observe(res FlushResult) {
	if m == nil {
		return
	}
	c := &m.paths[0]
	if res.Console {
		c = &m.paths[1]
	}
	c.writeCalls.Add(float64(res.WriteCalls))
	c.bytes.Add(float64(res.Units))
	c.partial.Add(float64(res.Partial))
	c.interrupts.Add(float64(res.Interrupts))
	if res.Failed {
		c.failures.Inc()
		return
	}
	c.flushes.Inc()
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry bound to prometheus.DefaultRegisterer,
// creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
	})
	return defaultRegistry
}
