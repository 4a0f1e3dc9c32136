// Package metrics provides Prometheus instrumentation for atomicdbg writers.
//
// Instrumentation is optional. When enabled, every flush performed by a
// writer records how many underlying write calls it needed, how much data the
// destination accepted, and whether it saw partial writes, EINTR retries or a
// failure.
//
// # Quick Start
//
//	registry := metrics.NewRegistry(prometheus.NewRegistry())
//	diag.SetMetrics(registry.Writer("stderr"))
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # Lock-free recording
//
// Registry.Writer resolves all label values once and returns a
// *WriterMetrics holding plain prometheus.Counter values. Recording a flush
// is then a few atomic additions with no map lookups or mutexes, which keeps
// instrumented writers usable from the same contexts as uninstrumented ones.
//
// # Available Metrics
//
//   - atomicdbg_writer_flushes_total: Completed buffer flushes
//   - atomicdbg_writer_write_calls_total: Underlying write calls issued
//   - atomicdbg_writer_bytes_written_total: Bytes (or UTF-16 units) accepted
//   - atomicdbg_writer_partial_writes_total: Calls that sent part of the buffer
//   - atomicdbg_writer_interrupts_total: Calls retried after EINTR
//   - atomicdbg_writer_failures_total: Flushes aborted by a write error
//
// # Labels
//
//   - writer_name: User-provided name passed to Registry.Writer
//   - path: "bytes" for the byte buffer, "console" for the UTF-16 console path
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "myapp",                             // Override default "atomicdbg"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Constant labels
//	}
//	registry := metrics.NewRegistryWithConfig(config)
package metrics
