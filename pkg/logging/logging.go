// Package logging adapts zerolog and the standard log package to the atomic
// standard error writer, so every log line is emitted with one write call
// and leaves errno untouched.
package logging

import (
	"fmt"
	stdlog "log"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vnykmshr/atomicdbg/pkg/common/validation"
	"github.com/vnykmshr/atomicdbg/pkg/metrics"
	"github.com/vnykmshr/atomicdbg/pkg/output/writer"
)

// Sink is an io.Writer that sends each Write through its own atomic writer.
// Loggers format a whole record before calling Write, so a record that fits
// in writer.MaxAtomicWrite bytes is never interleaved with other output.
//
// The zero value writes to standard error without instrumentation.
type Sink struct {
	// Destination receives the output. Nil means standard error.
	Destination writer.Destination

	// Metrics records flush outcomes. Nil disables instrumentation.
	Metrics *metrics.WriterMetrics
}

// Write emits p as one message. On failure it reports how many bytes the
// destination accepted before the error.
func (s Sink) Write(p []byte) (int, error) {
	w, err := writer.Get(s.Destination, writer.Config{Metrics: s.Metrics})
	if err != nil {
		return 0, err
	}
	defer writer.Put(w)

	if _, err := w.Write(p); err != nil {
		return w.Stats().BytesWritten, err
	}
	if err := w.Flush(); err != nil {
		return w.Stats().BytesWritten, err
	}
	return len(p), nil
}

const module = "logging"

// Config holds configuration options for a logger.
type Config struct {
	// Target prefixes every line.
	Target string

	// Sink receives the formatted records.
	Sink Sink
}

// Validate checks that the target is set.
func (c Config) Validate() error {
	return validation.ValidateNotEmpty(module, "target", c.Target)
}

// NewWithConfig returns a logger for the specified configuration.
func NewWithConfig(config Config) (zerolog.Logger, error) {
	if err := config.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	return NewWithSink(config.Target, config.Sink), nil
}

// New returns a logger for target that writes "target: LEVEL - message"
// lines to standard error. It logs at every level; filter with
// Logger.Level or zerolog.SetGlobalLevel.
func New(target string) zerolog.Logger {
	return NewWithSink(target, Sink{})
}

// NewWithSink is like New but writes through sink.
func NewWithSink(target string, sink Sink) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:          sink,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel: func(i interface{}) string {
			if l, ok := i.(string); ok && l != "" {
				return fmt.Sprintf("%s: %s", target, strings.ToUpper(l))
			}
			return target + ":"
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("- %s", i)
		},
	}
	return zerolog.New(out).Level(zerolog.TraceLevel)
}

// Init installs New(target) as the global zerolog logger and enables every
// level.
func Init(target string) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = New(target)
}

// StdLogger returns a standard library logger writing through Sink.
func StdLogger(prefix string) *stdlog.Logger {
	return stdlog.New(Sink{}, prefix, 0)
}
