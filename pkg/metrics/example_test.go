package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Example_basicUsage demonstrates binding counters for one writer.
func Example_basicUsage() {
	registry := NewRegistry(prometheus.NewRegistry())
	m := registry.Writer("stderr")

	m.Observe(FlushResult{WriteCalls: 2, Units: 120, Partial: 1})

	fmt.Println(testutil.ToFloat64(registry.WriterFlushes.WithLabelValues("stderr", PathBytes)))
	fmt.Println(testutil.ToFloat64(registry.WriterBytesWritten.WithLabelValues("stderr", PathBytes)))
	// Output:
	// 1
	// 120
}

// Example_configuration demonstrates different metrics configurations.
func Example_configuration() {
	defaultConfig := DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)
	fmt.Printf("Default namespace: %s\n", defaultConfig.Namespace)

	customConfig := Config{
		Enabled:   false,
		Namespace: "myapp",
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)
	fmt.Printf("Custom namespace: %s\n", customConfig.Namespace)

	// Output:
	// Default enabled: true
	// Default namespace: atomicdbg
	// Custom enabled: false
	// Custom namespace: myapp
}
