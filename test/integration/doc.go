// Package integration exercises the writer, the diagnostic helpers and the
// log adapter against real file descriptors.
package integration
