package testutil

import (
	"bytes"
	"errors"
	"sync"
	"syscall"
	"unicode/utf16"
)

// ErrSimulated is returned by mocks configured to fail.
var ErrSimulated = errors.New("simulated error")

// MockDestination records every raw write call and can simulate partial
// transfers, interrupted calls and failures.
type MockDestination struct {
	mu          sync.Mutex
	calls       [][]byte
	buf         bytes.Buffer
	maxPerWrite int
	interrupts  map[int]bool
	errorOnNth  int
	shouldError bool
	err         error
	onWrite     func()
}

// NewMockDestination creates a new MockDestination.
func NewMockDestination() *MockDestination {
	return &MockDestination{interrupts: make(map[int]bool)}
}

// Write records one raw write call.
func (m *MockDestination) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := len(m.calls) + 1
	if m.onWrite != nil {
		m.onWrite()
	}

	if m.shouldError {
		m.calls = append(m.calls, nil)
		return 0, m.err
	}
	if m.errorOnNth > 0 && call == m.errorOnNth {
		m.calls = append(m.calls, nil)
		return 0, ErrSimulated
	}
	if m.interrupts[call] {
		m.calls = append(m.calls, nil)
		return 0, syscall.EINTR
	}

	n := len(p)
	if m.maxPerWrite > 0 && n > m.maxPerWrite {
		n = m.maxPerWrite
	}
	m.calls = append(m.calls, append([]byte(nil), p[:n]...))
	m.buf.Write(p[:n])
	return n, nil
}

// String returns everything accepted so far.
func (m *MockDestination) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

// WriteCount returns the number of Write calls, failed ones included.
func (m *MockDestination) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns the payload accepted by each Write call. Failed or
// interrupted calls have a nil payload.
func (m *MockDestination) Calls() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.calls))
	copy(out, m.calls)
	return out
}

// SetMaxPerWrite limits how many bytes a single call accepts.
func (m *MockDestination) SetMaxPerWrite(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxPerWrite = n
}

// InterruptOn makes the given calls (1-based) fail with EINTR.
func (m *MockDestination) InterruptOn(calls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range calls {
		m.interrupts[c] = true
	}
}

// SetErrorOnNth configures the destination to fail on the nth call.
func (m *MockDestination) SetErrorOnNth(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOnNth = n
}

// SetAlwaysError configures the destination to always return err.
func (m *MockDestination) SetAlwaysError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldError = true
	m.err = err
}

// OnWrite registers a hook run at the start of every call, for example to
// clobber the thread's error status the way a real syscall would.
func (m *MockDestination) OnWrite(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onWrite = fn
}

// Reset clears recorded output and configuration.
func (m *MockDestination) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.buf.Reset()
	m.maxPerWrite = 0
	m.interrupts = make(map[int]bool)
	m.errorOnNth = 0
	m.shouldError = false
	m.err = nil
	m.onWrite = nil
}

// MockConsole is a MockDestination that can also act as a UTF-16 console.
type MockConsole struct {
	*MockDestination

	cmu          sync.Mutex
	console      bool
	consoleCalls [][]uint16
	maxUnits     int
	consoleErr   error
}

// NewMockConsole creates a MockConsole reporting console as its initial mode.
func NewMockConsole(console bool) *MockConsole {
	return &MockConsole{MockDestination: NewMockDestination(), console: console}
}

// IsConsole reports the configured mode.
func (c *MockConsole) IsConsole() bool {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	return c.console
}

// SetConsole switches the reported mode.
func (c *MockConsole) SetConsole(console bool) {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	c.console = console
}

// WriteConsole records one UTF-16 write call.
func (c *MockConsole) WriteConsole(p []uint16) (int, error) {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	if c.consoleErr != nil {
		c.consoleCalls = append(c.consoleCalls, nil)
		return 0, c.consoleErr
	}
	n := len(p)
	if c.maxUnits > 0 && n > c.maxUnits {
		n = c.maxUnits
	}
	c.consoleCalls = append(c.consoleCalls, append([]uint16(nil), p[:n]...))
	return n, nil
}

// SetMaxUnitsPerWrite limits how many code units a single call accepts.
func (c *MockConsole) SetMaxUnitsPerWrite(n int) {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	c.maxUnits = n
}

// SetConsoleError makes every WriteConsole call fail with err.
func (c *MockConsole) SetConsoleError(err error) {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	c.consoleErr = err
}

// ConsoleCalls returns the code units accepted by each WriteConsole call.
func (c *MockConsole) ConsoleCalls() [][]uint16 {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	out := make([][]uint16, len(c.consoleCalls))
	copy(out, c.consoleCalls)
	return out
}

// ConsoleText decodes everything written through WriteConsole.
func (c *MockConsole) ConsoleText() string {
	c.cmu.Lock()
	defer c.cmu.Unlock()
	var all []uint16
	for _, call := range c.consoleCalls {
		all = append(all, call...)
	}
	return string(utf16.Decode(all))
}
