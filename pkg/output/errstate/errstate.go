package errstate

import "runtime"

// Code is a raw errno or Windows error code.
type Code uint32

// State is a snapshot of the thread's error status taken by Save.
type State struct {
	code   Code
	pinned bool
}

// Save locks the calling goroutine to its OS thread and captures the
// thread's current error status. Every Save must be paired with Restore.
func Save() State {
	runtime.LockOSThread()
	return State{code: current(), pinned: true}
}

// Code returns the captured value.
func (s State) Code() Code {
	return s.code
}

// Restore writes the captured value back to the thread and releases the
// thread lock taken by Save. Restoring a zero State is a no-op.
func (s State) Restore() {
	if !s.pinned {
		return
	}
	set(s.code)
	runtime.UnlockOSThread()
}

// Current returns the calling thread's error status. Callers that compare
// values across calls should hold runtime.LockOSThread.
func Current() Code {
	return current()
}

// Set overwrites the calling thread's error status.
func Set(c Code) {
	set(c)
}
