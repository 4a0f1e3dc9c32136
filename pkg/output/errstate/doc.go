// Package errstate saves and restores the calling thread's ambient error
// status: C errno on unix and GetLastError on Windows, both through cgo.
//
// Pure Go code receives syscall errors as values, so the status only matters
// when C code or Windows APIs share the thread with the caller. A diagnostic
// print issues its own write calls, and those can overwrite the status the
// caller is about to inspect. Save pins the goroutine to its OS thread and
// records the value; Restore puts it back and releases the pin.
//
//	st := errstate.Save()
//	defer st.Restore()
//
// Without cgo the status cannot be reached from Go (the runtime clears the
// Windows last-error value around its own calls), so on those builds and on
// platforms without one (js, plan9...) Supported is false and only the
// thread pinning takes effect.
package errstate
