//go:build !cgo || !(unix || windows)

package errstate

// Supported reports whether this build has an ambient error status.
const Supported = false

func current() Code { return 0 }

func set(Code) {}
