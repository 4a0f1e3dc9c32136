//go:build windows && cgo

package errstate

/*
#include <windows.h>

static DWORD errstate_get(void) { return GetLastError(); }
static void errstate_set(DWORD v) { SetLastError(v); }
*/
import "C"

// Supported reports whether this build has an ambient error status.
const Supported = true

func current() Code {
	return Code(C.errstate_get())
}

func set(c Code) {
	C.errstate_set(C.DWORD(c))
}
