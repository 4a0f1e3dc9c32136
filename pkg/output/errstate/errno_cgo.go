//go:build unix && cgo

package errstate

/*
#include <errno.h>

static int errstate_get(void) { return errno; }
static void errstate_set(int v) { errno = v; }
*/
import "C"

// Supported reports whether this build has an ambient error status.
const Supported = true

func current() Code {
	return Code(C.errstate_get())
}

func set(c Code) {
	C.errstate_set(C.int(c))
}
