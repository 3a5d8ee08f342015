//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
)

// Truef panics with the formatted message and caller details if cond is false.
func Truef(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(1); ok {
		msg = fmt.Sprintf("%s at '%s#%d'", msg, file, line)
	}
	panic("assertion failed: " + msg)
}
