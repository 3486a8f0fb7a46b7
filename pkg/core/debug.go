package core

import (
	"fmt"

	"github.com/go-drift/piemenu/pkg/errors"
)

// DebugMode enables development-only checks. When true, broken caller
// contracts panic and measurement failures are reported to the error
// handler. When false, both are absorbed silently.
var DebugMode = true

// SetDebugMode enables or disables debug mode.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Assert panics with a precondition error when cond is false and DebugMode
// is on. In release builds it is a no-op.
func Assert(cond bool, op, format string, args ...any) {
	if cond || !DebugMode {
		return
	}
	panic(&errors.PieError{
		Op:         op,
		Kind:       errors.KindPrecondition,
		Err:        fmt.Errorf(format, args...),
		StackTrace: errors.CaptureStack(),
	})
}
