package hdlsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// SetupError is returned by NewKernel when an elaborated design is missing
// or unsuitable as a top-level unit.
type SetupError struct {
	Top string
	Err error
}

func (e *SetupError) Error() string {
	return "setup " + e.Top + ": " + e.Err.Error()
}

func (e *SetupError) Unwrap() error { return e.Err }

func setupErrorf(top, format string, args ...interface{}) error {
	return &SetupError{Top: top, Err: errors.Errorf(format, args...)}
}

// FailureError is returned by Kernel.Run when a process raises an
// assertion of severity Error or Failure. A process body is a plain
// function the kernel called into, so the kernel cannot unwind out from
// under it — it finishes the current dispatch, then stops.
type FailureError struct {
	At       Time
	Iter     Iteration
	Severity Severity
	Message  string
}

func (e *FailureError) Error() string {
	return FormatTime(e.At) + "+" + strconv.Itoa(int(e.Iter)) + ": " + e.Severity.String() + ": " + e.Message
}

// invariant panics with a descriptive message if cond is false. It guards
// kernel-internal bugs, never user-level conditions — those go through
// AssertFail instead.
func invariant(cond bool, msg string) {
	if !cond {
		panic("hdlsim: invariant violated: " + msg)
	}
}
