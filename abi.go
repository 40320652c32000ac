package hdlsim

import (
	"fmt"
	"os"
)

// Severity is a VHDL assertion severity level.
type Severity int8

// Severity levels, in increasing order of severity. Note and Warning are
// logged and execution continues; Error and Failure terminate the
// simulation.
const (
	Note Severity = iota
	Warning
	Error
	Failure
)

var severityNames = [...]string{"Note", "Warning", "Error", "Failure"}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "Severity(?)"
	}
	return severityNames[s]
}

// Now returns the current simulated time.
func (k *Kernel) Now() Time { return k.now }

// Iteration returns the current delta iteration, -1 during initialisation.
func (k *Kernel) Iteration() Iteration { return k.iteration }

// SchedProcess schedules the currently active process to wake at now+delay
// (in the next delta iteration if delay is zero). It panics if called
// outside of a process dispatch — there must always be an active process
// for this call to make sense.
func (k *Kernel) SchedProcess(delay Time) {
	invariant(k.activeProc != nil, "sched_process called with no active process")
	k.trace("sched_process delay=%s", FormatTime(delay))
	k.queue.insertWake(k.iteration, delay, k.activeProc)
}

// SchedWaveform schedules a transaction (value, now+after) on the given
// driver of sig, and enqueues the corresponding driver-commit event. It is
// transport-only: it never cancels a pending transaction already scheduled
// on that driver.
func (k *Kernel) SchedWaveform(sig SignalID, source int, value Value, after Time) {
	s := k.signal(sig)
	k.trace("sched_waveform %s source=%d value=%#x after=%s", s.name, source, value, FormatTime(after))
	s.scheduleWaveform(source, value, k.now+after)
	k.queue.insertDriver(k.iteration, after, s)
}

// AssertFail emits a diagnostic of the form "<time>+<iteration>: <kind>
// <severity>: <message>" to standard error. If severity is Error or
// Failure, the simulation is recorded as failed: the kernel finishes
// dispatching the current event and then stops the cycle loop, returning
// a *FailureError from Run — a process body is a plain function call, so
// the kernel cannot unwind out from under it and instead just records the
// failure for the cycle loop to notice.
func (k *Kernel) AssertFail(isReport bool, msg string, severity Severity) {
	kind := "Assertion"
	if isReport {
		kind = "Report"
	}
	fmt.Fprintf(os.Stderr, "%s+%d: %s %s: %s\n", FormatTime(k.now), k.iteration, kind, severity, msg)

	if severity >= Error && k.failure == nil {
		k.failure = &FailureError{At: k.now, Iter: k.iteration, Severity: severity, Message: msg}
	}
}

// trace writes a TRACE line to standard error if tracing is enabled:
// "TRACE (init): " during setup/initialisation, "TRACE <time>+<iteration>: "
// otherwise.
func (k *Kernel) trace(format string, args ...interface{}) {
	if !k.traceOn {
		return
	}
	var prefix string
	if k.iteration < 0 {
		prefix = "TRACE (init): "
	} else {
		prefix = fmt.Sprintf("TRACE %s+%d: ", FormatTime(k.now), k.iteration)
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}

// SetTrace enables or disables TRACE diagnostics.
func (k *Kernel) SetTrace(on bool) { k.traceOn = on }
