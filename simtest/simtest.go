// Package simtest provides test-harness helpers for driving an hdlsim
// Kernel and asserting on the signal traces it produces.
package simtest

import (
	"context"
	"testing"

	"github.com/db47h/hdlsim"
)

// Sample is one recorded (time, iteration, value, flags) observation of a
// signal.
type Sample struct {
	At    hdlsim.Time
	Iter  hdlsim.Iteration
	Value hdlsim.Value
	Flags hdlsim.SignalFlags
}

// Recorder accumulates a Sample for one or more watched signals. Unlike a
// design-internal process, a Recorder samples from the outside, between
// cycles — see RunNSampling — so watching a signal never perturbs the
// design's own scheduling (a self-rescheduling observer process would
// starve a timed design of real-time advancement, since it would always
// have a zero-delay wake pending).
type Recorder struct {
	samples map[hdlsim.SignalID][]Sample
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{samples: make(map[hdlsim.SignalID][]Sample)}
}

// Sample records sig's current value and flags from k.
func (r *Recorder) Sample(k *hdlsim.Kernel, sig hdlsim.SignalID) {
	v, flags := k.Value(sig)
	r.samples[sig] = append(r.samples[sig], Sample{At: k.Now(), Iter: k.Iteration(), Value: v, Flags: flags})
}

// Samples returns every recorded sample for sig, in observation order.
func (r *Recorder) Samples(sig hdlsim.SignalID) []Sample {
	return r.samples[sig]
}

// Events returns only the samples for sig that were flagged as an EVENT
// (a value change), dropping repeated observations of an unchanged value.
func (r *Recorder) Events(sig hdlsim.SignalID) []Sample {
	all := r.samples[sig]
	var out []Sample
	for _, s := range all {
		if s.Flags&hdlsim.FlagEvent != 0 {
			out = append(out, s)
		}
	}
	return out
}

// RunN runs initialisation (if not already done) and then drains at most n
// further cohorts from k's event queue, failing the test on an assertion
// failure. It exists for designs built from rtlib's free-running
// combinational parts, which never settle on their own and would make
// Kernel.Run's context deadline the only way to stop them.
func RunN(t *testing.T, k *hdlsim.Kernel, n int) {
	t.Helper()
	if err := k.RunInit(); err != nil {
		t.Fatalf("init: %v", err)
	}
	for i := 0; i < n && k.HasPendingEvents(); i++ {
		if err := k.RunOneCycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
}

// RunNSampling is RunN plus a Recorder sample of every signal in sigs after
// every cohort (and once right after initialisation, before the first
// cycle, to capture the declared default values).
func RunNSampling(t *testing.T, k *hdlsim.Kernel, n int, rec *Recorder, sigs ...hdlsim.SignalID) {
	t.Helper()
	if err := k.RunInit(); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, sig := range sigs {
		rec.Sample(k, sig)
	}
	for i := 0; i < n && k.HasPendingEvents(); i++ {
		if err := k.RunOneCycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		for _, sig := range sigs {
			rec.Sample(k, sig)
		}
	}
}

// RunToCompletion drives k with ctx until the event queue drains or a
// Failure-severity assertion aborts the run, returning the resulting error
// (nil on clean termination).
func RunToCompletion(ctx context.Context, k *hdlsim.Kernel) error {
	return k.Run(ctx)
}
