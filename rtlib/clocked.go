package rtlib

import "github.com/db47h/hdlsim"

// DFF returns a clocked data flip-flop: out(t) = in(t - period), sampling in
// every period and reissuing the new value one period later. Unlike the
// combinational gates, a DFF self-schedules at a fixed period rather than
// every delta, so on its own it lets simulated time advance; it re-arms
// unconditionally, so a design containing one never drains its event queue
// by itself.
func DFF(in, out hdlsim.SignalID, period hdlsim.Time) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		v, _ := k.Value(in)
		k.SchedWaveform(out, 0, v, period)
		k.SchedProcess(period)
	}
}

// Input drives out with whatever f returns, resampling every period. A
// period of zero drives the value once, at setup, and never again (pure
// constant stimulus).
func Input(out hdlsim.SignalID, period hdlsim.Time, f func() hdlsim.Value) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		k.SchedWaveform(out, 0, f(), 0)
		if period > 0 {
			k.SchedProcess(period)
		}
	}
}

// Output calls f with in's resolved value whenever in is updated. It is a
// pure probe: it never drives anything, and it self-schedules every delta
// like a combinational gate so it observes every commit to in.
func Output(in hdlsim.SignalID, f func(hdlsim.Value)) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		v, _ := k.Value(in)
		f(v)
		k.SchedProcess(0)
	}
}
