// Package rtlib provides a small library of reusable process constructors
// for hdlsim designs: combinational gates, a clocked flip-flop, and
// stimulus/probe processes, built directly on the kernel's runtime ABI the
// way a compiled front end's generated process bodies would be.
//
// Every constructor here returns a hdlsim.ProcFn closed over the signal IDs
// it operates on. A combinational part is not woken by its inputs changing —
// this kernel has no signal-sensitivity registration, only explicit
// self-scheduling — so every combinational process re-evaluates and
// reschedules itself once per delta cycle for as long as the simulation
// runs, exactly like the delta-oscillator pattern: designs built purely
// from rtlib combinational parts never settle on their own, with or without
// a clocked part beside them, and need a context deadline or a bounded
// cycle count to stop the run.
package rtlib

import "github.com/db47h/hdlsim"

// Gate2 returns a two-input combinational process: on every dispatch it
// reads a and b, writes fn(a, b) to out with zero delay, and reschedules
// itself for the next delta iteration.
func Gate2(a, b, out hdlsim.SignalID, fn func(a, b hdlsim.Value) hdlsim.Value) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		va, _ := k.Value(a)
		vb, _ := k.Value(b)
		k.SchedWaveform(out, 0, fn(va, vb), 0)
		k.SchedProcess(0)
	}
}

// Not returns a process driving out = ^in (bitwise, masked to bits wide;
// bits == 0 means the full 64-bit word).
func Not(a, out hdlsim.SignalID, bits uint) hdlsim.ProcFn {
	mask := maskOf(bits)
	return func(k *hdlsim.Kernel, reset bool) {
		va, _ := k.Value(a)
		k.SchedWaveform(out, 0, ^va&mask, 0)
		k.SchedProcess(0)
	}
}

func maskOf(bits uint) hdlsim.Value {
	if bits == 0 || bits >= 64 {
		return ^hdlsim.Value(0)
	}
	return (hdlsim.Value(1) << bits) - 1
}

// And returns out = a & b.
func And(a, b, out hdlsim.SignalID) hdlsim.ProcFn {
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return a & b })
}

// Nand returns out = ^(a & b).
func Nand(a, b, out hdlsim.SignalID, bits uint) hdlsim.ProcFn {
	mask := maskOf(bits)
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return ^(a & b) & mask })
}

// Or returns out = a | b.
func Or(a, b, out hdlsim.SignalID) hdlsim.ProcFn {
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return a | b })
}

// Nor returns out = ^(a | b).
func Nor(a, b, out hdlsim.SignalID, bits uint) hdlsim.ProcFn {
	mask := maskOf(bits)
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return ^(a | b) & mask })
}

// Xor returns out = a ^ b.
func Xor(a, b, out hdlsim.SignalID) hdlsim.ProcFn {
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return a ^ b })
}

// Xnor returns out = ^(a ^ b).
func Xnor(a, b, out hdlsim.SignalID, bits uint) hdlsim.ProcFn {
	mask := maskOf(bits)
	return Gate2(a, b, out, func(a, b hdlsim.Value) hdlsim.Value { return ^(a ^ b) & mask })
}

// Mux returns out = sel==0 ? a : b.
func Mux(a, b, sel, out hdlsim.SignalID) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		vsel, _ := k.Value(sel)
		var v hdlsim.Value
		if vsel != 0 {
			v, _ = k.Value(b)
		} else {
			v, _ = k.Value(a)
		}
		k.SchedWaveform(out, 0, v, 0)
		k.SchedProcess(0)
	}
}

// DMux returns a = sel==0 ? in : 0, b = sel==0 ? 0 : in.
func DMux(in, sel, a, b hdlsim.SignalID) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		vin, _ := k.Value(in)
		vsel, _ := k.Value(sel)
		if vsel != 0 {
			k.SchedWaveform(a, 0, 0, 0)
			k.SchedWaveform(b, 0, vin, 0)
		} else {
			k.SchedWaveform(a, 0, vin, 0)
			k.SchedWaveform(b, 0, 0, 0)
		}
		k.SchedProcess(0)
	}
}
