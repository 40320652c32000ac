package rtlib

import "github.com/db47h/hdlsim"

// HalfAdder returns a process driving sum = a ^ b, carryOut = a & b.
func HalfAdder(a, b, sum, carryOut hdlsim.SignalID) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		va, _ := k.Value(a)
		vb, _ := k.Value(b)
		k.SchedWaveform(sum, 0, va^vb, 0)
		k.SchedWaveform(carryOut, 0, va&vb, 0)
		k.SchedProcess(0)
	}
}

// FullAdder returns a process driving sum = a^b^cin, carryOut = majority(a,b,cin).
func FullAdder(a, b, cin, sum, carryOut hdlsim.SignalID) hdlsim.ProcFn {
	return func(k *hdlsim.Kernel, reset bool) {
		va, _ := k.Value(a)
		vb, _ := k.Value(b)
		vc, _ := k.Value(cin)
		s0 := va ^ vb
		k.SchedWaveform(sum, 0, s0^vc, 0)
		k.SchedWaveform(carryOut, 0, (s0&vc)|(va&vb), 0)
		k.SchedProcess(0)
	}
}

// AdderN returns a process driving out = (a+b) truncated to bits, carryOut =
// the overflow bit past position bits-1. bits == 0 means the full 64-bit word.
func AdderN(a, b, out, carryOut hdlsim.SignalID, bits uint) hdlsim.ProcFn {
	mask := maskOf(bits)
	return func(k *hdlsim.Kernel, reset bool) {
		va, _ := k.Value(a)
		vb, _ := k.Value(b)
		sum := (va + vb) & mask
		var cout hdlsim.Value
		if bits == 0 || bits >= 64 {
			if sum < va {
				cout = 1
			}
		} else if (va+vb)>>bits != 0 {
			cout = 1
		}
		k.SchedWaveform(out, 0, sum, 0)
		k.SchedWaveform(carryOut, 0, cout, 0)
		k.SchedProcess(0)
	}
}
