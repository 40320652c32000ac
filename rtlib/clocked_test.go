package rtlib_test

import (
	"context"
	"testing"

	"github.com/db47h/hdlsim"
	"github.com/db47h/hdlsim/rtlib"
)

func TestDFFSamplesOnPeriod(t *testing.T) {
	const in, out = hdlsim.SignalID(0), hdlsim.SignalID(1)
	const period = hdlsim.Time(1000)
	d := &gateDesign{
		signals: []hdlsim.SignalDecl{{Name: "in", Drivers: 1, Init: 0}, {Name: "out", Drivers: 1}},
		procs:   []hdlsim.ProcessDecl{{Name: "dff", Fn: rtlib.DFF(in, out, period)}},
	}
	k, err := hdlsim.NewKernel("dff", d)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if err := k.RunInit(); err != nil {
		t.Fatalf("init: %v", err)
	}
	// drive in=1 well before the DFF's next sampling point
	k.SchedWaveform(in, 0, 1, 0)
	for i := 0; i < 3 && k.HasPendingEvents(); i++ {
		if err := k.RunOneCycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if k.Now() > period {
			break
		}
	}
	v, _ := k.Value(out)
	if v != 1 {
		t.Fatalf("out at t=%s = %d, want 1 (sampled after one period)", k.Now(), v)
	}
}

func TestInputConstantStimulusNoRearm(t *testing.T) {
	const out = hdlsim.SignalID(0)
	d := &gateDesign{
		signals: []hdlsim.SignalDecl{{Name: "out", Drivers: 1}},
		procs:   []hdlsim.ProcessDecl{{Name: "stim", Fn: rtlib.Input(out, 0, func() hdlsim.Value { return 7 })}},
	}
	k, err := hdlsim.NewKernel("stim", d)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if err := k.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	v, _ := k.Value(out)
	if v != 7 {
		t.Fatalf("out = %d, want 7", v)
	}
	if k.HasPendingEvents() {
		t.Fatal("a zero-period Input must not re-arm; the queue should have drained")
	}
}

func TestOutputSamplesRepeatedly(t *testing.T) {
	const in = hdlsim.SignalID(0)
	var seen []hdlsim.Value
	d := &gateDesign{
		signals: []hdlsim.SignalDecl{{Name: "in", Drivers: 1}},
		procs: []hdlsim.ProcessDecl{
			{Name: "stim", Fn: rtlib.Input(in, 1000, func() func() hdlsim.Value {
				n := hdlsim.Value(0)
				return func() hdlsim.Value { n++; return n % 2 }
			}())},
			{Name: "probe", Fn: rtlib.Output(in, func(v hdlsim.Value) { seen = append(seen, v) })},
		},
	}
	k, err := hdlsim.NewKernel("probe", d)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if err := k.RunInit(); err != nil {
		t.Fatalf("init: %v", err)
	}
	for i := 0; i < 6 && k.HasPendingEvents(); i++ {
		if err := k.RunOneCycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
	if len(seen) < 2 {
		t.Fatalf("expected at least two probe samples, got %v", seen)
	}
}
