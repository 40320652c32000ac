// Command hdlsim-run is a small demo binary exercising the kernel against
// a hand-built design: an XOR gate built from the And/Or/Not primitives in
// rtlib, stimulated by an alternating input sequence and probed on its
// output.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/db47h/hdlsim"
	"github.com/db47h/hdlsim/internal/specparse"
	"github.com/db47h/hdlsim/rtlib"
)

func main() {
	top := flag.String("top", "xor", "name of the top-level design to run")
	trace := flag.Bool("trace", false, "enable TRACE diagnostics on stderr")
	deadline := flag.Duration("deadline", 2*time.Second, "wall-clock cap for free-running combinational designs")
	flag.Parse()

	if *top != "xor" {
		fmt.Fprintf(os.Stderr, "hdlsim-run: unknown top-level design %q\n", *top)
		os.Exit(2)
	}

	k, err := buildXor()
	if err != nil {
		log.Fatal(err)
	}
	k.SetTrace(*trace)

	ctx, cancel := context.WithTimeout(context.Background(), *deadline)
	defer cancel()

	if err := k.Run(ctx); err != nil && err != context.DeadlineExceeded {
		log.Fatal(err)
	}
}

// buildXor wires a, b, nota, notb, w1, w2, out into out = (a & !b) | (b & !a).
// a and b are stimulus inputs stepping through all four combinations; out is
// probed and logged on every delta iteration, changed or not.
func buildXor() (*hdlsim.Kernel, error) {
	names, err := specparse.ParseIOSpec("a, b, nota, notb, w1, w2, out")
	if err != nil {
		return nil, err
	}
	decls := make([]hdlsim.SignalDecl, len(names))
	for i, n := range names {
		decls[i] = hdlsim.SignalDecl{Name: n, Drivers: 1}
	}

	d := &xorDesign{signals: decls}
	return hdlsim.NewKernel("xor", d)
}

type xorDesign struct {
	signals []hdlsim.SignalDecl
}

func (d *xorDesign) Signals() []hdlsim.SignalDecl { return d.signals }

func (d *xorDesign) Processes() []hdlsim.ProcessDecl {
	lookup := func(name string) hdlsim.SignalID {
		for i, s := range d.signals {
			if s.Name == name {
				return hdlsim.SignalID(i)
			}
		}
		panic("hdlsim-run: unknown signal " + name)
	}
	a, b := lookup("a"), lookup("b")
	nota, notb := lookup("nota"), lookup("notb")
	w1, w2 := lookup("w1"), lookup("w2")
	out := lookup("out")

	return []hdlsim.ProcessDecl{
		{Name: "stimulus", Fn: newStimulus(a, b)},
		{Name: "not_a", Fn: rtlib.Not(a, nota, 1)},
		{Name: "not_b", Fn: rtlib.Not(b, notb, 1)},
		{Name: "and_w1", Fn: rtlib.And(a, notb, w1)},
		{Name: "and_w2", Fn: rtlib.And(b, nota, w2)},
		{Name: "or_out", Fn: rtlib.Or(w1, w2, out)},
		{Name: "probe", Fn: probe},
	}
}

// settleTicks is how many zero-delay deltas the not -> and -> or chain
// needs to fully propagate a new a/b combination to out.
const settleTicks = 4

// newStimulus drives a and b through all four input combinations, one per
// settleTicks deltas, then stops re-arming. It paces itself in delta
// iterations rather than real time: every process in this design shares
// the gates' zero-delay self-scheduling style (see rtlib's package doc),
// so nothing here ever advances real time — pacing with k.SchedProcess(period)
// instead would starve forever behind the gates' own zero-delay rewakes,
// since the queue always has an earlier, same-instant delta pending.
func newStimulus(a, b hdlsim.SignalID) hdlsim.ProcFn {
	pattern := [][2]hdlsim.Value{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	tick := 0
	return func(k *hdlsim.Kernel, reset bool) {
		step := tick / settleTicks
		tick++
		if step >= len(pattern) {
			return
		}
		k.SchedWaveform(a, 0, pattern[step][0], 0)
		k.SchedWaveform(b, 0, pattern[step][1], 0)
		k.SchedProcess(0)
	}
}

func probe(k *hdlsim.Kernel, reset bool) {
	out, _ := k.Lookup("out")
	rtlib.Output(out, func(v hdlsim.Value) {
		fmt.Printf("delta %d: out=%d\n", k.Iteration(), v)
	})(k, reset)
}
