package hdlsim

import "context"

// process is the runtime record for one elaborated process statement.
// Processes are stateless from the kernel's point of view — whatever state
// a process needs to keep between wake-ups lives inside the closure
// bound as fn.
type process struct {
	name string
	fn   ProcFn
}

// Kernel holds all runtime state for one simulation run: the signal and
// process arenas built by Setup, the delta queue, and the ambient time /
// active-process registers the runtime ABI reads and writes.
//
// A Kernel is not safe for concurrent use. Scheduling is single-threaded
// and cooperative: process callables run to completion and suspend only by
// re-enqueuing themselves via SchedProcess before returning.
type Kernel struct {
	top       string
	signals   []*signal
	processes []*process
	byName    map[string]SignalID // decl name -> signal arena index

	queue      deltaQueue
	now        Time
	iteration  Iteration
	activeProc *process

	active []*signal // growable active-signal set, cleared every cycle

	traceOn     bool
	failure     *FailureError
	initialized bool
}

// NewKernel elaborates a Design into a runnable Kernel: it counts the
// design's signal declarations and process statements, allocates the
// corresponding runtime records, and binds each signal's driver storage.
// The design must declare at least one process; an empty design is
// rejected the same way a top level that failed to elaborate would be.
func NewKernel(top string, d Design) (*Kernel, error) {
	sigDecls := d.Signals()
	procDecls := d.Processes()
	if len(procDecls) == 0 {
		return nil, setupErrorf(top, "design has no processes")
	}

	k := &Kernel{
		top:       top,
		signals:   make([]*signal, len(sigDecls)),
		processes: make([]*process, len(procDecls)),
		byName:    make(map[string]SignalID, len(sigDecls)),
		iteration: -1,
	}

	for i, sd := range sigDecls {
		if sd.Drivers <= 0 {
			return nil, setupErrorf(top, "signal %q has no drivers", sd.Name)
		}
		if _, dup := k.byName[sd.Name]; dup {
			return nil, setupErrorf(top, "duplicate signal %q", sd.Name)
		}
		s := &signal{
			decl:    SignalID(i),
			name:    sd.Name,
			sources: make([]*waveform, sd.Drivers),
		}
		// Every signal's driver 0 starts pre-committed to its declared
		// default at now=0, with no queued event — the elaborated default
		// assignment a real codegen would emit before any process runs,
		// already resolved rather than scheduled. Without this, a driver
		// whose first-ever SchedWaveform call (from a process's reset
		// code) schedules a non-zero after would trip the
		// first-transaction invariant in scheduleWaveform, which requires
		// now=0, after=0 for a driver's very first transaction. This also
		// makes a signal with no process driving it at all — pure
		// testbench stimulus — resolve correctly from time zero, with no
		// spurious driver-commit cohort ahead of the design's own events.
		s.sources[0] = &waveform{value: sd.Init, when: 0}
		s.resolved = sd.Init
		k.signals[i] = s
		k.byName[sd.Name] = SignalID(i)
	}

	for i, pd := range procDecls {
		if pd.Fn == nil {
			return nil, setupErrorf(top, "process %q has no entry point", pd.Name)
		}
		k.processes[i] = &process{name: pd.Name, fn: pd.Fn}
	}

	return k, nil
}

// Lookup resolves a signal by its declared name, the Go analogue of
// jit_var_ptr binding a signal's storage address to an identifier.
func (k *Kernel) Lookup(name string) (SignalID, bool) {
	id, ok := k.byName[name]
	return id, ok
}

func (k *Kernel) signal(id SignalID) *signal {
	invariant(int(id) >= 0 && int(id) < len(k.signals), "signal id out of range")
	return k.signals[id]
}

// Value returns the current resolved value and flags of a signal.
func (k *Kernel) Value(id SignalID) (Value, SignalFlags) {
	s := k.signal(id)
	return s.resolved, s.flags
}

// Run drives the simulation: the initialisation phase followed by the
// cycle loop, until the event queue drains, a process raises an assertion
// of severity Error or greater, or ctx is cancelled. Context cancellation
// is an optional external "max-time cap" layered on top of the core
// contract — it is never required for termination, and callers with a
// design that free-runs forever (a delta-cycle oscillator with no time
// advance) must supply a context that eventually cancels.
func (k *Kernel) Run(ctx context.Context) error {
	if err := k.RunInit(); err != nil {
		return err
	}

	for k.HasPendingEvents() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := k.RunOneCycle(); err != nil {
			return err
		}
	}
	return nil
}

// RunInit runs the initialisation phase if it has not already run for this
// Kernel and returns the resulting failure, if any. It is exposed alongside
// RunOneCycle/HasPendingEvents so callers that need single-cycle control
// (step-wise test harnesses) can drive the same phases Run does internally.
func (k *Kernel) RunInit() error {
	if k.initialized {
		return nil
	}
	k.initialized = true
	k.initial()
	if k.failure != nil {
		return k.failure
	}
	return nil
}

// Initialized reports whether RunInit has already run on this Kernel.
func (k *Kernel) Initialized() bool { return k.initialized }

// HasPendingEvents reports whether the event queue still holds work.
func (k *Kernel) HasPendingEvents() bool { return !k.queue.empty() }

// RunOneCycle drains exactly one (time, iteration) cohort from the event
// queue and returns the resulting failure, if any. Callers must have called
// RunInit first and should stop calling RunOneCycle once HasPendingEvents
// reports false.
func (k *Kernel) RunOneCycle() error {
	k.cycle()
	if k.failure != nil {
		return k.failure
	}
	return nil
}

// initial is the initialisation phase: now=0, iteration=-1, every process
// invoked exactly once with reset=true.
func (k *Kernel) initial() {
	k.now = 0
	k.iteration = -1
	for _, p := range k.processes {
		k.dispatch(p, true)
		if k.failure != nil {
			return
		}
	}
}

// dispatch sets the active-process ambient, invokes the process callable,
// and restores the ambient on return — the cooperative-single-thread
// equivalent of a "current task" register, saved/restored around
// (potentially re-entrant, though the kernel never actually does so)
// process dispatch.
func (k *Kernel) dispatch(p *process, reset bool) {
	k.trace("%s process %s", dispatchVerb(reset), p.name)
	prev := k.activeProc
	k.activeProc = p
	p.fn(k, reset)
	k.activeProc = prev
}

func dispatchVerb(reset bool) string {
	if reset {
		return "reset"
	}
	return "run"
}

// cycle implements one iteration of the simulation cycle loop: clear the
// active-signal flags left by the previous cohort, advance time if needed,
// then drain the (now, iteration) cohort.
//
// The active-signal set is cleared at the *start* of the cycle rather than
// its end, even though both land the set empty before the next cohort's
// own driver commits run (invariant AS1 at cycle boundaries either way).
// RunOneCycle is a public, externally-steppable entry point — unlike the
// monolithic rt_exec loop this kernel is grounded on, a caller can call
// Value between cycles and expects to see the ACTIVE/EVENT flags this very
// cohort produced. Clearing lazily, on the next cycle's entry, preserves
// that observability without weakening the isolation the flags give
// processes dispatched within the same cohort.
//
// Draining a cohort is staged in two phases rather than done in raw queue
// order: every driver-commit event in the cohort is applied first, then
// every process wakeup. A process's own sched_waveform/sched_process calls
// always land in the *next* cohort (deltaq.insert bumps the iteration), so
// this ordering guarantees that whichever processes wake in this cohort all
// see the same snapshot of committed signal values — the one left behind
// by the *previous* cohort — instead of a result that happens to depend on
// which process's commit a sibling's wakeup was interleaved with in
// insertion order. This is what §1 calls processes observing "a consistent
// snapshot of signal values each delta cycle".
func (k *Kernel) cycle() {
	for _, s := range k.active {
		s.clearFlags()
	}
	k.active = k.active[:0]

	head := k.queue.head
	invariant(head != nil, "cycle called on empty queue")

	if head.deltaToPrev > 0 {
		k.now += head.deltaToPrev
		head.deltaToPrev = 0
		invariant(head.iteration == 0, "non-zero delta node must land on iteration 0")
		k.iteration = 0
	} else {
		k.iteration = head.iteration
	}

	var wakes []*process
	for {
		n := k.queue.pop()
		switch n.kind {
		case wakeKind:
			wakes = append(wakes, n.proc)
		case driverKind:
			k.updateDriver(n.sig)
		}
		k.queue.release(n)

		next := k.queue.head
		if next == nil || !(next.deltaToPrev == 0 && next.iteration == k.iteration) {
			break
		}
	}

	for _, p := range wakes {
		k.dispatch(p, false)
		if k.failure != nil {
			break
		}
	}
}

// updateDriver commits pending transactions on sig and, if a transaction was
// committed outside the first cycle (whether or not the value changed),
// records it in the active-signal set (at most once per cycle).
func (k *Kernel) updateDriver(sig *signal) {
	if sig.updateDriver(k.now, k.iteration) {
		k.trace("update signal %s value %#x", sig.name, sig.resolved)
		if !sig.queued {
			sig.queued = true
			k.active = append(k.active, sig)
		}
	}
}
