package hdlsim

// ProcFn is a process entry point, bound to compiled process code. reset
// is true exactly once, during the initialisation phase.
type ProcFn func(k *Kernel, reset bool)

// SignalDecl is one elaborated signal declaration: a unique name and the
// number of drivers assigned to it at elaboration time.
type SignalDecl struct {
	Name    string
	Drivers int
	// Init is the value installed on driver 0 at setup, before the
	// initialisation phase runs. Most designs instead drive their initial
	// value from a process's reset invocation; Init exists for signals
	// with no process driving them at all (pure testbench stimulus).
	Init Value
}

// ProcessDecl is one elaborated process statement: a unique name and its
// resolved entry point.
type ProcessDecl struct {
	Name string
	Fn   ProcFn
}

// Design is the elaborated top-level tree the kernel consumes: a flat
// sequence of signal declarations and process statements. Design values
// are read-only to the kernel once passed to NewKernel — parsing,
// semantic analysis, and elaboration that would produce one are external
// collaborators out of scope for this package.
type Design interface {
	Signals() []SignalDecl
	Processes() []ProcessDecl
}

// Codegen models the code generator / JIT lifecycle that a real front end
// would sit behind: jit_init/jit_shutdown bookend a run, VarPtr/FunPtr
// resolve identifiers to runtime storage, and BindFn lets the kernel
// export built-ins (std_standard_now) to compiled code. NewKernel does not
// require a Codegen — Design already carries resolved ProcFns — but the
// interface documents the seam a future compiled front end would plug
// into.
type Codegen interface {
	Init(top string) error
	Shutdown()
	VarPtr(name string) (SignalID, bool)
	FunPtr(name string) (ProcFn, bool)
	BindFn(name string, fn interface{})
}

// staticDesign is the simplest possible Design: a fixed slice of
// declarations, for callers that already have them in hand (tests, demos).
type staticDesign struct {
	signals   []SignalDecl
	processes []ProcessDecl
}

// NewDesign builds a Design from explicit signal and process declarations.
func NewDesign(signals []SignalDecl, processes []ProcessDecl) Design {
	return &staticDesign{signals: signals, processes: processes}
}

func (d *staticDesign) Signals() []SignalDecl    { return d.signals }
func (d *staticDesign) Processes() []ProcessDecl { return d.processes }
