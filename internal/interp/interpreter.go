// Package interp implements the Push interpreter core of spec §4.1: six
// typed stacks, name bindings, configuration, the instruction registry,
// the execution loop, and the per-interpreter garbage collector binding.
package interp

import (
	"math/rand"
	"sync"

	"github.com/pushlang/go-push/internal/gc"
	"github.com/pushlang/go-push/internal/stack"
	"github.com/pushlang/go-push/internal/value"
)

// InterruptHandler is invoked when a positive interrupt flag halts
// execution (spec §4.1, §5).
type InterruptHandler func(ip *Interpreter, flag int)

// StepHook is invoked after every step, if set (spec §4.1).
type StepHook func(ip *Interpreter)

// KillFlag is the reserved interrupt value meaning "do not reschedule"
// (spec §4.1, §5).
const KillFlag = -1

// Interpreter holds one Push program's complete execution state (spec §3).
// Two goroutines must never drive the same Interpreter concurrently; mu
// serializes Step, Run, Clone, Destroy, Interrupt and InterruptFlag.
// internal/pushxml's Dump and Load do not take mu.
type Interpreter struct {
	mu sync.Mutex

	Bool *stack.Stack[*value.Value]
	Code *stack.Stack[*value.Value]
	Exec *stack.Stack[*value.Value]
	Int  *stack.Stack[*value.Value]
	Name *stack.Stack[*value.Value]
	Real *stack.Stack[*value.Value]

	bindings map[*value.Name]*value.Value
	config   map[string]*value.Value
	registry map[*value.Name]*InstrRecord

	names *value.Pool
	rng   *rand.Rand

	interrupt        int
	interruptHandler InterruptHandler
	stepHook         StepHook

	gc *gc.GC

	// UserData is opaque storage a host (e.g. internal/gp's population,
	// or a host simulator like the spec's out-of-scope pole-cart) can
	// attach to an interpreter. The core never reads it.
	UserData any
}

// New returns a freshly initialized interpreter: empty stacks, no
// bindings, default configuration (spec §6), an RNG seeded with 1, and its own
// garbage collector already bound as this interpreter's root source.
func New() *Interpreter {
	ip := &Interpreter{
		Bool:     stack.New[*value.Value](),
		Code:     stack.New[*value.Value](),
		Exec:     stack.New[*value.Value](),
		Int:      stack.New[*value.Value](),
		Name:     stack.New[*value.Value](),
		Real:     stack.New[*value.Value](),
		bindings: make(map[*value.Name]*value.Value),
		config:   defaultConfig(),
		registry: make(map[*value.Name]*InstrRecord),
		names:    value.NewPool(),
		rng:      rand.New(rand.NewSource(1)),
		gc:       gc.New(),
	}
	ip.gc.SetRoots(ip)
	return ip
}

// Intern returns the canonical *value.Name for s within this interpreter.
func (ip *Interpreter) Intern(s string) *value.Name {
	return ip.names.Intern(s)
}

// Names exposes this interpreter's name pool, e.g. for random generation
// and serialization.
func (ip *Interpreter) Names() *value.Pool {
	return ip.names
}

// Rand exposes the interpreter-local RNG. Instruction handlers,
// internal/randgen, and internal/gp's crossover and mutation draw from
// this rather than from a package-global source, so that two interpreters
// running concurrently never contend on or correlate through shared RNG
// state (spec §5). internal/gp's selection functions use math/rand's
// package-level source instead.
func (ip *Interpreter) Rand() *rand.Rand {
	return ip.rng
}

// SeedRand reseeds the interpreter-local RNG.
func (ip *Interpreter) SeedRand(seed int64) {
	ip.rng = rand.New(rand.NewSource(seed))
}

// GC exposes the interpreter's collector, e.g. for internal/gp's crossover
// (spec §4.6) to Untrack/Track subtrees moving between interpreters.
func (ip *Interpreter) GC() *gc.GC {
	return ip.gc
}

// track registers a freshly constructed value with this interpreter's
// collector — every New* below must funnel through this so "every Value
// is owned by the garbage collector" (spec §3) actually holds.
func (ip *Interpreter) track(v *value.Value) *value.Value {
	ip.gc.Track(v)
	return v
}

// NewBool, NewInt, NewReal, NewCode, NewNameValue, and NewInstrValue
// construct and enroll a Value with this interpreter's collector in one
// step. Instruction handlers and random generation should prefer these
// over the bare value.New* constructors.
func (ip *Interpreter) NewNoneValue() *value.Value    { return ip.track(value.NewNone()) }
func (ip *Interpreter) NewBool(b bool) *value.Value   { return ip.track(value.NewBool(b)) }
func (ip *Interpreter) NewInt(i int64) *value.Value   { return ip.track(value.NewInt(i)) }
func (ip *Interpreter) NewReal(r float64) *value.Value { return ip.track(value.NewReal(r)) }
func (ip *Interpreter) NewCode(c *value.Code) *value.Value {
	return ip.track(value.NewCode(c))
}
func (ip *Interpreter) NewNameValue(n *value.Name) *value.Value {
	return ip.track(value.NewName(n))
}
func (ip *Interpreter) NewInstrValue(n *value.Name) *value.Value {
	return ip.track(value.NewInstr(n))
}

// GCRoots implements gc.Roots: every stack, binding, and config value is a
// root (spec §4.3).
func (ip *Interpreter) GCRoots() []*value.Value {
	roots := make([]*value.Value, 0,
		ip.Bool.Len()+ip.Code.Len()+ip.Exec.Len()+ip.Int.Len()+ip.Name.Len()+ip.Real.Len()+
			len(ip.bindings)+len(ip.config))
	for _, s := range []*stack.Stack[*value.Value]{ip.Bool, ip.Code, ip.Exec, ip.Int, ip.Name, ip.Real} {
		roots = append(roots, s.Items()...)
	}
	for _, v := range ip.bindings {
		roots = append(roots, v)
	}
	for _, v := range ip.config {
		roots = append(roots, v)
	}
	return roots
}

// Flush empties all six stacks (used between GP generations and on
// teardown).
func (ip *Interpreter) Flush() {
	ip.Bool.Flush()
	ip.Code.Flush()
	ip.Exec.Flush()
	ip.Int.Flush()
	ip.Name.Flush()
	ip.Real.Flush()
}

// Destroy flushes all roots and forces a final collection, then releases
// the collector's own bookkeeping — spec §3's interpreter-lifecycle rule.
func (ip *Interpreter) Destroy() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.Flush()
	ip.bindings = make(map[*value.Name]*value.Value)
	ip.config = make(map[string]*value.Value)
	ip.gc.Collect(true)
}

// Lock and Unlock expose the interpreter's execution mutex directly. Step,
// Run, Clone, Destroy, Interrupt and InterruptFlag take it themselves and
// the mutex is not reentrant, so none of them may be called while the
// caller holds it.
func (ip *Interpreter) Lock()   { ip.mu.Lock() }
func (ip *Interpreter) Unlock() { ip.mu.Unlock() }

// SetInterruptHandler installs the handler invoked for positive interrupt
// flags (spec §4.1).
func (ip *Interpreter) SetInterruptHandler(h InterruptHandler) { ip.interruptHandler = h }

// SetStepHook installs the hook invoked after every step (spec §4.1).
func (ip *Interpreter) SetStepHook(h StepHook) { ip.stepHook = h }

// Interrupt sets the interrupt flag, checked at the next step boundary
// (spec §5). flag == KillFlag requests the runner not reschedule this
// interpreter; any other nonzero flag is user-defined and dispatched to
// the interrupt handler once execution halts.
func (ip *Interpreter) Interrupt(flag int) {
	ip.mu.Lock()
	ip.interrupt = flag
	ip.mu.Unlock()
}

// InterruptFlag returns the current interrupt flag.
func (ip *Interpreter) InterruptFlag() int {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.interrupt
}
