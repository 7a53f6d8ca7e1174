// Package push is the public façade over go-push's internal packages,
// mirroring the boundary the teacher draws between its internal/ tree and
// pkg/dwscript: host programs that only need to load a program, run it,
// and read back results should depend on this package, not on
// internal/interp directly.
package push

import (
	"io"

	"github.com/pushlang/go-push/internal/gp"
	"github.com/pushlang/go-push/internal/instr"
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/parse"
	"github.com/pushlang/go-push/internal/pushxml"
)

// Interpreter wraps an *interp.Interpreter with the default instruction set
// already registered — the shape every cmd/push subcommand and most host
// embedders want.
type Interpreter struct {
	ip *interp.Interpreter
}

// New returns an Interpreter with the full default instruction set
// registered and default configuration (spec §6).
func New() *Interpreter {
	ip := interp.New()
	instr.RegisterAll(ip)
	return &Interpreter{ip: ip}
}

// Core exposes the underlying *interp.Interpreter for callers that need
// internal/interp's full surface (host instruction registration, direct
// stack manipulation, GC access).
func (p *Interpreter) Core() *interp.Interpreter { return p.ip }

// LoadProgram parses source as Push code and seeds it onto both the code
// and exec stacks, ready for Run — the usual "run a program" entry point
// (spec §3's external textual form).
func (p *Interpreter) LoadProgram(source string) error {
	code, err := parse.Program(p.ip, source)
	if err != nil {
		return err
	}
	p.ip.Flush()
	codeVal := p.ip.NewCode(code)
	p.ip.Code.Push(codeVal)
	p.ip.Exec.Push(codeVal)
	return nil
}

// Run drives the loaded program to completion or maxSteps, whichever comes
// first (spec §4.1/§5), returning the number of steps actually performed.
func (p *Interpreter) Run(maxSteps int) int {
	return p.ip.Run(maxSteps)
}

// Register installs a host instruction (spec §6's "a host instruction
// receives the interpreter and its registered user_data").
func (p *Interpreter) Register(name string, fn interp.InstrFunc, userdata any) {
	p.ip.Register(name, fn, userdata)
}

// Dump writes this interpreter's complete state as the XML document
// spec.md §6 describes.
func (p *Interpreter) Dump(w io.Writer) error { return pushxml.Dump(w, p.ip) }

// Load replaces this interpreter's stacks with those of the XML document
// read from r and sets the config entries and bindings it names (others
// are kept), leaving it untouched if the document is malformed.
func (p *Interpreter) Load(r io.Reader) error { return pushxml.Load(r, p.ip) }

// Population wraps internal/gp.Population, seeding every individual's
// interpreter as a Clone of this Interpreter's (so host instructions and
// configuration are inherited by the whole population without
// re-registering them per individual).
type Population struct {
	*gp.Population
}

// NewPopulation builds a population whose template interpreter is this
// Interpreter (spec §4.6).
func NewPopulation(template *Interpreter, cfg gp.Config) *Population {
	return &Population{Population: gp.New(template.ip, cfg)}
}
