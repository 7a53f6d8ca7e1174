package interp

import "github.com/pushlang/go-push/internal/value"

// InstrFunc is the handler signature for a registered instruction. It
// receives the interpreter it's executing against and the user data it was
// registered with — host instructions (spec §6's "a host instruction
// receives the interpreter and its registered user_data") use exactly
// this signature, same as the default instruction set.
type InstrFunc func(ip *Interpreter, userdata any)

// InstrRecord is one entry in the instruction registry (spec §3, §4.1).
type InstrRecord struct {
	Name    *value.Name
	Handler InstrFunc
	UserData any
}

// Register adds or replaces the registry entry for name.
func (ip *Interpreter) Register(name string, handler InstrFunc, userdata any) {
	n := ip.names.Intern(name)
	ip.registry[n] = &InstrRecord{Name: n, Handler: handler, UserData: userdata}
}

// LookupInstr returns the registry entry for an interned name, or nil.
func (ip *Interpreter) LookupInstr(n *value.Name) *InstrRecord {
	return ip.registry[n]
}

// LookupInstrByName interns name in this interpreter's pool and looks it
// up, for callers that only have the raw string (e.g. the CLI, tests).
func (ip *Interpreter) LookupInstrByName(name string) *InstrRecord {
	return ip.registry[ip.names.Intern(name)]
}

// CallInstr invokes instr's handler against ip.
func (ip *Interpreter) CallInstr(instr *InstrRecord) {
	if instr == nil || instr.Handler == nil {
		return
	}
	instr.Handler(ip, instr.UserData)
}

// InstrNames returns the interned names of every registered instruction,
// in unspecified order — used by random instruction generation and by
// the CODE.INSTRUCTIONS instruction.
func (ip *Interpreter) InstrNames() []*value.Name {
	out := make([]*value.Name, 0, len(ip.registry))
	for n := range ip.registry {
		out = append(out, n)
	}
	return out
}

// InstrCount reports how many instructions are registered.
func (ip *Interpreter) InstrCount() int {
	return len(ip.registry)
}
