package instr

import "github.com/pushlang/go-push/internal/interp"

// RegisterAll installs the complete default instruction set (spec §4.2)
// onto ip: the polymorphic stack family, type-specific bool/int/real/name
// instructions, code-list manipulation, and the control-flow combinators.
// internal/interp.New does not call this itself, so a host can start from
// a bare interpreter and register only the subset — or host-specific
// instructions alongside — it needs (spec §6).
func RegisterAll(ip *interp.Interpreter) {
	registerPoly(ip)
	registerBool(ip)
	registerNumeric(ip)
	registerName(ip)
	registerCode(ip)
	registerControlFlow(ip)
}
