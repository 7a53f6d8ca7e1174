package instr

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/randgen"
	"github.com/pushlang/go-push/internal/value"
)

// registerName wires NAME.QUOTE, NAME.RAND, and NAME.RANDBOUNDNAME
// (spec §4.2).
func registerName(ip *interp.Interpreter) {
	// NAME.QUOTE pops the next exec item and routes it onto the name stack
	// only if it is itself a Name; otherwise it pushes the item back onto
	// exec unchanged (spec §4.2, grounded on
	// original_source/dis.c's push_instr_name_quote).
	ip.Register("NAME.QUOTE", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Exec.Pop()
		if !ok {
			return
		}
		if top.Kind() != value.KindName {
			ip.Exec.Push(top)
			return
		}
		ip.Name.Push(top)
	}, nil)

	ip.Register("NAME.RAND", func(ip *interp.Interpreter, _ any) {
		ip.Name.Push(randgen.RandomName(ip))
	}, nil)

	ip.Register("NAME.RANDBOUNDNAME", func(ip *interp.Interpreter, _ any) {
		bound := ip.BoundNames()
		if len(bound) == 0 {
			return
		}
		n := bound[ip.Rand().Intn(len(bound))]
		ip.Name.Push(ip.NewNameValue(n))
	}, nil)
}
