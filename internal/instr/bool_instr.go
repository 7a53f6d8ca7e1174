package instr

import (
	"github.com/pushlang/go-push/internal/interp"
)

// registerBool wires the BOOL-specific instructions of spec §4.2:
// AND, OR, NOT, and the FROMINT/FROMREAL conversions.
func registerBool(ip *interp.Interpreter) {
	ip.Register("BOOL.AND", binBool(func(a, b bool) bool { return a && b }), nil)
	ip.Register("BOOL.OR", binBool(func(a, b bool) bool { return a || b }), nil)
	ip.Register("BOOL.NOT", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Bool.Pop()
		if !ok {
			return
		}
		ip.Bool.Push(ip.NewBool(!a.Bool()))
	}, nil)

	ip.Register("BOOL.FROMINT", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Int.Pop()
		if !ok {
			return
		}
		ip.Bool.Push(ip.NewBool(a.Int() != 0))
	}, nil)

	ip.Register("BOOL.FROMREAL", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Real.Pop()
		if !ok {
			return
		}
		ip.Bool.Push(ip.NewBool(a.Real() != 0))
	}, nil)
}

func binBool(f func(a, b bool) bool) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Bool.Pop()
		a, ok2 := ip.Bool.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Bool.Push(b)
			}
			return
		}
		ip.Bool.Push(ip.NewBool(f(a.Bool(), b.Bool())))
	}
}
