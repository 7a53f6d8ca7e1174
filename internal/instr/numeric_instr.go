package instr

import (
	"math"

	"github.com/pushlang/go-push/internal/interp"
)

// registerNumeric wires INT.* and REAL.* arithmetic, comparison, and
// cross-type conversion (spec §4.2). Division and modulo by zero are a
// no-op that restores both operands, matching original_source/instr.c's
// "leave the stack untouched on an undefined operation" rule rather than
// raising an error the core has no channel for.
func registerNumeric(ip *interp.Interpreter) {
	registerIntBinOp(ip, "INT.+", func(a, b int64) int64 { return a + b })
	registerIntBinOp(ip, "INT.-", func(a, b int64) int64 { return a - b })
	registerIntBinOp(ip, "INT.*", func(a, b int64) int64 { return a * b })
	registerIntDivOp(ip, "INT./", func(a, b int64) int64 { return a / b })
	registerIntDivOp(ip, "INT.%", intMod)

	registerIntCompare(ip, "INT.=", func(a, b int64) bool { return a == b })
	registerIntCompare(ip, "INT.GREATER", func(a, b int64) bool { return a > b })
	registerIntCompare(ip, "INT.LESS", func(a, b int64) bool { return a < b })

	ip.Register("INT.MIN", intBin(func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	}), nil)
	ip.Register("INT.MAX", intBin(func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	}), nil)

	ip.Register("INT.FROMREAL", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Real.Pop()
		if !ok {
			return
		}
		ip.Int.Push(ip.NewInt(int64(a.Real())))
	}, nil)
	ip.Register("INT.FROMBOOL", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Bool.Pop()
		if !ok {
			return
		}
		var i int64
		if a.Bool() {
			i = 1
		}
		ip.Int.Push(ip.NewInt(i))
	}, nil)

	registerRealBinOp(ip, "REAL.+", func(a, b float64) float64 { return a + b })
	registerRealBinOp(ip, "REAL.-", func(a, b float64) float64 { return a - b })
	registerRealBinOp(ip, "REAL.*", func(a, b float64) float64 { return a * b })
	registerRealDivOp(ip, "REAL./", func(a, b float64) float64 { return a / b })
	registerRealDivOp(ip, "REAL.%", math.Mod)

	registerRealCompare(ip, "REAL.=", func(a, b float64) bool { return a == b })
	registerRealCompare(ip, "REAL.GREATER", func(a, b float64) bool { return a > b })
	registerRealCompare(ip, "REAL.LESS", func(a, b float64) bool { return a < b })

	ip.Register("REAL.MIN", realBin(math.Min), nil)
	ip.Register("REAL.MAX", realBin(math.Max), nil)
	ip.Register("REAL.SIN", realUn(math.Sin), nil)
	ip.Register("REAL.COS", realUn(math.Cos), nil)
	ip.Register("REAL.TAN", realUn(math.Tan), nil)
	ip.Register("REAL.EXP", realUn(math.Exp), nil)
	ip.Register("REAL.LOG", realUn(math.Log), nil)

	ip.Register("REAL.FROMINT", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Int.Pop()
		if !ok {
			return
		}
		ip.Real.Push(ip.NewReal(float64(a.Int())))
	}, nil)
	ip.Register("REAL.FROMBOOL", func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Bool.Pop()
		if !ok {
			return
		}
		var r float64
		if a.Bool() {
			r = 1
		}
		ip.Real.Push(ip.NewReal(r))
	}, nil)
}

// intMod implements mathematical (not truncated) modulo, matching spec
// §4.2's "result has the same sign as the divisor."
func intMod(a, b int64) int64 {
	m := a % b
	if (m < 0) != (b < 0) && m != 0 {
		m += b
	}
	return m
}

func intBin(f func(a, b int64) int64) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Int.Pop()
		a, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Int.Push(b)
			}
			return
		}
		ip.Int.Push(ip.NewInt(f(a.Int(), b.Int())))
	}
}

func registerIntBinOp(ip *interp.Interpreter, name string, f func(a, b int64) int64) {
	ip.Register(name, intBin(f), nil)
}

func registerIntDivOp(ip *interp.Interpreter, name string, f func(a, b int64) int64) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Int.Pop()
		a, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Int.Push(b)
			}
			return
		}
		if b.Int() == 0 {
			ip.Int.Push(a)
			ip.Int.Push(b)
			return
		}
		ip.Int.Push(ip.NewInt(f(a.Int(), b.Int())))
	}, nil)
}

func registerIntCompare(ip *interp.Interpreter, name string, f func(a, b int64) bool) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Int.Pop()
		a, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Int.Push(b)
			}
			return
		}
		ip.Bool.Push(ip.NewBool(f(a.Int(), b.Int())))
	}, nil)
}

func realBin(f func(a, b float64) float64) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Real.Pop()
		a, ok2 := ip.Real.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Real.Push(b)
			}
			return
		}
		ip.Real.Push(ip.NewReal(f(a.Real(), b.Real())))
	}
}

func realUn(f func(a float64) float64) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		a, ok := ip.Real.Pop()
		if !ok {
			return
		}
		ip.Real.Push(ip.NewReal(f(a.Real())))
	}
}

func registerRealBinOp(ip *interp.Interpreter, name string, f func(a, b float64) float64) {
	ip.Register(name, realBin(f), nil)
}

func registerRealDivOp(ip *interp.Interpreter, name string, f func(a, b float64) float64) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Real.Pop()
		a, ok2 := ip.Real.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Real.Push(b)
			}
			return
		}
		if b.Real() == 0 {
			ip.Real.Push(a)
			ip.Real.Push(b)
			return
		}
		ip.Real.Push(ip.NewReal(f(a.Real(), b.Real())))
	}, nil)
}

func registerRealCompare(ip *interp.Interpreter, name string, f func(a, b float64) bool) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Real.Pop()
		a, ok2 := ip.Real.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Real.Push(b)
			}
			return
		}
		ip.Bool.Push(ip.NewBool(f(a.Real(), b.Real())))
	}, nil)
}
