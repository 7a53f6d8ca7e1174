package instr

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
)

// registerControlFlow wires the combinators that build exec-stack content
// at runtime (spec §4.2): the CODE/EXEC.DO* family, CODE.IF/EXEC.IF, and
// the combinator trio EXEC.K/EXEC.S/EXEC.Y, grounded on
// original_source/instr.c's do_range/do_times/do_count/k/s/y handlers.
func registerControlFlow(ip *interp.Interpreter) {
	registerDoRange(ip, "CODE.DO*RANGE", true)
	registerDoRange(ip, "EXEC.DO*RANGE", false)
	registerDoTimes(ip, "CODE.DO*TIMES", "CODE.DO*RANGE", true)
	registerDoTimes(ip, "EXEC.DO*TIMES", "EXEC.DO*RANGE", false)
	registerDoCount(ip, "CODE.DO*COUNT", "CODE.DO*RANGE", true)
	registerDoCount(ip, "EXEC.DO*COUNT", "EXEC.DO*RANGE", false)

	ip.Register("CODE.DO", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Pop()
		if !ok {
			return
		}
		ip.Exec.Push(top)
	}, nil)

	ip.Register("CODE.IF", doIf(true), nil)
	ip.Register("EXEC.IF", doIf(false), nil)

	ip.Register("EXEC.K", func(ip *interp.Interpreter, _ any) {
		x, ok1 := ip.Exec.Pop()
		_, ok2 := ip.Exec.Pop() // discard y
		if !ok1 || !ok2 {
			if ok1 {
				ip.Exec.Push(x)
			}
			return
		}
		ip.Exec.Push(x)
	}, nil)

	ip.Register("EXEC.S", func(ip *interp.Interpreter, _ any) {
		x, ok1 := ip.Exec.Pop()
		y, ok2 := ip.Exec.Pop()
		z, ok3 := ip.Exec.Pop()
		if !ok1 || !ok2 || !ok3 {
			if ok3 {
				ip.Exec.Push(z)
			}
			if ok2 {
				ip.Exec.Push(y)
			}
			if ok1 {
				ip.Exec.Push(x)
			}
			return
		}
		// S x y z = (y z) z x, pushed bottom to top so x ends on top and
		// runs first, then z, then (y z) — eventual execution order x z (y z).
		yz := value.CodeOf(y, z)
		ip.Exec.Push(ip.NewCode(yz))
		ip.Exec.Push(z)
		ip.Exec.Push(x)
	}, nil)

	ip.Register("EXEC.Y", func(ip *interp.Interpreter, _ any) {
		x, ok := ip.Exec.Pop()
		if !ok {
			return
		}
		// Y x = x (EXEC.Y x), pushed so x ends on top and its recursive call
		// is queued right behind it — grounded on original_source/instr.c's
		// exec_y, which relies on the step budget (spec §4.1's max_steps) to
		// terminate runaway recursion rather than any structural check here.
		retry := value.CodeOf(ip.NewInstrValue(ip.Intern("EXEC.Y")), x)
		ip.Exec.Push(ip.NewCode(retry))
		ip.Exec.Push(x)
	}, nil)
}

// doIf implements CODE.IF/EXEC.IF: pop a bool and two branches (true-branch
// on top of false-branch on the code or exec stack), push the selected
// branch onto exec.
func doIf(fromCode bool) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		b, ok := ip.Bool.Pop()
		if !ok {
			return
		}
		branchStack := ip.Exec
		if fromCode {
			branchStack = ip.Code
		}
		trueBranch, ok1 := branchStack.Pop()
		falseBranch, ok2 := branchStack.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				branchStack.Push(trueBranch)
			}
			if ok2 {
				branchStack.Push(falseBranch)
			}
			ip.Bool.Push(b)
			return
		}
		if b.Bool() {
			ip.Exec.Push(trueBranch)
		} else {
			ip.Exec.Push(falseBranch)
		}
	}
}

// runRange pushes one iteration of a CODE/EXEC.DO*RANGE loop: the current
// index onto the int stack, the body onto exec, and — if current hasn't
// reached destination — a continuation instruction that will resume at
// current's neighbor toward destination (spec §4.2, grounded on
// original_source/instr.c's do_range). Called both by the DO*RANGE handler
// itself and, via the desugaring in registerDoTimes/registerDoCount, by
// DO*TIMES/DO*COUNT.
func runRange(ip *interp.Interpreter, instrName string, body *value.Value, current, destination int64, fromCode bool) {
	ip.Int.Push(ip.NewInt(current))

	if current == destination {
		ip.Exec.Push(body)
		return
	}
	next := current + 1
	if current > destination {
		next = current - 1
	}
	recur := value.CodeOf(
		ip.NewInt(next),
		ip.NewInt(destination),
		ip.NewInstrValue(ip.Intern(instrName)),
	)
	// The continuation's body copy must sit on whichever stack instrName's
	// handler will pop it back off of: the code stack for the CODE.* family
	// (order relative to exec doesn't matter there), or underneath the
	// recur code on exec for EXEC.*, so it only surfaces once recur's own
	// items (next index, destination, instrName) have been consumed.
	if fromCode {
		ip.Code.Push(body.Dup())
	} else {
		ip.Exec.Push(body.Dup())
	}
	// Push the recursive continuation, then the body on top, so the body
	// runs this iteration and the continuation resumes afterward (spec
	// §4.2: the loop body ends up on top of exec).
	ip.Exec.Push(ip.NewCode(recur))
	ip.Exec.Push(body)
}

// registerDoRange wires CODE.DO*RANGE/EXEC.DO*RANGE directly: pop a body
// from code or exec, pop destination then current index from the int
// stack, and delegate to runRange.
func registerDoRange(ip *interp.Interpreter, name string, fromCode bool) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		bodyStack := ip.Exec
		if fromCode {
			bodyStack = ip.Code
		}
		body, ok1 := bodyStack.Pop()
		dest, ok2 := ip.Int.Pop()
		idx, ok3 := ip.Int.Pop()
		if !ok1 || !ok2 || !ok3 {
			if ok1 {
				bodyStack.Push(body)
			}
			if ok2 {
				ip.Int.Push(dest)
			}
			if ok3 {
				ip.Int.Push(idx)
			}
			return
		}
		runRange(ip, name, body, idx.Int(), dest.Int(), fromCode)
	}, nil)
}

// registerDoTimes wires CODE.DO*TIMES/EXEC.DO*TIMES: n repetitions of body
// with the loop index discarded before the body runs each time, desugared
// to rangeName(0, n-1, INT.POP ++ body) per original_source/instr.c's
// do_times.
func registerDoTimes(ip *interp.Interpreter, name, rangeName string, fromCode bool) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		bodyStack := ip.Exec
		if fromCode {
			bodyStack = ip.Code
		}
		body, ok1 := bodyStack.Pop()
		n, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				bodyStack.Push(body)
			}
			if ok2 {
				ip.Int.Push(n)
			}
			return
		}
		if n.Int() <= 0 {
			return
		}
		wrapped := ip.NewCode(value.CodeOf(ip.NewInstrValue(ip.Intern("INT.POP")), body))
		runRange(ip, rangeName, wrapped, 0, n.Int()-1, fromCode)
	}, nil)
}

// registerDoCount wires CODE.DO*COUNT/EXEC.DO*COUNT: like DO*TIMES, but the
// body sees the loop index (0..n-1) on the int stack, so no wrapping is
// needed beyond the desugaring to rangeName(0, n-1, body).
func registerDoCount(ip *interp.Interpreter, name, rangeName string, fromCode bool) {
	ip.Register(name, func(ip *interp.Interpreter, _ any) {
		bodyStack := ip.Exec
		if fromCode {
			bodyStack = ip.Code
		}
		body, ok1 := bodyStack.Pop()
		n, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				bodyStack.Push(body)
			}
			if ok2 {
				ip.Int.Push(n)
			}
			return
		}
		if n.Int() <= 0 {
			return
		}
		runRange(ip, rangeName, body, 0, n.Int()-1, fromCode)
	}, nil)
}
