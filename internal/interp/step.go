package interp

import "github.com/pushlang/go-push/internal/value"

// Step executes one step of the exec stack (spec §4.1): it pops the top of
// exec and dispatches on its kind. An empty exec stack is a no-op and
// reports false (Run treats this as "nothing left to do"). A pending
// interrupt (spec §4.1/§5's step-boundary interrupt contract) is honored
// before dispatch, matching Run's own interrupt check.
//
// Dispatch:
//   - Bool, Int, Real: pushed to the matching literal stack.
//   - Name: if bound, its bound Value is pushed onto exec for further
//     dispatch (spec §4.1's "evaluates to its binding"); if unbound, the
//     Name itself is pushed onto the name stack.
//   - Instr: its registry handler is invoked, if still registered.
//     An instruction Value whose name was Undef'd from the registry (not
//     possible via Undef, which only touches bindings, but possible if a
//     host never registered it) is silently dropped.
//   - Code: a list literal is not itself executable; CODE.* instructions
//     operate on it via the code stack instead. A Code-kind Value reaching
//     exec this way (e.g. a quoted list literal written directly into a
//     program) has its elements pushed onto exec individually, last to
//     first, so the leftmost element is on top and they execute left-to-
//     right, matching spec §3's "a program is exec-stack content" model —
//     this is how literal program lists execute when run.
//   - None: no-op.
func (ip *Interpreter) Step() bool {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	if ip.interrupt != 0 {
		if ip.interrupt > 0 && ip.interruptHandler != nil {
			ip.interruptHandler(ip, ip.interrupt)
		}
		return false
	}
	top, ok := ip.Exec.Pop()
	if !ok {
		return false
	}
	ip.dispatch(top)
	if ip.stepHook != nil {
		ip.stepHook(ip)
	}
	ip.gc.Collect(false)
	return true
}

func (ip *Interpreter) dispatch(v *value.Value) {
	switch v.Kind() {
	case value.KindBool:
		ip.Bool.Push(v)
	case value.KindInt:
		ip.Int.Push(v)
	case value.KindReal:
		ip.Real.Push(v)
	case value.KindName:
		if bound := ip.LookupBinding(v.Sym()); bound != nil {
			ip.Exec.Push(bound)
		} else {
			ip.Name.Push(v)
		}
	case value.KindInstr:
		ip.CallInstr(ip.LookupInstr(v.Sym()))
	case value.KindCode:
		v.Code().PushOnto(ip.Exec)
	case value.KindNone:
		// no-op
	}
}
