package instr

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/randgen"
	"github.com/pushlang/go-push/internal/value"
)

// registerCode wires the CODE.* list-manipulation instructions of spec
// §4.2 that operate on the code stack's top value as a (possibly atomic)
// code tree, grounded on original_source/code.c.
func registerCode(ip *interp.Interpreter) {
	ip.Register("CODE.APPEND", func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Code.Pop()
		a, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(b)
			}
			return
		}
		ip.Code.Push(ip.NewCode(value.Concat(asCode(a), asCode(b))))
	}, nil)

	ip.Register("CODE.ATOM", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Peek()
		if !ok {
			return
		}
		ip.Bool.Push(ip.NewBool(top.IsAtom()))
	}, nil)

	ip.Register("CODE.CAR", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Pop()
		if !ok {
			return
		}
		c := asCode(top)
		if c.Len() == 0 {
			ip.Code.Push(top)
			return
		}
		first := c.PeekNth(0)
		ip.Code.Push(first)
	}, nil)

	ip.Register("CODE.CDR", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Pop()
		if !ok {
			return
		}
		c := asCode(top)
		if c.Len() == 0 {
			ip.Code.Push(top)
			return
		}
		rest := value.NewEmptyCode()
		for i := 1; i < c.Len(); i++ {
			it := c.PeekNth(i)
			rest.Append(it)
		}
		ip.Code.Push(ip.NewCode(rest))
	}, nil)

	ip.Register("CODE.CONS", func(ip *interp.Interpreter, _ any) {
		rest, ok1 := ip.Code.Pop()
		head, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(rest)
			}
			return
		}
		c := value.NewEmptyCode()
		c.Append(head)
		restCode := asCode(rest)
		for i := 0; i < restCode.Len(); i++ {
			it := restCode.PeekNth(i)
			c.Append(it)
		}
		ip.Code.Push(ip.NewCode(c))
	}, nil)

	ip.Register("CODE.CONTAINER", func(ip *interp.Interpreter, _ any) {
		needle, ok1 := ip.Code.Pop()
		hay, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(needle)
			}
			return
		}
		found := value.Container(asCode(hay), needle)
		if found == nil {
			ip.Code.Push(ip.NewCode(value.NewEmptyCode()))
			return
		}
		ip.Code.Push(ip.NewCode(found))
	}, nil)

	ip.Register("CODE.CONTAINS", func(ip *interp.Interpreter, _ any) {
		needle, ok1 := ip.Code.Pop()
		hay, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(needle)
			}
			return
		}
		ip.Bool.Push(ip.NewBool(asCode(hay).Member(needle)))
	}, nil)

	ip.Register("CODE.DEFINITION", func(ip *interp.Interpreter, _ any) {
		n, ok := ip.Name.Pop()
		if !ok {
			return
		}
		bound := ip.LookupBinding(n.Sym())
		if bound == nil {
			ip.Name.Push(n)
			return
		}
		ip.Code.Push(bound)
	}, nil)

	ip.Register("CODE.DISCREPANCY", func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Code.Pop()
		a, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(b)
			}
			return
		}
		ip.Int.Push(ip.NewInt(int64(value.Discrepancy(a, b))))
	}, nil)

	ip.Register("CODE.EXTRACT", func(ip *interp.Interpreter, _ any) {
		p, ok1 := ip.Int.Pop()
		top, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok2 {
				ip.Code.Push(top)
			}
			return
		}
		point := value.NormalizePoint(top, int(p.Int()))
		ip.Code.Push(value.Extract(top, point))
	}, nil)

	ip.Register("CODE.INSERT", func(ip *interp.Interpreter, _ any) {
		p, ok1 := ip.Int.Pop()
		repl, ok2 := ip.Code.Pop()
		top, ok3 := ip.Code.Pop()
		if !ok1 || !ok2 || !ok3 {
			if ok3 {
				ip.Code.Push(top)
			}
			if ok2 {
				ip.Code.Push(repl)
			}
			return
		}
		point := value.NormalizePoint(top, int(p.Int()))
		ip.Code.Push(value.Replace(top, point, repl))
	}, nil)

	ip.Register("CODE.INSTRUCTIONS", func(ip *interp.Interpreter, _ any) {
		c := value.NewEmptyCode()
		for _, n := range ip.InstrNames() {
			c.Append(ip.NewInstrValue(n))
		}
		ip.Code.Push(ip.NewCode(c))
	}, nil)

	ip.Register("CODE.LENGTH", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Peek()
		if !ok {
			return
		}
		ip.Int.Push(ip.NewInt(int64(asCode(top).Len())))
	}, nil)

	ip.Register("CODE.LIST", func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Code.Pop()
		a, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(b)
			}
			return
		}
		ip.Code.Push(ip.NewCode(value.CodeOf(a, b)))
	}, nil)

	ip.Register("CODE.MEMBER", func(ip *interp.Interpreter, _ any) {
		needle, ok1 := ip.Code.Pop()
		hay, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(needle)
			}
			return
		}
		ip.Bool.Push(ip.NewBool(asCode(hay).Member(needle)))
	}, nil)

	ip.Register("CODE.NOOP", func(ip *interp.Interpreter, _ any) {}, nil)

	ip.Register("CODE.NTH", func(ip *interp.Interpreter, _ any) {
		n, ok1 := ip.Int.Pop()
		top, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok2 {
				ip.Code.Push(top)
			}
			return
		}
		c := asCode(top)
		if c.Len() == 0 {
			ip.Code.Push(top)
			return
		}
		idx := int(n.Int()) % c.Len()
		if idx < 0 {
			idx += c.Len()
		}
		item := c.PeekNth(idx)
		ip.Code.Push(item)
	}, nil)

	ip.Register("CODE.NTHCDR", func(ip *interp.Interpreter, _ any) {
		n, ok1 := ip.Int.Pop()
		top, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok2 {
				ip.Code.Push(top)
			}
			return
		}
		c := asCode(top)
		if c.Len() == 0 {
			ip.Code.Push(top)
			return
		}
		idx := int(n.Int()) % c.Len()
		if idx < 0 {
			idx += c.Len()
		}
		rest := value.NewEmptyCode()
		for i := idx; i < c.Len(); i++ {
			it := c.PeekNth(i)
			rest.Append(it)
		}
		ip.Code.Push(ip.NewCode(rest))
	}, nil)

	ip.Register("CODE.NULL", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Peek()
		if !ok {
			return
		}
		ip.Bool.Push(ip.NewBool(!top.IsAtom() && top.Code().Len() == 0))
	}, nil)

	ip.Register("CODE.POSITION", func(ip *interp.Interpreter, _ any) {
		needle, ok1 := ip.Code.Pop()
		hay, ok2 := ip.Code.Pop()
		if !ok1 || !ok2 {
			if ok1 {
				ip.Code.Push(needle)
			}
			return
		}
		ip.Int.Push(ip.NewInt(int64(asCode(hay).IndexOf(needle))))
	}, nil)

	ip.Register("CODE.QUOTE", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Exec.Pop()
		if !ok {
			return
		}
		ip.Code.Push(top)
	}, nil)

	ip.Register("CODE.RAND", func(ip *interp.Interpreter, _ any) {
		maxPoints := int(ip.ConfigInt(interp.ConfigMaxPointsInRandom, 100))
		ip.Code.Push(randgen.RandomCode(ip, maxPoints))
	}, nil)

	ip.Register("CODE.SIZE", func(ip *interp.Interpreter, _ any) {
		top, ok := ip.Code.Peek()
		if !ok {
			return
		}
		ip.Int.Push(ip.NewInt(int64(value.Size(top))))
	}, nil)

	ip.Register("CODE.FROMBOOL", fromStack(func(ip *interp.Interpreter) (*value.Value, bool) { return ip.Bool.Pop() }), nil)
	ip.Register("CODE.FROMINT", fromStack(func(ip *interp.Interpreter) (*value.Value, bool) { return ip.Int.Pop() }), nil)
	ip.Register("CODE.FROMREAL", fromStack(func(ip *interp.Interpreter) (*value.Value, bool) { return ip.Real.Pop() }), nil)
	ip.Register("CODE.FROMNAME", fromStack(func(ip *interp.Interpreter) (*value.Value, bool) { return ip.Name.Pop() }), nil)
}

func fromStack(pop func(ip *interp.Interpreter) (*value.Value, bool)) interp.InstrFunc {
	return func(ip *interp.Interpreter, _ any) {
		v, ok := pop(ip)
		if !ok {
			return
		}
		ip.Code.Push(v)
	}
}

// asCode normalizes a code-stack Value to a *value.Code: an atom is
// treated as a single-item list for list-operation purposes, matching
// original_source/code.c's "an atom pushed where a list is expected
// becomes a one-item list" convention.
func asCode(v *value.Value) *value.Code {
	if v.Kind() == value.KindCode {
		return v.Code()
	}
	return value.CodeOf(v)
}
