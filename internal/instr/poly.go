// Package instr implements the default instruction set of spec §4.2:
// roughly 140 polymorphic, type-specific, and control-flow instructions,
// registered onto an *interp.Interpreter by RegisterAll.
package instr

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
)

// stackFor resolves stack name to the matching interpreter stack, for the
// polymorphic family (T.=, T.DUP, ...) which is instantiated once per
// stack rather than once per instruction.
func stackFor(ip *interp.Interpreter, name string) *stackHandle {
	switch name {
	case "BOOL":
		return &stackHandle{ip.Bool}
	case "CODE":
		return &stackHandle{ip.Code}
	case "EXEC":
		return &stackHandle{ip.Exec}
	case "INT":
		return &stackHandle{ip.Int}
	case "NAME":
		return &stackHandle{ip.Name}
	case "REAL":
		return &stackHandle{ip.Real}
	}
	return nil
}

// stackHandle adapts *stack.Stack[*value.Value] to a uniform interface so
// poly.go's registration loop can treat all six stacks identically.
type stackHandle struct {
	s interface {
		Push(*value.Value)
		PushNth(int, *value.Value)
		Pop() (*value.Value, bool)
		PopNth(int) (*value.Value, bool)
		Peek() (*value.Value, bool)
		PeekNth(int) (*value.Value, bool)
		Len() int
		Flush()
	}
}

// polyStackNames lists the six stack name prefixes the polymorphic
// instruction family is instantiated for (spec §4.2).
var polyStackNames = []string{"BOOL", "CODE", "EXEC", "INT", "NAME", "REAL"}

// registerPoly wires T.=, T.DUP, T.POP, T.FLUSH, T.SWAP, T.ROT, T.SHOVE,
// T.YANK, T.YANKDUP, T.STACKDEPTH, and T.DEFINE for each of the six stacks.
func registerPoly(ip *interp.Interpreter) {
	for _, name := range polyStackNames {
		name := name
		ip.Register(name+".=", func(ip *interp.Interpreter, _ any) {
			h := stackFor(ip, name)
			b, ok1 := h.s.Pop()
			a, ok2 := h.s.Pop()
			if !ok1 || !ok2 {
				if ok1 {
					h.s.Push(b)
				}
				return
			}
			ip.Bool.Push(ip.NewBool(value.Equal(a, b)))
		}, nil)

		ip.Register(name+".DUP", func(ip *interp.Interpreter, _ any) {
			h := stackFor(ip, name)
			top, ok := h.s.Peek()
			if !ok {
				return
			}
			h.s.Push(top.Dup())
		}, nil)

		ip.Register(name+".POP", func(ip *interp.Interpreter, _ any) {
			stackFor(ip, name).s.Pop()
		}, nil)

		ip.Register(name+".FLUSH", func(ip *interp.Interpreter, _ any) {
			stackFor(ip, name).s.Flush()
		}, nil)

		ip.Register(name+".SWAP", func(ip *interp.Interpreter, _ any) {
			h := stackFor(ip, name)
			a, ok1 := h.s.Pop()
			b, ok2 := h.s.Pop()
			if !ok1 || !ok2 {
				if ok2 {
					h.s.Push(b)
				}
				if ok1 {
					h.s.Push(a)
				}
				return
			}
			h.s.Push(a)
			h.s.Push(b)
		}, nil)

		// ROT brings the third item from the top to the top, preserving the
		// relative order of the other two (spec §4.2): [... c b a] -> [... b a c]
		// read bottom to top, i.e. the old third-from-top ends up on top.
		ip.Register(name+".ROT", func(ip *interp.Interpreter, _ any) {
			h := stackFor(ip, name)
			if h.s.Len() < 3 {
				return
			}
			a, _ := h.s.Pop() // top
			b, _ := h.s.Pop()
			c, _ := h.s.Pop() // third
			h.s.Push(b)
			h.s.Push(a)
			h.s.Push(c)
		}, nil)

		ip.Register(name+".SHOVE", func(ip *interp.Interpreter, _ any) {
			n, ok := ip.Int.Pop()
			if !ok {
				return
			}
			h := stackFor(ip, name)
			top, ok := h.s.Pop()
			if !ok {
				return
			}
			depth := normalizeIndex(int(n.Int()), h.s.Len())
			h.s.PushNth(depth, top)
		}, nil)

		ip.Register(name+".YANK", func(ip *interp.Interpreter, _ any) {
			n, ok := ip.Int.Pop()
			if !ok {
				return
			}
			h := stackFor(ip, name)
			depth := normalizeIndex(int(n.Int()), h.s.Len()-1)
			v, ok := h.s.PopNth(depth)
			if !ok {
				return
			}
			h.s.Push(v)
		}, nil)

		ip.Register(name+".YANKDUP", func(ip *interp.Interpreter, _ any) {
			n, ok := ip.Int.Pop()
			if !ok {
				return
			}
			h := stackFor(ip, name)
			depth := normalizeIndex(int(n.Int()), h.s.Len()-1)
			v, ok := h.s.PeekNth(depth)
			if !ok {
				return
			}
			h.s.Push(v.Dup())
		}, nil)

		ip.Register(name+".STACKDEPTH", func(ip *interp.Interpreter, _ any) {
			ip.Int.Push(ip.NewInt(int64(stackFor(ip, name).s.Len())))
		}, nil)

		ip.Register(name+".DEFINE", func(ip *interp.Interpreter, _ any) {
			n, ok := ip.Name.Pop()
			if !ok {
				return
			}
			h := stackFor(ip, name)
			top, ok := h.s.Pop()
			if !ok {
				ip.Name.Push(n)
				return
			}
			ip.Define(n.Sym(), top)
		}, nil)
	}
}

// normalizeIndex clamps a signed shove/yank index into [0, n] the way
// original_source/instr.c's shove/yank bound their index: negative or
// over-large indices saturate to the nearer end rather than wrapping.
func normalizeIndex(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}
