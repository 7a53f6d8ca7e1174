// Package value implements the dynamically-typed value model of the Push
// language: a tagged variant over {none, bool, int, real, name, instr, code}
// plus the ordered code-list type code trees are built from.
//
// Values are conceptually immutable once constructed; operations that would
// "mutate" a code list instead return a new Value. Every Value is intended
// to be owned by exactly one garbage collector (internal/gc), which is why
// Value carries its own generation mark rather than delegating to a side
// table — see Mark and Gen.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindReal
	KindName
	KindInstr
	KindCode
)

// String renders a Kind the way instruction names reference it
// ("BOOL", "CODE", "EXEC", "INT", "NAME", "REAL") where applicable.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindBool:
		return "BOOL"
	case KindInt:
		return "INT"
	case KindReal:
		return "REAL"
	case KindName:
		return "NAME"
	case KindInstr:
		return "INSTR"
	case KindCode:
		return "CODE"
	default:
		return "UNKNOWN"
	}
}

// Name is an interned identifier. Two Names denote the same identifier iff
// they are the same pointer — see Pool.
type Name struct {
	s string
}

// String returns the underlying identifier text.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.s
}

// Value is the tagged variant described in spec §3. The zero Value is not
// meaningful; construct with the New* functions so the generation mark
// starts at -1 (unmarked by any collector generation; generations count
// up from zero).
type Value struct {
	kind Kind

	b bool
	i int64
	r float64

	// sym backs both KindName and KindInstr: an instruction Value holds
	// the interned name under which its handler is registered, and
	// dispatch resolves the handler from the interpreter's registry at
	// execution time. This is what spec §3 calls "equality is by
	// registry handle" — the registry is keyed 1:1 by interned name, so
	// identity of the interned name is identity of the registry entry.
	sym *Name

	code *Code

	gen int // GC generation mark; see internal/gc.
}

// NewNone returns a none Value.
func NewNone() *Value { return &Value{kind: KindNone, gen: -1} }

// NewBool returns a bool Value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b, gen: -1} }

// NewInt returns an int Value.
func NewInt(i int64) *Value { return &Value{kind: KindInt, i: i, gen: -1} }

// NewReal returns a real Value.
func NewReal(r float64) *Value { return &Value{kind: KindReal, r: r, gen: -1} }

// NewName returns a name Value wrapping an already-interned Name.
func NewName(n *Name) *Value { return &Value{kind: KindName, sym: n, gen: -1} }

// NewInstr returns an instruction Value wrapping an already-interned Name
// under which the instruction is registered.
func NewInstr(n *Name) *Value { return &Value{kind: KindInstr, sym: n, gen: -1} }

// NewCode returns a code Value. The Code is taken by reference: callers
// that want the usual "duplicates are returned" semantics should pass
// code.Dup() instead of a list they intend to keep mutating.
func NewCode(c *Code) *Value { return &Value{kind: KindCode, code: c, gen: -1} }

// Kind reports the variant held.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the bool payload; only meaningful when Kind() == KindBool.
func (v *Value) Bool() bool { return v.b }

// Int returns the int payload; only meaningful when Kind() == KindInt.
func (v *Value) Int() int64 { return v.i }

// Real returns the real payload; only meaningful when Kind() == KindReal.
func (v *Value) Real() float64 { return v.r }

// Sym returns the interned name payload for KindName and KindInstr values.
func (v *Value) Sym() *Name { return v.sym }

// Code returns the code-list payload; only meaningful when Kind() == KindCode.
func (v *Value) Code() *Code { return v.code }

// IsAtom reports whether v is not a code list (CODE.ATOM / EXEC.ATOM).
func (v *Value) IsAtom() bool { return v.kind != KindCode }

// Mark sets the GC generation mark on v and, if v is a code value,
// recursively on every child — see spec §4.3.
func (v *Value) Mark(gen int) {
	if v == nil || v.gen == gen {
		return
	}
	v.gen = gen
	if v.kind == KindCode && v.code != nil {
		for _, child := range v.code.items {
			child.Mark(gen)
		}
	}
}

// Gen returns the value's current GC generation mark.
func (v *Value) Gen() int { return v.gen }

// Dup returns a value equivalent to v with fresh Code storage for code
// values (the GC-visible identity of the top-level Value itself is
// unchanged for non-code values, since they're immutable payloads).
func (v *Value) Dup() *Value {
	if v == nil {
		return nil
	}
	if v.kind == KindCode {
		return &Value{kind: KindCode, code: v.code.Dup(), gen: -1}
	}
	return v
}

// String renders v for debugging and for instructions that stringify
// values (e.g. name generation, error messages). It is not a serialization
// format — see internal/pushxml for that.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.kind {
	case KindNone:
		return "NONE"
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return formatReal(v.r)
	case KindName:
		return v.sym.String()
	case KindInstr:
		return v.sym.String()
	case KindCode:
		return v.code.String()
	default:
		return fmt.Sprintf("<bad-kind %d>", v.kind)
	}
}

func formatReal(r float64) string {
	if math.IsInf(r, 1) {
		return "+Inf"
	}
	if math.IsInf(r, -1) {
		return "-Inf"
	}
	if math.IsNaN(r) {
		return "NaN"
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// Equal performs the structural equality defined in spec §3: code lists
// compare elementwise-recursively, names and instructions compare by
// interned identity, and everything else compares by payload.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindReal:
		return a.r == b.r
	case KindName, KindInstr:
		return a.sym == b.sym
	case KindCode:
		return a.code.Equal(b.code)
	default:
		return false
	}
}

// joinStrings is a small helper shared by Code.String.
func joinStrings(parts []string) string {
	return strings.Join(parts, " ")
}
