package value

// Code is an ordered sequence of Values — the building block of both code
// trees and the exec/code stacks' "push a list" operations. It is grounded
// on push_code_t in original_source/code.c (there a GQueue; here a slice,
// since Go slices already give O(1) amortized append and the queue never
// needs the doubly-linked splice original_source/code.c leans on for
// push_code_concat's destructive merge).
type Code struct {
	items []*Value
}

// NewEmptyCode returns an empty code list.
func NewEmptyCode() *Code { return &Code{} }

// CodeOf returns a code list containing exactly the given values, in order.
func CodeOf(vs ...*Value) *Code {
	c := &Code{items: make([]*Value, len(vs))}
	copy(c.items, vs)
	return c
}

// Len returns the number of direct children (spec §3: "length").
func (c *Code) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items exposes the direct children by reference. Callers must not mutate
// the returned slice; use the Code's own mutators instead.
func (c *Code) Items() []*Value {
	if c == nil {
		return nil
	}
	return c.items
}

// Append adds val as the new last child.
func (c *Code) Append(val *Value) {
	if val == nil {
		return
	}
	c.items = append(c.items, val)
}

// Prepend adds val as the new first child.
func (c *Code) Prepend(val *Value) {
	if val == nil {
		return
	}
	c.items = append([]*Value{val}, c.items...)
}

// InsertAt inserts val at direct-child index n, clamped to [0, Len()].
func (c *Code) InsertAt(n int, val *Value) {
	if val == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	c.items = append(c.items, nil)
	copy(c.items[n+1:], c.items[n:])
	c.items[n] = val
}

// Pop removes and returns the first (head) child, or nil if empty.
func (c *Code) Pop() *Value {
	if c.Len() == 0 {
		return nil
	}
	v := c.items[0]
	c.items = c.items[1:]
	return v
}

// PopNth removes and returns the child at direct-child index n (0 = head),
// or nil if n is out of range.
func (c *Code) PopNth(n int) *Value {
	if n < 0 || n >= len(c.items) {
		return nil
	}
	v := c.items[n]
	c.items = append(c.items[:n:n], c.items[n+1:]...)
	return v
}

// Peek returns the first (head) child without removing it, or nil if empty.
func (c *Code) Peek() *Value {
	if c.Len() == 0 {
		return nil
	}
	return c.items[0]
}

// PeekNth returns the child at direct-child index n without removing it,
// or nil if out of range.
func (c *Code) PeekNth(n int) *Value {
	if n < 0 || n >= len(c.items) {
		return nil
	}
	return c.items[n]
}

// Flush empties the code list in place.
func (c *Code) Flush() {
	c.items = nil
}

// Dup returns a new Code with the same children by reference — "code lists
// returned to callers are duplicates" (spec §3): the outer list is a fresh
// allocation, but leaf/child Values are shared (they're immutable anyway).
func (c *Code) Dup() *Code {
	if c == nil {
		return NewEmptyCode()
	}
	cp := &Code{items: make([]*Value, len(c.items))}
	copy(cp.items, c.items)
	return cp
}

// Equal is the structural, elementwise-recursive equality from spec §3.
func (c *Code) Equal(o *Code) bool {
	if c == nil || o == nil {
		return c.Len() == 0 && o.Len() == 0
	}
	if len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if !Equal(c.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

// Concat returns a new code list whose children are a's followed by b's.
// Neither input is mutated (spec §4.2).
func Concat(a, b *Code) *Code {
	out := a.Dup()
	out.items = append(out.items, b.Items()...)
	return out
}

// IndexOf returns the direct-child index of the first value structurally
// equal to needle, or -1 if none matches. Grounded on push_code_index in
// original_source/code.c, which searches direct children only (not deep).
func (c *Code) IndexOf(needle *Value) int {
	for i, v := range c.Items() {
		if Equal(v, needle) {
			return i
		}
	}
	return -1
}

// Member reports whether needle structurally equals any direct child.
func (c *Code) Member(needle *Value) bool {
	return c.IndexOf(needle) >= 0
}

// PushOnto pushes every child of c onto dst in reverse order, so that the
// leftmost child ends up on top — spec §4.1's Code dispatch rule in
// internal/interp's Step uses exactly this.
// dst is any type exposing Push(*Value); see internal/stack.
func (c *Code) PushOnto(dst interface{ Push(*Value) }) {
	items := c.Items()
	for i := len(items) - 1; i >= 0; i-- {
		dst.Push(items[i])
	}
}

// String renders the code list in its conventional "( a b c )" form.
func (c *Code) String() string {
	if c == nil || len(c.items) == 0 {
		return "()"
	}
	parts := make([]string, len(c.items))
	for i, v := range c.items {
		parts[i] = v.String()
	}
	return "(" + joinStrings(parts) + ")"
}
