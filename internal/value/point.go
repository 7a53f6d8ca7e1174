package value

// Size returns the point count of v: 1 for any leaf, or 1 + the sum of its
// children's point counts for a code node (spec §3, §4.2). This is the
// value-level count used by point addressing, where "point 0 is the tree
// itself" — so a code value contributes its own point in addition to its
// children's.
func Size(v *Value) int {
	if v == nil {
		return 0
	}
	if v.Kind() != KindCode {
		return 1
	}
	return 1 + CodeSize(v.Code())
}

// CodeSize returns the point count of a bare code list's contents: the sum
// of Size(child) over its direct children, with no extra point for the
// list itself. This is the list-level size spec §4.2's CONCAT invariant
// ("size(concat(a,b)) = size(a)+size(b)") refers to — concatenating two
// lists merges their children without introducing a new container point,
// so list-level sizes are purely additive. Grounded on push_code_size in
// original_source/code.c, which sums over direct children the same way.
func CodeSize(c *Code) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, child := range c.Items() {
		total += Size(child)
	}
	return total
}

// NormalizePoint reduces an out-of-range point index into the valid range
// [0, Size(v)) so Extract/Replace are total (spec §4.2). Note Size(v)
// already counts v's own point (point 0 = the tree itself) plus one point
// per descendant, i.e. it is CodeSize(v.Code())+1 for a code value — the
// "+1" some phrasings of this rule apply separately is already folded in.
func NormalizePoint(v *Value, p int) int {
	m := Size(v)
	if m <= 0 {
		return 0
	}
	p %= m
	if p < 0 {
		p += m
	}
	return p
}

// Extract returns the subtree of v addressed by depth-first preorder point
// p (point 0 is v itself). p must already be in [0, Size(v)); use
// NormalizePoint first if it might not be.
func Extract(v *Value, p int) *Value {
	out, _ := extract(v, p)
	return out
}

// extract returns (found value, remaining point budget after consuming v's
// subtree). When found is non-nil, the remaining budget is meaningless to
// the caller; it matters only while still searching sibling subtrees.
func extract(v *Value, p int) (*Value, int) {
	if p == 0 {
		return v, -1
	}
	p--
	if v == nil || v.Kind() != KindCode {
		return nil, p
	}
	for _, child := range v.Code().Items() {
		var found *Value
		found, p = extract(child, p)
		if found != nil {
			return found, -1
		}
		if p < 0 {
			// Ran out of budget inside this child without a match;
			// nothing left to search.
			return nil, p
		}
	}
	return nil, p
}

// Replace returns a new tree equal to v with the point at p replaced by
// repl. p must already be in [0, Size(v)).
func Replace(v *Value, p int, repl *Value) *Value {
	out, _ := replace(v, p, repl)
	return out
}

func replace(v *Value, p int, repl *Value) (*Value, int) {
	if p == 0 {
		return repl, -1
	}
	p--
	if v == nil || v.Kind() != KindCode {
		return v, p
	}
	items := v.Code().Items()
	newItems := make([]*Value, len(items))
	copy(newItems, items)
	replaced := false
	for i, child := range items {
		if replaced {
			break
		}
		var newChild *Value
		newChild, p = replace(child, p, repl)
		newItems[i] = newChild
		if p == -1 {
			replaced = true
			break
		}
		if p < 0 {
			break
		}
	}
	if !replaced {
		return v, p
	}
	return NewCode(&Code{items: newItems}), -1
}
