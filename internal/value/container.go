package value

// Container returns the smallest strict sub-code-list of haystack that
// contains needle anywhere (as a child at any depth), or nil if there is
// no such sub-list. Search is depth-first, left-to-right; the first match
// at the shallowest level wins (spec §4.2), grounded on
// push_code_container/push_code_container_find in original_source/code.c.
func Container(haystack *Code, needle *Value) *Code {
	found, _ := containerSearch(haystack, needle)
	return found
}

// containerSearch walks haystack's direct children left to right. If a
// child structurally equals needle, haystack itself is the container and
// the search stops (matched=true, container=haystack). Otherwise, if a
// child is itself code, it is searched recursively; a match there yields
// that child's container directly (haystack can never be "smaller" once a
// deeper match exists).
func containerSearch(haystack *Code, needle *Value) (container *Code, matched bool) {
	if haystack == nil {
		return nil, false
	}
	for _, child := range haystack.Items() {
		if Equal(child, needle) {
			return haystack, true
		}
		if child.Kind() == KindCode {
			if sub, ok := containerSearch(child.Code(), needle); ok {
				return sub, true
			}
		}
	}
	return nil, false
}
