package interp

import "github.com/pushlang/go-push/internal/value"

// Define associates name with val, overwriting any existing binding
// (spec §4.1). Any Value is acceptable for the core.
func (ip *Interpreter) Define(name *value.Name, val *value.Value) {
	ip.bindings[name] = val
	ip.gc.Track(val)
}

// Undef removes name's association, if any.
func (ip *Interpreter) Undef(name *value.Name) {
	delete(ip.bindings, name)
}

// LookupBinding returns the Value bound to name, or nil if unbound.
func (ip *Interpreter) LookupBinding(name *value.Name) *value.Value {
	return ip.bindings[name]
}

// IsBound reports whether name currently has a binding.
func (ip *Interpreter) IsBound(name *value.Name) bool {
	_, ok := ip.bindings[name]
	return ok
}

// BoundNames returns every currently-bound name, in unspecified order —
// used by RANDBOUNDNAME-style random generation.
func (ip *Interpreter) BoundNames() []*value.Name {
	out := make([]*value.Name, 0, len(ip.bindings))
	for n := range ip.bindings {
		out = append(out, n)
	}
	return out
}
