package interp

import (
	"math/rand"

	"github.com/pushlang/go-push/internal/gc"
	"github.com/pushlang/go-push/internal/stack"
	"github.com/pushlang/go-push/internal/value"
)

// Clone returns a new interpreter that shares this one's instruction
// registry and name pool and starts with a copy of its configuration map,
// but starts with empty stacks and no bindings and its own garbage
// collector and RNG stream
// (SPEC_FULL.md §10, "push_copy"). internal/gp uses this to build a
// population's individuals from one template interpreter rather than
// re-registering the default instruction set per individual.
//
// Sharing the name pool means Names interned by one clone (e.g. ERCs
// introduced by random code generation) are visible, as interned Names,
// to every other clone from the same template — matching spec §3's name
// identity model, since two clones must agree that the same spelling is
// the same *Name for Equal and registry lookups to behave consistently
// across a population.
func (ip *Interpreter) Clone() *Interpreter {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	clone := &Interpreter{
		Bool:     stack.New[*value.Value](),
		Code:     stack.New[*value.Value](),
		Exec:     stack.New[*value.Value](),
		Int:      stack.New[*value.Value](),
		Name:     stack.New[*value.Value](),
		Real:     stack.New[*value.Value](),
		bindings: make(map[*value.Name]*value.Value),
		config:   cloneConfig(ip.config),
		registry: ip.registry,
		names:    ip.names,
		rng:      rand.New(rand.NewSource(ip.rng.Int63())),
		gc:       gc.New(),
	}
	clone.gc.SetRoots(clone)
	return clone
}

func cloneConfig(src map[string]*value.Value) map[string]*value.Value {
	out := make(map[string]*value.Value, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
