package gp

import (
	"github.com/pushlang/go-push/internal/randgen"
	"github.com/pushlang/go-push/internal/value"
)

// MutationMaxPoints bounds the size of the random replacement subtree
// PointMutate grafts in: a small fixed budget (rather than the population's
// full MAX-POINTS-IN-RANDOM-EXPRESSIONS) so mutation perturbs a program
// instead of regrowing a large chunk of it.
const MutationMaxPoints = 4

// PointMutate replaces one randomly chosen point of ind's program with a
// freshly generated random subtree (spec §4.6's mutation operator).
// original_source/gp.c leaves push_gp_mutation_func as an unimplemented
// stub; this is this package's own resolution of that open question,
// following the same "pick a point, replace it" shape as one-point
// crossover, but drawing the replacement from the individual's own
// interpreter instead of from a second program.
func PointMutate(ind *Individual) {
	size := value.Size(ind.Code)
	if size == 0 {
		return
	}

	p := ind.Interp.Rand().Intn(size)
	old := value.Extract(ind.Code, p)
	repl := randgen.RandomCode(ind.Interp, MutationMaxPoints)

	newCode := value.Replace(ind.Code, p, repl)

	walkValues(old, ind.Interp.GC().Untrack)
	ind.Code = newCode
	walkValues(newCode, ind.Interp.GC().Track)
}
