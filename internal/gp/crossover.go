package gp

import (
	"github.com/pushlang/go-push/internal/value"
)

// OnePointCrossover swaps one randomly chosen subtree of a's program with
// one of b's, in place (spec §4.6, grounded on original_source/gp.c's
// push_gp_crossover_one_point). value.Replace is immutable — it allocates a
// fresh path of ancestor nodes from the root down to the swap point rather
// than mutating a.Code/b.Code in place — so the GC handoff has to cover
// every node in the old and new trees, not just their roots: walkValues
// untracks the whole subtree leaving each interpreter's collector and
// (re-)tracks every node of the resulting tree with its new owner. Track is
// idempotent, so re-tracking untouched shared ancestors is harmless; it's
// the only way the brand-new path nodes value.Replace allocates (which
// were never Track-ed by anyone) end up owned by a collector at all.
func OnePointCrossover(a, b *Individual) {
	sizeA := value.Size(a.Code)
	sizeB := value.Size(b.Code)
	if sizeA == 0 || sizeB == 0 {
		return
	}

	pa := a.Interp.Rand().Intn(sizeA)
	pb := b.Interp.Rand().Intn(sizeB)

	subA := value.Extract(a.Code, pa)
	subB := value.Extract(b.Code, pb)

	newA := value.Replace(a.Code, pa, subB)
	newB := value.Replace(b.Code, pb, subA)

	walkValues(subA, a.Interp.GC().Untrack)
	walkValues(subB, b.Interp.GC().Untrack)

	a.Code = newA
	b.Code = newB

	walkValues(newA, a.Interp.GC().Track)
	walkValues(newB, b.Interp.GC().Track)
}

// walkValues visits v and, recursively, every value nested inside its code
// children, in no particular order. Used to move a whole subtree between
// two interpreters' collectors during crossover and mutation, since
// gc.GC.Track/Untrack only enroll or detach the single pointer given them.
func walkValues(v *value.Value, visit func(*value.Value)) {
	if v == nil {
		return
	}
	visit(v)
	if v.Kind() == value.KindCode {
		for _, child := range v.Code().Items() {
			walkValues(child, visit)
		}
	}
}
