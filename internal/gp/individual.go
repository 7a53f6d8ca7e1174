// Package gp implements the genetic-programming driver of spec §4.6: a
// population of interpreter/code/fitness triples, evaluated concurrently
// via internal/runner, advanced generation by generation through roulette-
// wheel selection, one-point crossover, and point mutation. Grounded on
// original_source/gp.c's push_gp_t/push_gp_prog_t model.
package gp

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
)

// FitnessFunc scores an individual after it has run to completion or
// exhausted its step budget; higher is better (spec §4.6).
type FitnessFunc func(ind *Individual, stepsPerformed int) float64

// Individual is one population member: an interpreter, its current program
// (replaced by crossover and mutation), and its most recently computed fitness
// (original_source/gp.c's push_gp_prog_t).
type Individual struct {
	Interp    *interp.Interpreter
	Code      *value.Value
	Fitness   float64
	Evaluated bool
}

// newIndividual pairs an interpreter with its program (spec §4.6,
// original_source/gp.c's push_gp_init_program). It neither clones the
// interpreter nor generates the program; the caller supplies both.
func newIndividual(template *interp.Interpreter, code *value.Value) *Individual {
	return &Individual{Interp: template, Code: code}
}

// reset flushes the individual's interpreter and re-seeds its stacks with
// its own program, ready for another Run (original_source/gp.c's
// push_gp_run_program).
func (ind *Individual) reset() {
	ind.Interp.Flush()
	ind.Interp.Code.Push(ind.Code)
	ind.Interp.Exec.Push(ind.Code)
}
