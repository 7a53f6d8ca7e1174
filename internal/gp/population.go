package gp

import (
	"context"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/randgen"
	"github.com/pushlang/go-push/internal/runner"
	"golang.org/x/sync/errgroup"
)

// Config controls one Population's evolutionary parameters (spec §4.6).
type Config struct {
	PopulationSize  int
	InitProgramSize int
	MaxSteps        int
	Concurrency     int
	Fitness         FitnessFunc
	// Selection picks count distinct individuals from pop for breeding.
	// Defaults to RouletteWheelLinear.
	Selection func(pop []*Individual, count int) []*Individual
	// Crossover recombines a and b in place. Defaults to OnePointCrossover.
	Crossover func(a, b *Individual)
	// Mutate mutates ind in place. Defaults to PointMutate.
	Mutate func(ind *Individual)
}

// Population is the evolving set of individuals (spec §4.6's
// "population of interpreter/code/fitness triples"), grounded on
// original_source/gp.c's push_gp_t.
type Population struct {
	cfg    Config
	Template *interp.Interpreter
	Individuals []*Individual
}

// New builds an initial population by cloning template once per
// individual and seeding each with a random program (spec §4.6,
// original_source/gp.c's push_gp_new).
func New(template *interp.Interpreter, cfg Config) *Population {
	if cfg.Selection == nil {
		cfg.Selection = RouletteWheelLinear
	}
	if cfg.Crossover == nil {
		cfg.Crossover = OnePointCrossover
	}
	if cfg.Mutate == nil {
		cfg.Mutate = PointMutate
	}
	pop := &Population{cfg: cfg, Template: template}
	for i := 0; i < cfg.PopulationSize; i++ {
		clone := template.Clone()
		code := randgen.RandomCode(clone, cfg.InitProgramSize)
		pop.Individuals = append(pop.Individuals, newIndividual(clone, code))
	}
	return pop
}

// Evaluate runs every not-yet-evaluated individual to completion (or its
// step budget) concurrently via internal/runner, then scores each with
// cfg.Fitness (spec §4.6, original_source/gp.c's push_gp_eval). Scoring
// itself fans back out through an errgroup.Group: cfg.Fitness may re-run a
// host simulation against the finished interpreter (spec.md's deferred
// pole-cart-style fitness sources are exactly this shape), so it is given
// its own concurrent wait-barrier rather than being folded into the
// sequential bookkeeping loop.
func (p *Population) Evaluate(ctx context.Context) {
	m := runner.New(p.cfg.Concurrency)
	byInterp := make(map[*interp.Interpreter]*Individual, len(p.Individuals))
	for _, ind := range p.Individuals {
		if ind.Evaluated {
			continue
		}
		ind.reset()
		byInterp[ind.Interp] = ind
		_ = m.Submit(ctx, runner.Job{Interp: ind.Interp, MaxSteps: p.cfg.MaxSteps})
	}
	// Manager.Wait returns results in completion order, not submission
	// order, so each result is matched back to its individual by the
	// interpreter pointer its Job carries rather than by slice position.
	results := m.Wait()

	var eg errgroup.Group
	eg.SetLimit(maxInt(p.cfg.Concurrency, 1))
	for _, res := range results {
		res := res
		eg.Go(func() error {
			ind := byInterp[res.Job.Interp]
			ind.Fitness = p.cfg.Fitness(ind, res.StepsPerformed)
			ind.Evaluated = true
			return nil
		})
	}
	_ = eg.Wait()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Generation evaluates the population, then repeatedly selects pairs for
// breeding, crosses and mutates them, until the selection function can no
// longer find a fresh pair (spec §4.6, original_source/gp.c's
// push_gp_generation).
func (p *Population) Generation(ctx context.Context) {
	p.Evaluate(ctx)
	for {
		pair := p.cfg.Selection(p.Individuals, 2)
		if len(pair) < 2 {
			return
		}
		p.cfg.Crossover(pair[0], pair[1])
		p.cfg.Mutate(pair[0])
		p.cfg.Mutate(pair[1])
		pair[0].Evaluated = false
		pair[1].Evaluated = false
	}
}

// Best returns the highest-fitness evaluated individual, or nil if none
// have been evaluated yet (spec §4.6, original_source/gp.c's
// push_gp_best_program).
func (p *Population) Best() *Individual {
	var best *Individual
	for _, ind := range p.Individuals {
		if !ind.Evaluated {
			continue
		}
		if best == nil || ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}
