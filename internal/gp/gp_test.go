package gp

import (
	"context"
	"testing"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
	"github.com/stretchr/testify/require"
)

func constFitness(score float64) FitnessFunc {
	return func(ind *Individual, stepsPerformed int) float64 {
		return score
	}
}

func newTemplate() *interp.Interpreter {
	ip := interp.New()
	ip.Register("INTEGER.+", func(ip *interp.Interpreter, _ any) {
		b, ok1 := ip.Int.Pop()
		a, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			return
		}
		ip.Int.Push(ip.NewInt(a.Int() + b.Int()))
	}, nil)
	return ip
}

func TestNewPopulationSeedsDistinctClones(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 5, InitProgramSize: 10})
	require.Len(t, pop.Individuals, 5)

	seen := make(map[*interp.Interpreter]bool)
	for _, ind := range pop.Individuals {
		require.NotNil(t, ind.Code)
		require.False(t, seen[ind.Interp], "each individual must get its own interpreter clone")
		seen[ind.Interp] = true
		require.False(t, ind.Evaluated)
	}
}

func TestEvaluateScoresEveryIndividualExactlyOnce(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{
		PopulationSize:  4,
		InitProgramSize: 1,
		MaxSteps:        10,
		Concurrency:     2,
		Fitness:         constFitness(3.5),
	})

	pop.Evaluate(context.Background())
	for _, ind := range pop.Individuals {
		require.True(t, ind.Evaluated)
		require.Equal(t, 3.5, ind.Fitness)
	}

	// A second Evaluate must not re-score already-evaluated individuals;
	// flip a sentinel fitness function to make any re-run observable.
	pop.cfg.Fitness = constFitness(-1)
	pop.Evaluate(context.Background())
	for _, ind := range pop.Individuals {
		require.Equal(t, 3.5, ind.Fitness)
	}
}

func TestBestReturnsHighestEvaluatedFitness(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 3, InitProgramSize: 1})
	pop.Individuals[0].Evaluated = true
	pop.Individuals[0].Fitness = 1
	pop.Individuals[1].Evaluated = true
	pop.Individuals[1].Fitness = 9
	pop.Individuals[2].Evaluated = false
	pop.Individuals[2].Fitness = 100

	best := pop.Best()
	require.Same(t, pop.Individuals[1], best)
}

func TestBestReturnsNilWhenNothingEvaluated(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 2, InitProgramSize: 1})
	require.Nil(t, pop.Best())
}

func TestGenerationEvaluatesAndBreedsUntilSelectionExhausted(t *testing.T) {
	template := newTemplate()
	var crossed, mutated int
	pop := New(template, Config{
		PopulationSize:  4,
		InitProgramSize: 1,
		MaxSteps:        5,
		Concurrency:     2,
		Fitness:         constFitness(1),
		Selection: func(pop []*Individual, count int) []*Individual {
			if crossed >= 1 {
				return nil
			}
			return RouletteWheelLinear(pop, count)
		},
		Crossover: func(a, b *Individual) { crossed++ },
		Mutate:    func(ind *Individual) { mutated++ },
	})

	pop.Generation(context.Background())
	require.Equal(t, 1, crossed)
	require.Equal(t, 2, mutated)
	evaluated := 0
	for _, ind := range pop.Individuals {
		if ind.Evaluated {
			evaluated++
		}
	}
	require.Equal(t, 2, evaluated, "individuals not touched by breeding stay evaluated; the bred pair is marked for re-evaluation")
}

func TestRouletteWheelLinearReturnsNilWhenNotEnoughEvaluated(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 1, InitProgramSize: 1})
	require.Nil(t, RouletteWheelLinear(pop.Individuals, 2))
}

func TestRouletteWheelLinearNeverPicksTheSameIndividualTwice(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 5, InitProgramSize: 1})
	for _, ind := range pop.Individuals {
		ind.Evaluated = true
		ind.Fitness = 1
	}

	for i := 0; i < 20; i++ {
		picked := RouletteWheelLinear(pop.Individuals, 2)
		require.Len(t, picked, 2)
		require.NotSame(t, picked[0], picked[1])
	}
}

func TestRouletteWheelRankedIgnoresFitnessMagnitude(t *testing.T) {
	template := newTemplate()
	pop := New(template, Config{PopulationSize: 3, InitProgramSize: 1})
	pop.Individuals[0].Evaluated = true
	pop.Individuals[0].Fitness = 1_000_000
	pop.Individuals[1].Evaluated = true
	pop.Individuals[1].Fitness = 1_000_001
	pop.Individuals[2].Evaluated = true
	pop.Individuals[2].Fitness = 1_000_002

	picked := RouletteWheelRanked(pop.Individuals, 3)
	require.Len(t, picked, 3)
}

func TestOnePointCrossoverProducesWellFormedTreesAndRetracksGC(t *testing.T) {
	ipA := interp.New()
	ipB := interp.New()

	codeA := value.CodeOf(ipA.NewInt(1), ipA.NewInt(2), ipA.NewInt(3))
	codeB := value.CodeOf(ipB.NewInt(10), ipB.NewInt(20))
	a := &Individual{Interp: ipA, Code: ipA.NewCode(codeA)}
	b := &Individual{Interp: ipB, Code: ipB.NewCode(codeB)}
	ipA.GC().Track(a.Code)
	ipB.GC().Track(b.Code)

	sizeABefore := value.Size(a.Code)
	sizeBBefore := value.Size(b.Code)

	OnePointCrossover(a, b)
	tracedA, tracedB := ipA.GC().Len(), ipB.GC().Len()

	require.NotNil(t, a.Code)
	require.NotNil(t, b.Code)
	require.Equal(t, sizeABefore+sizeBBefore, value.Size(a.Code)+value.Size(b.Code))

	// Every node reachable from the new root must now be tracked by its
	// new owning collector, including freshly allocated ancestor nodes:
	// tracking them all again adds nothing to either collector.
	walkValues(a.Code, func(v *value.Value) {
		ipA.GC().Track(v)
	})
	walkValues(b.Code, func(v *value.Value) {
		ipB.GC().Track(v)
	})
	require.Equal(t, tracedA, ipA.GC().Len())
	require.Equal(t, tracedB, ipB.GC().Len())
}

func TestOnePointCrossoverNoopWhenEitherProgramIsNil(t *testing.T) {
	ipA := interp.New()
	ipB := interp.New()
	a := &Individual{Interp: ipA, Code: nil}
	b := &Individual{Interp: ipB, Code: ipB.NewCode(value.CodeOf(ipB.NewInt(1)))}

	before := b.Code
	OnePointCrossover(a, b)
	require.Nil(t, a.Code)
	require.Same(t, before, b.Code)
}

func TestPointMutateChangesSizeBoundedlyAndStaysWellFormed(t *testing.T) {
	ip := interp.New()
	code := value.CodeOf(ip.NewInt(1), ip.NewInt(2))
	ind := &Individual{Interp: ip, Code: ip.NewCode(code)}
	ip.GC().Track(ind.Code)
	before := value.Size(ind.Code)

	PointMutate(ind)

	require.NotNil(t, ind.Code)
	require.True(t, value.Size(ind.Code) >= 1)
	require.LessOrEqual(t, value.Size(ind.Code), before+MutationMaxPoints)
}

func TestPointMutateOnNilProgramIsNoop(t *testing.T) {
	ip := interp.New()
	ind := &Individual{Interp: ip, Code: nil}

	PointMutate(ind)
	require.Nil(t, ind.Code)
}
