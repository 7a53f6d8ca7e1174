package cmd

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/pushlang/go-push/internal/gp"
	"github.com/pushlang/go-push/pkg/push"
)

var (
	gpPopulationSize int
	gpInitSize       int
	gpGenerations    int
	gpMaxSteps       int
	gpConcurrency    int
	gpTargetInt      int64
)

var gpCmd = &cobra.Command{
	Use:   "gp",
	Short: "Evolve a population of Push programs",
	Long: `gp builds a population of randomly generated Push programs and
advances it through --generations generations of evaluation, roulette-wheel
selection, one-point crossover, and point mutation, then prints the fittest
individual found.

The built-in fitness source scores an individual by how close the top of
its integer stack ends up to --target-int after running, a stand-in for
the kind of host-supplied simulation (e.g. a pole-cart controller) the
reference GP runtime expects a caller to plug in via internal/gp.Config.Fitness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		template := push.New()

		cfg := gp.Config{
			PopulationSize:  gpPopulationSize,
			InitProgramSize: gpInitSize,
			MaxSteps:        gpMaxSteps,
			Concurrency:     gpConcurrency,
			Fitness:         targetIntFitness(gpTargetInt),
		}
		pop := push.NewPopulation(template, cfg)

		ctx := context.Background()
		for g := 0; g < gpGenerations; g++ {
			pop.Generation(ctx)
			if best := pop.Best(); best != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "generation %d: best fitness %g\n", g, best.Fitness)
			}
		}
		pop.Evaluate(ctx)

		best := pop.Best()
		if best == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "no individual was ever evaluated")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "best fitness: %g\nbest program: %s\n", best.Fitness, best.Code.String())
		return nil
	},
}

// targetIntFitness scores an individual by the negative distance of its
// integer stack's top value from target after running, so fitness
// increases (toward 0) as the program's output approaches the target. An
// individual that leaves the integer stack empty scores the worst
// possible finite value rather than being excluded, so selection still
// has something to compare it against.
func targetIntFitness(target int64) gp.FitnessFunc {
	return func(ind *gp.Individual, stepsPerformed int) float64 {
		top, ok := ind.Interp.Int.Peek()
		if !ok {
			return -math.MaxFloat64
		}
		return -math.Abs(float64(top.Int() - target))
	}
}

func init() {
	gpCmd.Flags().IntVar(&gpPopulationSize, "population", 64, "number of individuals")
	gpCmd.Flags().IntVar(&gpInitSize, "init-size", 16, "maximum point count of each individual's initial random program")
	gpCmd.Flags().IntVar(&gpGenerations, "generations", 10, "number of generations to run")
	gpCmd.Flags().IntVar(&gpMaxSteps, "max-steps", 1000, "maximum steps per individual per evaluation")
	gpCmd.Flags().IntVar(&gpConcurrency, "concurrency", 4, "number of interpreters to run concurrently")
	gpCmd.Flags().Int64Var(&gpTargetInt, "target-int", 42, "target value for the built-in integer-distance fitness source")
	rootCmd.AddCommand(gpCmd)
}
