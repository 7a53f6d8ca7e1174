package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pushlang/go-push/internal/perr"
	"github.com/pushlang/go-push/pkg/push"
)

var deserializeSteps int

var deserializeCmd = &cobra.Command{
	Use:   "deserialize [state-file]",
	Short: "Load a serialized state and continue running it",
	Long: `deserialize loads an XML state document (from a file, or stdin if none
is given) into a fresh interpreter with the full default instruction set
registered, then optionally runs it for --steps steps and prints the
resulting stacks. Unknown instruction references in the document are
skipped with a warning rather than failing the load.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}

		ip := push.New()
		if err := ip.Load(r); err != nil {
			if pe, ok := err.(*perr.ParseError); ok {
				exitWithError("%s", pe.Format())
			} else {
				exitWithError("%s", err)
			}
		}

		if deserializeSteps > 0 {
			steps := ip.Run(deserializeSteps)
			fmt.Fprintf(cmd.OutOrStdout(), "ran %d step(s)\n", steps)
		}
		printStacks(cmd, ip)
		return nil
	},
}

func init() {
	deserializeCmd.Flags().IntVar(&deserializeSteps, "steps", 0, "run the loaded state this many steps before printing stacks")
	rootCmd.AddCommand(deserializeCmd)
}
