package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pushlang/go-push/internal/perr"
	"github.com/pushlang/go-push/pkg/push"
)

var runMaxSteps int

var runCmd = &cobra.Command{
	Use:   "run [program-file]",
	Short: "Run a Push program to completion or a step budget",
	Long: `run parses a Push program (a parenthesized textual code list) from a
file, or from stdin if no file is given, seeds it onto the code and exec
stacks of a fresh interpreter with the full default instruction set
registered, drives it for up to --max-steps steps, and prints the
resulting stacks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSourceArg(args)
		if err != nil {
			return err
		}

		ip := push.New()
		if err := ip.LoadProgram(src); err != nil {
			if pe, ok := err.(*perr.ParseError); ok {
				exitWithError("%s", pe.Format())
			} else {
				exitWithError("%s", err)
			}
		}

		steps := ip.Run(runMaxSteps)
		fmt.Fprintf(cmd.OutOrStdout(), "ran %d step(s)\n", steps)
		printStacks(cmd, ip)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 1000, "maximum number of steps to execute")
	rootCmd.AddCommand(runCmd)
}

func readSourceArg(args []string) (string, error) {
	if len(args) == 0 {
		b, err := readAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading program from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(b), nil
}

func printStacks(cmd *cobra.Command, ip *push.Interpreter) {
	core := ip.Core()

	type namedStack struct {
		name  string
		items func() []string
	}
	stacks := []namedStack{
		{"exec", func() []string { return stringify(core.Exec.Items()) }},
		{"code", func() []string { return stringify(core.Code.Items()) }},
		{"boolean", func() []string { return stringify(core.Bool.Items()) }},
		{"integer", func() []string { return stringify(core.Int.Items()) }},
		{"real", func() []string { return stringify(core.Real.Items()) }},
		{"name", func() []string { return stringify(core.Name.Items()) }},
	}
	for _, s := range stacks {
		items := s.items()
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", s.name, items)
	}
}
