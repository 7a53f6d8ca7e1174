package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "push",
	Short: "Push3 interpreter and genetic-programming runner",
	Long: `push is a Go implementation of the Push3 stack-based programming
language and its genetic-programming evolutionary runtime.

It provides:
  - Six typed stacks (boolean, code, exec, integer, name, real) and the
    full Push3 instruction set
  - A step-bounded execution engine with interrupt and step-hook support
  - XML state serialization compatible with the reference implementation
  - A concurrent genetic-programming population runner`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
