// Command repsim runs representational similarity analysis pipelines
// from the shell: estimate condition patterns from a study manifest,
// build and compare RDMs, and emit clustering / embedding plot payloads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "repsim",
		Short: "Representational similarity analysis over fMRI response patterns",
		Long: `repsim estimates per-condition response patterns from BOLD runs,
condenses them into representational dissimilarity matrices (RDMs),
compares neural RDMs against model RDMs with rank correlation, and
emits clustering and embedding figures as JSON plot payloads.

Environment overrides use the REPSIM_ prefix (see 'repsim run --help');
a .env file next to the working directory is loaded when present.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newRDMCmd(),
		newCompareCmd(),
		newMDSCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repsim version %s\n", version)
		},
	}
}
