package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swantron/langdemo/internal/demo"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	rootCmd = &cobra.Command{
		Use:   "langdemo",
		Short: "Walk through basic procedural language constructs",
		Long: `Langdemo runs a fixed sequence of small demonstration routines covering
variables, arithmetic, if/else, switch, loops, arrays, pointers, structs,
and nested branching, printing the result of each to stdout.`,
		Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	demo.Run(cmd.OutOrStdout())
	return nil
}
