// Command microdom parses markup files into microdom trees and prints them,
// for inspecting what the builder makes of a given input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "microdom",
		Short: "Build and inspect microdom element trees",
		Long: `microdom reads HTML or XML markup and builds an element tree from it.

The tree can be printed as indented text or as a GraphViz digraph, and
queried with CSS selectors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("xml", false, "Tokenize input as XML instead of HTML")
	rootCmd.AddCommand(
		dumpCmd(),
		selectCmd(),
		versionCmd(),
	)
	return rootCmd
}
