package main

import (
	"fmt"

	"github.com/npillmayer/microdom/dom/domdbg"
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	var dot bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the element tree of a markup file",
		Long: `Print the element tree built from a markup file.

Examples:
  microdom dump page.html
  microdom dump --xml --dot feed.xml | dot -Tsvg -o feed.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadFile(cmd, args[0])
			if err != nil {
				return err
			}
			if dot {
				return domdbg.ToGraphViz(doc.AsNode(), cmd.OutOrStdout())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), domdbg.Print(doc.AsNode()))
			return err
		},
	}

	cmd.Flags().BoolVar(&dot, "dot", false, "Output a GraphViz digraph")

	return cmd
}
