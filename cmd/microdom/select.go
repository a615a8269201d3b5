package main

import (
	"fmt"

	"github.com/npillmayer/microdom/dom/domdbg"
	"github.com/npillmayer/microdom/dom/selector"
	"github.com/npillmayer/microdom/dom/style"
	"github.com/spf13/cobra"
)

func selectCmd() *cobra.Command {
	var count bool
	var property string

	cmd := &cobra.Command{
		Use:   "select <selector> <file>",
		Short: "Print the subtrees matching a CSS selector",
		Long: `Print every subtree of a markup file matching a CSS selector,
in document order. Tag names and attribute keys match case-insensitively.

Examples:
  microdom select 'a[href]' page.html
  microdom select --count 'item > title' --xml feed.xml
  microdom select --style color 'p[style]' page.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selector.Compile(args[0])
			if err != nil {
				return err
			}
			doc, err := loadFile(cmd, args[1])
			if err != nil {
				return err
			}
			matches := sel.MatchAll(doc.AsNode())
			out := cmd.OutOrStdout()
			if count {
				_, err = fmt.Fprintln(out, len(matches))
				return err
			}
			for _, n := range matches {
				if property != "" {
					v, _ := style.Property(n, property)
					if _, err = fmt.Fprintf(out, "%s\t%s\n", n, v); err != nil {
						return err
					}
					continue
				}
				if _, err = fmt.Fprint(out, domdbg.Print(n)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&count, "count", "c", false, "Print only the number of matches")
	cmd.Flags().StringVar(&property, "style", "", "Print the value of an inline style property of each match")

	return cmd
}
