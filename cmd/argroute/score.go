package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/argroute/argroute/pkg/pattern"
	"github.com/argroute/argroute/pkg/router"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <pattern> [<pattern>...]",
		Short: "Compare specificity across route patterns",
		Long: `Compile the given patterns and print them in matching order: the order
a resolver would try them in, most specific first.

Use this to check which of two overlapping patterns wins.

Example:
  argroute score "git commit -m {message}" "git {*rest}" "git commit"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args)
		},
	}

	return cmd
}

func runScore(patterns []string) error {
	c := router.NewEndpointCollection()

	for _, text := range patterns {
		if _, err := c.Register(text, nil); err != nil {
			if diags, ok := err.(*pattern.Diagnostics); ok {
				return fmt.Errorf("invalid pattern %q: %s", text, diags.Error())
			}
			return fmt.Errorf("invalid pattern %q: %w", text, err)
		}
	}

	fmt.Println()
	fmt.Println("  Matching order (most specific first):")
	fmt.Println()
	for i, e := range c.Snapshot() {
		d := e.Describe()
		fmt.Printf("  %2d. %-50s specificity %4d", i+1, d.Pattern, d.Specificity)
		if d.Order != 0 {
			fmt.Printf("  order %d", d.Order)
		}
		fmt.Println()
	}
	fmt.Println()

	return nil
}
