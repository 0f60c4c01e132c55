package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/argroute/argroute/internal/errors"
	"github.com/argroute/argroute/pkg/router"
)

func matchCmd() *cobra.Command {
	var routes []string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "match --route <pattern> [--route <pattern>...] -- <argv...>",
		Short: "Resolve an argv against a set of route patterns",
		Long: `Register one or more route patterns, resolve the argument vector given
after "--", and print the winning pattern and its bindings.

Patterns are tried most specific first, exactly as a library embedder
would see it.

Examples:
  argroute match --route "status" --route "add {a:int} {b:int}" -- add 2 3
  argroute match --route "git commit -m {message} --amend?" -- git commit --amend -m fix
  argroute match --route "echo {*words}" -- echo hello cli world`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				errors.DisableColors()
			}
			if len(routes) == 0 {
				return fmt.Errorf("at least one --route pattern is required")
			}
			return runMatch(routes, args)
		},
	}

	cmd.Flags().StringArrayVarP(&routes, "route", "r", nil, "Route pattern to register (repeatable)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runMatch(routes []string, argv []string) error {
	c := router.NewEndpointCollection()

	for _, r := range routes {
		if _, err := c.Register(r, nil); err != nil {
			errorMsg("invalid pattern %q", r)
			for _, e := range errors.FromError(err) {
				fmt.Print(e.Format())
			}
			return fmt.Errorf("registration failed")
		}
	}

	result, err := router.NewResolver(c).Resolve(argv)
	if err != nil {
		return err
	}

	if !result.Matched {
		warn("no route matched (%d candidate(s) tried)", result.Candidates)
		info("argv: %s", strings.Join(argv, " "))
		return fmt.Errorf("unmatched")
	}

	success("matched: %s", result.Endpoint.Pattern)
	info("candidates tried: %d", result.Candidates)

	if len(result.Bindings) == 0 {
		return nil
	}

	names := make([]string, 0, len(result.Bindings))
	for name := range result.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Println("  Bindings:")
	for _, name := range names {
		b := result.Bindings[name]
		switch {
		case b.IsFlag:
			fmt.Printf("    %-12s (flag set)\n", name)
		case len(b.Values) > 1:
			fmt.Printf("    %-12s %q\n", name, b.Values)
		default:
			fmt.Printf("    %-12s %q\n", name, b.Value())
		}
	}

	return nil
}
