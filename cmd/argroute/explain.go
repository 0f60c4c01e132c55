package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/argroute/argroute/internal/errors"
	"github.com/argroute/argroute/pkg/pattern"
	"github.com/argroute/argroute/pkg/router"
)

func explainCmd() *cobra.Command {
	var compact bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "explain <pattern>",
		Short: "Parse and validate a route pattern",
		Long: `Parse a route pattern, run semantic validation, and print its structure.

On success the command shows each segment, the compiled matchers, and the
specificity score. On failure it prints every diagnostic found in the
pattern, not just the first one.

Examples:
  argroute explain "git commit --amend,-a? -m {message}"
  argroute explain "cp {*sources} {dest}"
  argroute explain --compact "tail {file} --lines {count:int}?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				errors.DisableColors()
			}
			return runExplain(args[0], compact)
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "One diagnostic per line, no decoration")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runExplain(text string, compact bool) error {
	canonical, err := router.CanonicalizePattern(text)
	if err != nil {
		return err
	}

	p, diags := pattern.Check(canonical)
	if diags.HasErrors() {
		for _, e := range errors.FromDiagnostics(diags) {
			if compact {
				fmt.Println(e.FormatCompact())
			} else {
				fmt.Print(e.Format())
			}
		}
		return fmt.Errorf("%d problem(s) in pattern", len(diags.Parse)+len(diags.Semantic))
	}

	route := router.Compile(p)

	success("pattern is valid")
	fmt.Println()
	info("Canonical:   %s", canonical)
	info("Specificity: %d", route.Specificity)
	info("Min args:    %d", route.MinPositionals)
	if route.HasCatchAll {
		info("Catch-all:   yes")
	}
	fmt.Println()

	fmt.Println("  Segments:")
	for _, seg := range p.Segments {
		fmt.Printf("    %s\n", describeSegment(seg))
	}

	return nil
}

// describeSegment renders one segment for human reading.
func describeSegment(seg *pattern.Segment) string {
	switch seg.Kind {
	case pattern.SegmentLiteral:
		return fmt.Sprintf("literal    %q", seg.Literal)
	case pattern.SegmentEndOfOptions:
		return `separator  "--" (everything after is positional)`
	case pattern.SegmentParameter:
		return "parameter  " + describeParam(seg.Param)
	case pattern.SegmentOption:
		var b strings.Builder
		b.WriteString("option     ")
		b.WriteString(strings.Join(seg.Option.Triggers(), ", "))
		if seg.Option.Value != nil {
			b.WriteString(" + value ")
			b.WriteString(describeParam(seg.Option.Value))
			if seg.Option.Value.Repeated {
				b.WriteString(" (repeatable)")
			}
		} else {
			b.WriteString(" (flag)")
		}
		if seg.Option.Optional {
			b.WriteString(" [optional]")
		}
		if seg.Option.Description != "" {
			b.WriteString(" - " + seg.Option.Description)
		}
		return b.String()
	default:
		return "unknown"
	}
}

func describeParam(p *pattern.ParameterSpec) string {
	var b strings.Builder
	b.WriteString("{")
	if p.CatchAll {
		b.WriteString("*")
	}
	b.WriteString(p.Name)
	if p.Constraint != "" {
		b.WriteString(":" + p.Constraint)
	}
	b.WriteString("}")
	if p.Optional {
		b.WriteString(" [optional]")
	}
	if p.Description != "" {
		b.WriteString(" - " + p.Description)
	}
	return b.String()
}
