package router

import (
	"github.com/argroute/argroute/pkg/pattern"
)

// Specificity weights. Relative ordering matters more than the exact
// constants: an exact literal command must always be tried before a more
// generic parameterized or catch-all route that could also match the same
// input, so broad routes never shadow narrower ones.
const (
	scoreLiteral     = 15
	scoreOption      = 10
	scoreOptionValue = 5
	scoreParameter   = 2
	scoreCatchAll    = -20
)

// Compile lowers a validated pattern AST into its immutable runtime matcher
// and computes the route's specificity.
//
// Compile is total over validated input: Validate must already have accepted
// the pattern. Feeding it an invalid shape produces a matcher with undefined
// behavior, not an error.
func Compile(p *pattern.Pattern) *CompiledRoute {
	route := &CompiledRoute{}
	score := 0
	afterSeparator := false

	for _, seg := range p.Segments {
		switch seg.Kind {
		case pattern.SegmentLiteral:
			route.Positionals = append(route.Positionals, PositionalMatcher{
				Literal:        seg.Literal,
				IsLiteral:      true,
				AfterSeparator: afterSeparator,
			})
			route.MinPositionals++
			score += scoreLiteral

		case pattern.SegmentEndOfOptions:
			route.Positionals = append(route.Positionals, PositionalMatcher{
				Literal:   "--",
				IsLiteral: true,
				Separator: true,
			})
			route.MinPositionals++
			afterSeparator = true
			score += scoreLiteral

		case pattern.SegmentParameter:
			param := seg.Param
			route.Positionals = append(route.Positionals, PositionalMatcher{
				Name:           param.Name,
				CatchAll:       param.CatchAll,
				Optional:       param.Optional,
				Constraint:     param.Constraint,
				Description:    param.Description,
				AfterSeparator: afterSeparator,
			})
			if param.CatchAll {
				route.HasCatchAll = true
				score += scoreCatchAll
			} else {
				score += scoreParameter
				if !param.Optional {
					route.MinPositionals++
				}
			}

		case pattern.SegmentOption:
			opt := seg.Option
			m := OptionMatcher{
				Triggers:    opt.Triggers(),
				Name:        seg.BindingName(),
				Optional:    opt.Optional,
				Description: opt.Description,
			}
			if opt.Value != nil {
				m.ExpectsValue = true
				m.Optional = opt.Optional || opt.Value.Optional
				m.Repeated = opt.Value.Repeated
				m.Constraint = opt.Value.Constraint
				if m.Description == "" {
					m.Description = opt.Value.Description
				}
				score += scoreOptionValue
			} else {
				// Bare flags are inherently optional: absence means unset,
				// never a failed candidate.
				m.Optional = true
			}
			route.Options = append(route.Options, m)
			score += scoreOption
		}
	}

	route.Specificity = score
	return route
}
