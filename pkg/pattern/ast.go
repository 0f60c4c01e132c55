package pattern

import "fmt"

// SegmentKind discriminates the closed set of AST segment variants. New
// variants must be handled everywhere a SegmentKind is switched on.
type SegmentKind int

const (
	// SegmentLiteral is a fixed word required verbatim at its position.
	SegmentLiteral SegmentKind = iota

	// SegmentParameter is a named positional placeholder.
	SegmentParameter

	// SegmentOption is a --long/-short switch, optionally bound to a value.
	SegmentOption

	// SegmentEndOfOptions is a bare "--": everything after it is positional.
	SegmentEndOfOptions
)

// String returns a human-readable name for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentParameter:
		return "parameter"
	case SegmentOption:
		return "option"
	case SegmentEndOfOptions:
		return "end-of-options"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// ParameterSpec describes a named placeholder, either positional or bound to
// an option as its value.
type ParameterSpec struct {
	// Name is the binding name, without braces or markers.
	Name string

	// CatchAll captures all remaining positional arguments ({*name}).
	CatchAll bool

	// Optional allows the parameter to be skipped ({name?}).
	Optional bool

	// Repeated collects every occurrence in order. Only option values can be
	// repeated ("--tag {name}*").
	Repeated bool

	// Constraint is the declared type-constraint name ({name:int}). The core
	// only records that it was written; conversion lives with the caller.
	Constraint string

	// Description is the free text after "|", if any.
	Description string
}

// OptionSpec describes a --long/-short switch.
type OptionSpec struct {
	// Long is the long-form name without dashes. Empty for short-only options.
	Long string

	// Short is the single-rune short-form name without its dash.
	Short string

	// Optional marks a value-bearing option that may be omitted ("--msg {m}"
	// is required, "--msg? {m}" is not). Bare flags are inherently optional.
	Optional bool

	// Description is the free text after "|", if any.
	Description string

	// Value is the bound value parameter, or nil for a bare flag.
	Value *ParameterSpec
}

// Triggers returns the argv forms that activate the option, long form first.
func (o *OptionSpec) Triggers() []string {
	var triggers []string
	if o.Long != "" {
		triggers = append(triggers, "--"+o.Long)
	}
	if o.Short != "" {
		triggers = append(triggers, "-"+o.Short)
	}
	return triggers
}

// Segment is one parsed element of a route pattern. Kind selects which of the
// payload fields is meaningful. Offset and Length address the raw pattern
// text for diagnostics.
type Segment struct {
	Kind   SegmentKind
	Offset int
	Length int

	// Literal is the fixed word for SegmentLiteral.
	Literal string

	// Param is the placeholder for SegmentParameter.
	Param *ParameterSpec

	// Option is the switch for SegmentOption.
	Option *OptionSpec
}

// BindingName returns the name the segment binds matched text under, or ""
// for segments that bind nothing. A valued option binds under its value
// parameter's name; a bare flag binds under the option's own name.
func (s *Segment) BindingName() string {
	switch s.Kind {
	case SegmentParameter:
		return s.Param.Name
	case SegmentOption:
		if s.Option.Value != nil {
			return s.Option.Value.Name
		}
		if s.Option.Long != "" {
			return s.Option.Long
		}
		return s.Option.Short
	default:
		return ""
	}
}

// IsPositional reports whether the segment consumes positional arguments.
func (s *Segment) IsPositional() bool {
	return s.Kind == SegmentLiteral || s.Kind == SegmentParameter || s.Kind == SegmentEndOfOptions
}

// Pattern is the parsed AST of one route pattern. It is built once per Parse
// call, read by the validator and compiler, and discarded after compilation.
type Pattern struct {
	// Text is the raw pattern the AST was parsed from.
	Text string

	// Segments are the parsed segments in document order.
	Segments []*Segment
}
