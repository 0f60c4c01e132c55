package pattern

import (
	"fmt"
	"strings"
)

// ParseErrorKind enumerates the closed set of syntactic error kinds.
type ParseErrorKind int

const (
	// ParseInvalidCharacter is a character the pattern language has no use for.
	ParseInvalidCharacter ParseErrorKind = iota

	// ParseUnbalancedBraces is a "{" with no matching "}".
	ParseUnbalancedBraces

	// ParseLegacyAngleSyntax is the old "<name>" parameter form.
	ParseLegacyAngleSyntax

	// ParseMalformedDashes is a run of three or more dashes.
	ParseMalformedDashes

	// ParseInvalidConstraint is a type-constraint position holding something
	// other than a constraint name.
	ParseInvalidConstraint

	// ParseUnexpectedToken is a token that cannot start or continue a segment.
	ParseUnexpectedToken

	// ParseShortNameTooLong is a single-dash option with a multi-rune name.
	ParseShortNameTooLong

	// ParseCatchAllOptional is "*" and "?" combined on one parameter.
	ParseCatchAllOptional

	// ParseCatchAllOptionValue is a catch-all used as an option's value.
	ParseCatchAllOptionValue
)

// String returns a human-readable name for the parse error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case ParseInvalidCharacter:
		return "invalid character"
	case ParseUnbalancedBraces:
		return "unbalanced braces"
	case ParseLegacyAngleSyntax:
		return "legacy angle-bracket syntax"
	case ParseMalformedDashes:
		return "malformed dash count"
	case ParseInvalidConstraint:
		return "invalid type constraint"
	case ParseUnexpectedToken:
		return "unexpected token"
	case ParseShortNameTooLong:
		return "short option name too long"
	case ParseCatchAllOptional:
		return "catch-all parameter marked optional"
	case ParseCatchAllOptionValue:
		return "catch-all used as option value"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError is a syntactic diagnostic addressing one span of a pattern.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Length int

	// Text is the offending source text.
	Text string

	// Suggestion is replacement text, when one is known.
	Suggestion string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// SemanticErrorKind enumerates the closed set of whole-pattern error kinds.
type SemanticErrorKind int

const (
	// SemanticCatchAllNotLast is a catch-all followed by more positional text.
	SemanticCatchAllNotLast SemanticErrorKind = iota

	// SemanticDuplicateName is two segments binding the same name.
	SemanticDuplicateName

	// SemanticConsecutiveOptionals is two optional positionals in a row.
	SemanticConsecutiveOptionals

	// SemanticOptionalBeforeRequired is an optional positional parameter
	// preceding a required one.
	SemanticOptionalBeforeRequired

	// SemanticOptionalWithCatchAll is an optional positional and a catch-all
	// in the same route.
	SemanticOptionalWithCatchAll

	// SemanticDuplicateAlias is two options sharing a short form.
	SemanticDuplicateAlias

	// SemanticOptionAfterEndOfOptions is an option declared after a bare "--".
	SemanticOptionAfterEndOfOptions

	// SemanticParameterAfterCatchAll is a positional parameter declared after
	// a catch-all.
	SemanticParameterAfterCatchAll
)

// String returns a human-readable name for the semantic error kind.
func (k SemanticErrorKind) String() string {
	switch k {
	case SemanticCatchAllNotLast:
		return "catch-all parameter is not the final positional segment"
	case SemanticDuplicateName:
		return "duplicate binding name"
	case SemanticConsecutiveOptionals:
		return "consecutive optional positional parameters"
	case SemanticOptionalBeforeRequired:
		return "optional positional parameter before a required one"
	case SemanticOptionalWithCatchAll:
		return "optional positional parameter combined with a catch-all"
	case SemanticDuplicateAlias:
		return "duplicate short-form alias"
	case SemanticOptionAfterEndOfOptions:
		return "option declared after the end-of-options separator"
	case SemanticParameterAfterCatchAll:
		return "positional parameter declared after a catch-all"
	default:
		return fmt.Sprintf("SemanticErrorKind(%d)", int(k))
	}
}

// SemanticError is a whole-pattern diagnostic: every span involved is
// individually valid, but the combination is ambiguous.
type SemanticError struct {
	Kind   SemanticErrorKind
	Offset int
	Length int

	// Name is the binding name or alias involved, when the kind has one.
	Name string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q at offset %d", e.Kind, e.Name, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Diagnostics aggregates every parse and semantic error found in one pattern.
type Diagnostics struct {
	Pattern  string
	Parse    []*ParseError
	Semantic []*SemanticError
}

// HasErrors reports whether any diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return d != nil && (len(d.Parse) > 0 || len(d.Semantic) > 0)
}

// Error implements the error interface, listing every diagnostic.
func (d *Diagnostics) Error() string {
	total := len(d.Parse) + len(d.Semantic)
	if total == 0 {
		return "no pattern errors"
	}
	if total == 1 {
		if len(d.Parse) == 1 {
			return d.Parse[0].Error()
		}
		return d.Semantic[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d pattern errors in %q:\n", total, d.Pattern)
	i := 1
	for _, err := range d.Parse {
		fmt.Fprintf(&sb, "  %d. %s\n", i, err.Error())
		i++
	}
	for _, err := range d.Semantic {
		fmt.Fprintf(&sb, "  %d. %s\n", i, err.Error())
		i++
	}
	return sb.String()
}

// Check runs the full parse-then-validate pipeline on one pattern.
// The returned Diagnostics is nil when the pattern is clean.
func Check(text string) (*Pattern, *Diagnostics) {
	p, parseErrs := Parse(text)
	semErrs := Validate(p)
	if len(parseErrs) == 0 && len(semErrs) == 0 {
		return p, nil
	}
	return p, &Diagnostics{Pattern: text, Parse: parseErrs, Semantic: semErrs}
}
