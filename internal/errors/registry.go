package errors

import "github.com/argroute/argroute/pkg/pattern"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Syntax Errors (P001-P099)
	// ============================================

	"P001": {
		Category: CategorySyntax,
		Message:  "Invalid character in pattern",
		Detail:   "The pattern language uses words, braces, dashes, and the markers ? : | , *. Anything else cannot start a segment.",
		DocURL:   "https://argroute.dev/docs/errors/P001",
	},
	"P002": {
		Category: CategorySyntax,
		Message:  "Unbalanced braces",
		Detail:   "Every { opening a parameter needs a matching }.",
		DocURL:   "https://argroute.dev/docs/errors/P002",
	},
	"P003": {
		Category: CategorySyntax,
		Message:  "Legacy angle-bracket parameter syntax",
		Detail:   "Parameters are written with braces. The <name> form from earlier releases is no longer parsed.",
		DocURL:   "https://argroute.dev/docs/errors/P003",
	},
	"P004": {
		Category: CategorySyntax,
		Message:  "Malformed dash count",
		Detail:   "Options take one dash (short form) or two (long form). Runs of three or more dashes mean nothing.",
		DocURL:   "https://argroute.dev/docs/errors/P004",
	},
	"P005": {
		Category: CategorySyntax,
		Message:  "Invalid type-constraint spelling",
		Detail:   "A constraint name after : must be a word: a letter followed by letters, digits, or underscores.",
		DocURL:   "https://argroute.dev/docs/errors/P005",
	},
	"P006": {
		Category: CategorySyntax,
		Message:  "Unexpected token",
		Detail:   "The token cannot start or continue a segment at this position.",
		DocURL:   "https://argroute.dev/docs/errors/P006",
	},
	"P007": {
		Category: CategorySyntax,
		Message:  "Short option name longer than one character",
		Detail:   "Single-dash options take a one-character name. Longer names use the double-dash form.",
		DocURL:   "https://argroute.dev/docs/errors/P007",
	},
	"P008": {
		Category: CategorySyntax,
		Message:  "Catch-all parameter marked optional",
		Detail:   "A catch-all already matches zero or more arguments; the ? marker adds nothing and is rejected.",
		DocURL:   "https://argroute.dev/docs/errors/P008",
	},
	"P009": {
		Category: CategorySyntax,
		Message:  "Catch-all used as an option value",
		Detail:   "An option consumes exactly one following argument as its value; a catch-all cannot be bound there.",
		DocURL:   "https://argroute.dev/docs/errors/P009",
	},

	// ============================================
	// Semantic Errors (S001-S099)
	// ============================================

	"S001": {
		Category: CategorySemantics,
		Message:  "Catch-all is not the final positional segment",
		Detail:   "A catch-all absorbs every remaining argument, so nothing positional can follow it.",
		DocURL:   "https://argroute.dev/docs/errors/S001",
	},
	"S002": {
		Category: CategorySemantics,
		Message:  "Duplicate binding name",
		Detail:   "Two segments bind the same name, so one of them could never be read back.",
		DocURL:   "https://argroute.dev/docs/errors/S002",
	},
	"S003": {
		Category: CategorySemantics,
		Message:  "Consecutive optional positional parameters",
		Detail:   "With two optionals in a row there is no way to tell which one a single argument belongs to.",
		DocURL:   "https://argroute.dev/docs/errors/S003",
	},
	"S004": {
		Category: CategorySemantics,
		Message:  "Optional positional parameter before a required one",
		Detail:   "An argument in that position could fill either slot; the route is ambiguous.",
		DocURL:   "https://argroute.dev/docs/errors/S004",
	},
	"S005": {
		Category: CategorySemantics,
		Message:  "Optional positional parameter combined with a catch-all",
		Detail:   "The catch-all and the optional compete for the same arguments; the route is ambiguous.",
		DocURL:   "https://argroute.dev/docs/errors/S005",
	},
	"S006": {
		Category: CategorySemantics,
		Message:  "Duplicate short-form alias",
		Detail:   "Two options answer to the same short form within one route.",
		DocURL:   "https://argroute.dev/docs/errors/S006",
	},
	"S007": {
		Category: CategorySemantics,
		Message:  "Option declared after the end-of-options separator",
		Detail:   "Everything after a bare -- is positional; an option there could never be triggered.",
		DocURL:   "https://argroute.dev/docs/errors/S007",
	},
	"S008": {
		Category: CategorySemantics,
		Message:  "Positional parameter declared after a catch-all",
		Detail:   "The catch-all has already absorbed every remaining argument.",
		DocURL:   "https://argroute.dev/docs/errors/S008",
	},
}

// parseCodes maps pattern parse-error kinds to registered codes.
var parseCodes = map[pattern.ParseErrorKind]string{
	pattern.ParseInvalidCharacter:    "P001",
	pattern.ParseUnbalancedBraces:    "P002",
	pattern.ParseLegacyAngleSyntax:   "P003",
	pattern.ParseMalformedDashes:     "P004",
	pattern.ParseInvalidConstraint:   "P005",
	pattern.ParseUnexpectedToken:     "P006",
	pattern.ParseShortNameTooLong:    "P007",
	pattern.ParseCatchAllOptional:    "P008",
	pattern.ParseCatchAllOptionValue: "P009",
}

// semanticCodes maps pattern semantic-error kinds to registered codes.
var semanticCodes = map[pattern.SemanticErrorKind]string{
	pattern.SemanticCatchAllNotLast:         "S001",
	pattern.SemanticDuplicateName:           "S002",
	pattern.SemanticConsecutiveOptionals:    "S003",
	pattern.SemanticOptionalBeforeRequired:  "S004",
	pattern.SemanticOptionalWithCatchAll:    "S005",
	pattern.SemanticDuplicateAlias:          "S006",
	pattern.SemanticOptionAfterEndOfOptions: "S007",
	pattern.SemanticParameterAfterCatchAll:  "S008",
}

// FromParse converts a pattern parse error into a coded diagnostic.
func FromParse(patternText string, pe *pattern.ParseError) *Error {
	e := New(parseCodes[pe.Kind]).WithSpan(patternText, pe.Offset, pe.Length)
	if pe.Suggestion != "" {
		e.WithSuggestion("use " + pe.Suggestion + " instead")
	}
	return e.Wrap(pe)
}

// FromSemantic converts a pattern semantic error into a coded diagnostic.
func FromSemantic(patternText string, se *pattern.SemanticError) *Error {
	return New(semanticCodes[se.Kind]).
		WithSpan(patternText, se.Offset, se.Length).
		Wrap(se)
}

// FromError converts any registration error into coded diagnostics. Aggregated
// pattern diagnostics fan out per underlying error; everything else becomes a
// single uncoded entry.
func FromError(err error) []*Error {
	switch e := err.(type) {
	case nil:
		return nil
	case *pattern.Diagnostics:
		return FromDiagnostics(e)
	case *Error:
		return []*Error{e}
	default:
		return []*Error{{
			Category: CategoryPrecondition,
			Message:  err.Error(),
			Wrapped:  err,
		}}
	}
}

// FromDiagnostics flattens an aggregate into coded diagnostics, parse errors
// first, preserving document order within each set.
func FromDiagnostics(d *pattern.Diagnostics) []*Error {
	if !d.HasErrors() {
		return nil
	}
	out := make([]*Error, 0, len(d.Parse)+len(d.Semantic))
	for _, pe := range d.Parse {
		out = append(out, FromParse(d.Pattern, pe))
	}
	for _, se := range d.Semantic {
		out = append(out, FromSemantic(d.Pattern, se))
	}
	return out
}
