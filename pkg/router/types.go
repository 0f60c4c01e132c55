package router

import "strings"

// FlagSentinel is the value bound when a bare flag is present in the argv.
const FlagSentinel = "true"

// PositionalMatcher matches one positional argument slot of a compiled route.
type PositionalMatcher struct {
	// Literal is the exact word for literal slots; empty for parameter slots.
	Literal string

	// IsLiteral distinguishes literal slots from parameter slots.
	IsLiteral bool

	// Separator marks the end-of-options slot, the literal "--".
	Separator bool

	// Name is the binding name for parameter slots.
	Name string

	// CatchAll captures the whole remainder; always the final slot.
	CatchAll bool

	// Optional allows the slot to be skipped without consuming an argument.
	Optional bool

	// Constraint is the declared type-constraint name, recorded for the
	// type-conversion collaborator and never validated here.
	Constraint string

	// Description is renderer-facing text from the pattern.
	Description string

	// AfterSeparator relaxes the leading-dash refusal for parameters that
	// follow an end-of-options separator.
	AfterSeparator bool
}

// OptionMatcher matches one declared option anywhere in the unconsumed
// remainder of the argv.
type OptionMatcher struct {
	// Triggers are the argv forms that activate the option, long form first
	// (e.g. ["--verbose", "-v"]).
	Triggers []string

	// Name is the binding name: the value parameter's name for valued
	// options, the option's own name for bare flags.
	Name string

	// ExpectsValue is true when the trigger must be followed by a value.
	ExpectsValue bool

	// Optional allows a valued option to be absent. Bare flags are always
	// optional.
	Optional bool

	// Repeated collects every occurrence of the option in argv order.
	Repeated bool

	// Constraint is the value's declared type-constraint name.
	Constraint string

	// Description is renderer-facing text from the pattern.
	Description string
}

// Matches reports whether arg is one of the option's trigger forms.
func (m *OptionMatcher) Matches(arg string) bool {
	for _, t := range m.Triggers {
		if arg == t {
			return true
		}
	}
	return false
}

// CompiledRoute is the immutable runtime matcher for one pattern. It is built
// once at registration and read-only afterwards.
type CompiledRoute struct {
	// Positionals are the positional slots in pattern order.
	Positionals []PositionalMatcher

	// Options are the declared options in pattern order.
	Options []OptionMatcher

	// Specificity orders candidate routes so the most literal is tried first.
	Specificity int

	// HasCatchAll is true when the final positional slot is a catch-all.
	HasCatchAll bool

	// MinPositionals is the minimum number of arguments the positional phase
	// can accept: literal slots plus required parameters.
	MinPositionals int
}

// Endpoint is a registered pattern plus its compiled matcher and an opaque
// handler reference. Endpoints are exclusively owned by their collection.
type Endpoint struct {
	// Pattern is the route pattern text as registered.
	Pattern string

	// Route is the compiled matcher.
	Route *CompiledRoute

	// Handler is opaque to the core; the handler-invocation collaborator
	// receives it after a successful match.
	Handler any

	// Order is the explicit sort order; higher sorts earlier. Specificity
	// breaks ties.
	Order int

	// Description is renderer-facing text for the whole route.
	Description string

	// canonical is the case-insensitive identity key for duplicate detection.
	canonical string
}

// RouteDescription is the structure help and completion renderers consume.
// The core exposes structure only; it never renders text itself.
type RouteDescription struct {
	Pattern     string
	Description string
	Order       int
	Specificity int
	Positionals []PositionalMatcher
	Options     []OptionMatcher
}

// Describe returns the endpoint's renderer-facing structure.
func (e *Endpoint) Describe() RouteDescription {
	return RouteDescription{
		Pattern:     e.Pattern,
		Description: e.Description,
		Order:       e.Order,
		Specificity: e.Route.Specificity,
		Positionals: append([]PositionalMatcher(nil), e.Route.Positionals...),
		Options:     append([]OptionMatcher(nil), e.Route.Options...),
	}
}

// Binding is the raw-string result of matching one parameter or option.
// Catch-all parameters and repeated options carry their values as ordered
// lists; typed conversion is delegated to the caller.
type Binding struct {
	Name string

	// Values are the captured raw strings in argv order.
	Values []string

	// IsFlag is true when the binding records a present bare flag.
	IsFlag bool
}

// Value returns the captured text as one string: the single value for plain
// parameters, the space-joined remainder for catch-alls, "" when empty.
func (b Binding) Value() string {
	return strings.Join(b.Values, " ")
}

// Result is the outcome of resolving an argument vector.
type Result struct {
	// Matched is true when some endpoint accepted the argv.
	Matched bool

	// Endpoint is the matched endpoint, nil otherwise.
	Endpoint *Endpoint

	// Bindings maps binding names to captured raw text.
	Bindings map[string]Binding

	// Candidates counts the endpoints tried before success or exhaustion.
	Candidates int

	// Reason describes the failure when Matched is false.
	Reason string
}

// Get returns the raw text bound under name, or "" when unset.
func (r *Result) Get(name string) string {
	return r.Bindings[name].Value()
}

// All returns the ordered raw values bound under name.
func (r *Result) All(name string) []string {
	return r.Bindings[name].Values
}

// Flag reports whether a bare flag bound under name was present.
func (r *Result) Flag(name string) bool {
	return r.Bindings[name].IsFlag
}

// Matcher resolves argument vectors against a registered route set. The
// instrumentation wrappers in pkg/middleware decorate this interface.
type Matcher interface {
	Resolve(argv []string) (*Result, error)
}
