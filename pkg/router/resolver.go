package router

import (
	"errors"
	"strings"
)

// ErrNilArgv reports a nil argument vector passed to Resolve. A non-matching
// argv is a normal outcome; a nil one is an embedding bug and fails loudly.
var ErrNilArgv = errors.New("router: nil argument vector")

// Resolver matches argument vectors against an endpoint collection.
//
// Matching is a pure, bounded single pass over the sorted endpoints and the
// argv: no I/O, no blocking, no shared mutable state. Any number of
// goroutines may resolve concurrently once registration has finished.
type Resolver struct {
	collection *EndpointCollection
}

// NewResolver creates a resolver over the given collection.
func NewResolver(c *EndpointCollection) *Resolver {
	return &Resolver{collection: c}
}

var _ Matcher = (*Resolver)(nil)

// Resolve walks the sorted endpoints and returns the first match with its
// extracted raw bindings. A failed attempt against one candidate silently
// advances to the next; only the final outcome is observable. "No route
// matched" is reported in the Result, never as an error.
func (r *Resolver) Resolve(argv []string) (*Result, error) {
	if argv == nil {
		return nil, ErrNilArgv
	}

	result := &Result{}
	for _, e := range r.collection.Snapshot() {
		result.Candidates++
		bindings, ok := matchEndpoint(e, argv)
		if !ok {
			continue
		}
		result.Matched = true
		result.Endpoint = e
		result.Bindings = bindings
		return result, nil
	}

	result.Reason = "no route matched"
	return result, nil
}

// matchEndpoint tries one candidate. On any failure the partial bindings are
// discarded and the caller moves on.
func matchEndpoint(e *Endpoint, argv []string) (map[string]Binding, bool) {
	route := e.Route
	if len(argv) < route.MinPositionals {
		return nil, false
	}

	consumed := make([]bool, len(argv))
	bindings := make(map[string]Binding)
	pos := 0

	// Positional phase: walk the slots left to right. A catch-all ends the
	// walk; its value is bound after the option phase below.
	var catchAll *PositionalMatcher
	catchStart := 0
	for i := range route.Positionals {
		m := &route.Positionals[i]
		if m.CatchAll {
			catchAll = m
			catchStart = pos
			break
		}
		if m.IsLiteral {
			if pos >= len(argv) || argv[pos] != m.Literal {
				return nil, false
			}
			consumed[pos] = true
			pos++
			continue
		}
		hasArg := pos < len(argv) && (m.AfterSeparator || !looksLikeOption(argv[pos]))
		if !hasArg {
			if m.Optional {
				continue
			}
			return nil, false
		}
		bindings[m.Name] = Binding{Name: m.Name, Values: []string{argv[pos]}}
		consumed[pos] = true
		pos++
	}

	// Option phase: options are picked out of the unconsumed remainder before
	// a catch-all absorbs it, so catch-all routes can still carry options.
	for i := range route.Options {
		if !matchOption(&route.Options[i], argv, consumed, bindings) {
			return nil, false
		}
	}

	if catchAll != nil {
		var rest []string
		for i := catchStart; i < len(argv); i++ {
			if !consumed[i] {
				rest = append(rest, argv[i])
				consumed[i] = true
			}
		}
		bindings[catchAll.Name] = Binding{Name: catchAll.Name, Values: rest}
	}

	// Completion check: a non-catch-all route matching only a prefix of the
	// argv is not a match.
	if !route.HasCatchAll {
		for i := range consumed {
			if !consumed[i] {
				return nil, false
			}
		}
	}

	return bindings, true
}

// matchOption scans the unconsumed argv for the option's trigger forms.
// Returns false when the candidate must fail: a required valued option is
// absent, or a trigger is present with no usable value after it.
func matchOption(m *OptionMatcher, argv []string, consumed []bool, bindings map[string]Binding) bool {
	var values []string
	found := false

	for i := 0; i < len(argv); i++ {
		if consumed[i] || !m.Matches(argv[i]) {
			continue
		}
		if !m.ExpectsValue {
			consumed[i] = true
			found = true
			break
		}
		j := i + 1
		if j >= len(argv) || consumed[j] || looksLikeOption(argv[j]) {
			return false
		}
		consumed[i], consumed[j] = true, true
		values = append(values, argv[j])
		found = true
		if !m.Repeated {
			break
		}
		i = j
	}

	if !found {
		// Bare flags and optional valued options may simply be absent.
		return !m.ExpectsValue || m.Optional
	}

	if m.ExpectsValue {
		bindings[m.Name] = Binding{Name: m.Name, Values: values}
	} else {
		bindings[m.Name] = Binding{Name: m.Name, Values: []string{FlagSentinel}, IsFlag: true}
	}
	return true
}

// looksLikeOption reports whether an argument reads as an option trigger. A
// bare "-" is conventionally a stdin placeholder and stays positional.
func looksLikeOption(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}
