package router

import (
	"fmt"
	"strings"
)

// FormatArgv reconstructs an argument vector that would match the endpoint,
// substituting parameter and option values from the supplied map. It is the
// inverse of resolving: help and completion renderers use it to show concrete
// invocations, and tests use it to round-trip routes.
//
// Catch-all values are split on whitespace back into separate arguments. A
// bare flag is included when its value is the FlagSentinel. Missing values
// for required parameters or options are errors; optional ones are skipped.
func FormatArgv(e *Endpoint, values map[string]string) ([]string, error) {
	var argv []string

	for _, m := range e.Route.Positionals {
		if m.IsLiteral {
			argv = append(argv, m.Literal)
			continue
		}
		v, ok := values[m.Name]
		if m.CatchAll {
			if ok && v != "" {
				argv = append(argv, strings.Fields(v)...)
			}
			continue
		}
		if !ok {
			if m.Optional {
				continue
			}
			return nil, fmt.Errorf("router: missing value for parameter %q", m.Name)
		}
		argv = append(argv, v)
	}

	for i := range e.Route.Options {
		m := &e.Route.Options[i]
		v, ok := values[m.Name]
		if !m.ExpectsValue {
			if ok && v == FlagSentinel {
				argv = append(argv, m.Triggers[0])
			}
			continue
		}
		if !ok {
			if m.Optional {
				continue
			}
			return nil, fmt.Errorf("router: missing value for option %q", m.Name)
		}
		argv = append(argv, m.Triggers[0], v)
	}

	return argv, nil
}
