// Package errors provides structured, coded diagnostics for route-pattern
// authors.
//
// Pattern errors are a development-time concern: the author of a pattern sees
// the offending text, the exact span, and (where known) a suggested fix. The
// package wraps the closed error sets from pkg/pattern into registry-backed
// codes (P### for syntax, S### for semantics) and renders them for terminals.
//
//	_, diags := pattern.Check("git commit <message>")
//	for _, e := range errors.FromDiagnostics(diags) {
//	    fmt.Print(e.Format())
//	}
//
// A runtime "no route matched" is a normal end-user outcome and never flows
// through this package.
package errors
