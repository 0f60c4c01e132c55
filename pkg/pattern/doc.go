// Package pattern implements the route-pattern language for argroute.
//
// A route pattern describes one command-line invocation shape the way a web
// router pattern describes a URL:
//
//	git commit --amend -m {message}
//	add {a:int} {b:int}
//	echo {*text}
//
// The package covers the front half of the pipeline: lexer, recursive-descent
// parser, and semantic validator. Compilation and matching live in pkg/router.
//
// # Grammar
//
//	Literal      := Identifier
//	Parameter    := "{" "*"? Identifier "?"? (":" Identifier "?"?)? ("|" Description)? "}"
//	Option       := ("--" Identifier | "-" Identifier) ("," "-" Identifier)?
//	                "?"? ("|" Description)? ("{" Parameter-body "}" "*"?)?
//	EndOfOptions := "--"
//
// Identifiers may contain interior hyphens ("no-edit" is one literal).
// "{*name}" is a catch-all, "{name?}" optional, "{name:int}" constrained,
// "{name|text}" described. "--tag {name}*" collects repeated values.
//
// A parameter description runs to the closing brace. An option description
// runs until the next token that starts a new segment: a dash-prefixed word,
// a bare "--", or a "{". Hyphen-containing words do not end a description;
// only a leading dash does.
//
// # Error accumulation
//
// Tokenize never fails, Parse never panics, and neither stops at the first
// problem: every independent error is collected so a pattern author sees the
// full picture in one pass. Check runs parse and validation together:
//
//	ast, diags := pattern.Check("git commit <message>")
//	if diags.HasErrors() {
//	    // diags.Parse[0].Suggestion == "{message}"
//	}
package pattern
