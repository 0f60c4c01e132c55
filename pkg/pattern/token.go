package pattern

import "fmt"

// TokenKind classifies a lexed token.
type TokenKind int

const (
	// TokenEOF terminates every token stream.
	TokenEOF TokenKind = iota

	// TokenIdentifier is a literal word, parameter name, or option name.
	// Hyphenated runs like "no-edit" lex as a single identifier.
	TokenIdentifier

	// TokenOpenBrace is "{".
	TokenOpenBrace

	// TokenCloseBrace is "}".
	TokenCloseBrace

	// TokenColon is ":" (type constraint separator).
	TokenColon

	// TokenQuestion is "?" (optional marker).
	TokenQuestion

	// TokenPipe is "|" (description separator).
	TokenPipe

	// TokenStar is "*" (catch-all or repeated marker).
	TokenStar

	// TokenComma is "," (option alias separator).
	TokenComma

	// TokenSingleDash is "-" immediately followed by an option name.
	TokenSingleDash

	// TokenDoubleDash is "--" immediately followed by an option name.
	TokenDoubleDash

	// TokenEndOfOptions is a bare "--" with no attached name.
	TokenEndOfOptions

	// TokenAngleParam is the legacy "<name>" parameter syntax. It is lexed as
	// a single invalid token carrying the "{name}" replacement so the parser
	// can report a precise fix instead of misparsing.
	TokenAngleParam

	// TokenInvalid is any character sequence the lexer cannot classify.
	TokenInvalid
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of pattern"
	case TokenIdentifier:
		return "identifier"
	case TokenOpenBrace:
		return "'{'"
	case TokenCloseBrace:
		return "'}'"
	case TokenColon:
		return "':'"
	case TokenQuestion:
		return "'?'"
	case TokenPipe:
		return "'|'"
	case TokenStar:
		return "'*'"
	case TokenComma:
		return "','"
	case TokenSingleDash:
		return "'-'"
	case TokenDoubleDash:
		return "'--'"
	case TokenEndOfOptions:
		return "end-of-options separator"
	case TokenAngleParam:
		return "angle-bracket parameter"
	case TokenInvalid:
		return "invalid token"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexed unit of a route pattern. Offset and Length address the
// raw pattern text in bytes for diagnostics.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
	Length int

	// Suggestion carries replacement text for recoverable lexical mistakes,
	// e.g. "{name}" for the legacy "<name>" syntax.
	Suggestion string
}

// End returns the byte offset one past the token.
func (t Token) End() int {
	return t.Offset + t.Length
}
