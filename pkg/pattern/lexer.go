package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts a route pattern into a token stream.
//
// The lexer never fails: unrecognized characters become TokenInvalid tokens so
// the parser can keep collecting multiple errors in one pass. The returned
// stream is always terminated by a TokenEOF.
func Tokenize(text string) []Token {
	l := &lexer{src: text}
	for l.pos < len(l.src) {
		l.next()
	}
	l.emit(TokenEOF, l.pos, l.pos, "")
	return l.tokens
}

type lexer struct {
	src    string
	pos    int
	tokens []Token
}

func (l *lexer) emit(kind TokenKind, start, end int, suggestion string) {
	l.tokens = append(l.tokens, Token{
		Kind:       kind,
		Text:       l.src[start:end],
		Offset:     start,
		Length:     end - start,
		Suggestion: suggestion,
	})
}

// next lexes one token starting at l.pos.
func (l *lexer) next() {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case r == ' ' || r == '\t':
		l.pos += size

	case r == '{':
		l.emit(TokenOpenBrace, l.pos, l.pos+1, "")
		l.pos++
	case r == '}':
		l.emit(TokenCloseBrace, l.pos, l.pos+1, "")
		l.pos++
	case r == ':':
		l.emit(TokenColon, l.pos, l.pos+1, "")
		l.pos++
	case r == '?':
		l.emit(TokenQuestion, l.pos, l.pos+1, "")
		l.pos++
	case r == '|':
		l.emit(TokenPipe, l.pos, l.pos+1, "")
		l.pos++
	case r == '*':
		l.emit(TokenStar, l.pos, l.pos+1, "")
		l.pos++
	case r == ',':
		l.emit(TokenComma, l.pos, l.pos+1, "")
		l.pos++

	case r == '-':
		l.lexDashes()

	case r == '<':
		l.lexAngleParam()

	case isIdentRune(r):
		l.lexIdentifier()

	default:
		l.emit(TokenInvalid, l.pos, l.pos+size, "")
		l.pos += size
	}
}

// lexDashes classifies a dash run: "-" is a short-option prefix, "--" glued to
// a name is a long-option prefix, a bare "--" is the end-of-options separator,
// and three or more dashes are invalid.
func (l *lexer) lexDashes() {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] == '-' {
		l.pos++
	}
	count := l.pos - start

	switch count {
	case 1:
		l.emit(TokenSingleDash, start, l.pos, "")
	case 2:
		if l.nextIsIdent() {
			l.emit(TokenDoubleDash, start, l.pos, "")
		} else {
			l.emit(TokenEndOfOptions, start, l.pos, "")
		}
	default:
		l.emit(TokenInvalid, start, l.pos, strings.Repeat("-", 2))
	}
}

// lexAngleParam recognizes the legacy "<name>" syntax as a single invalid
// token carrying the "{name}" replacement. An unclosed "<" is a plain invalid
// character.
func (l *lexer) lexAngleParam() {
	start := l.pos
	end := strings.IndexByte(l.src[start:], '>')
	if end < 0 {
		l.emit(TokenInvalid, start, start+1, "")
		l.pos++
		return
	}
	end += start + 1
	inner := l.src[start+1 : end-1]
	l.emit(TokenAngleParam, start, end, "{"+inner+"}")
	l.pos = end
}

// lexIdentifier consumes an identifier run. Interior hyphens join the run
// ("no-edit" is one identifier) but a trailing hyphen does not.
func (l *lexer) lexIdentifier() {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if isIdentRune(r) {
			l.pos += size
			continue
		}
		if r == '-' && l.identContinuesAfterDashes(l.pos) {
			l.pos++
			continue
		}
		break
	}
	l.emit(TokenIdentifier, start, l.pos, "")
}

// identContinuesAfterDashes reports whether the single dash at pos is interior
// to an identifier, i.e. immediately followed by another identifier rune.
func (l *lexer) identContinuesAfterDashes(pos int) bool {
	if pos+1 >= len(l.src) || l.src[pos+1] == '-' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.src[pos+1:])
	return isIdentRune(r)
}

// nextIsIdent reports whether the rune at l.pos starts an identifier.
func (l *lexer) nextIsIdent() bool {
	if l.pos >= len(l.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return isIdentRune(r)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}
