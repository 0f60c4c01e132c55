package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse converts a route pattern into its segment AST.
//
// The parser is recursive descent, one segment per iteration. It never panics
// and never stops at the first mistake: every independent syntax error is
// recorded and the parser resynchronizes at the next plausible segment start,
// so one malformed segment cannot hide later ones.
func Parse(text string) (*Pattern, []*ParseError) {
	p := &parser{src: text, tokens: Tokenize(text)}
	pat := &Pattern{Text: text}

	for !p.at(TokenEOF) {
		tok := p.peek()
		switch tok.Kind {
		case TokenIdentifier:
			p.advance()
			pat.Segments = append(pat.Segments, &Segment{
				Kind:    SegmentLiteral,
				Offset:  tok.Offset,
				Length:  tok.Length,
				Literal: tok.Text,
			})

		case TokenOpenBrace:
			if seg := p.parseParameterSegment(); seg != nil {
				pat.Segments = append(pat.Segments, seg)
			}

		case TokenSingleDash, TokenDoubleDash:
			if seg := p.parseOption(); seg != nil {
				pat.Segments = append(pat.Segments, seg)
			}

		case TokenEndOfOptions:
			p.advance()
			pat.Segments = append(pat.Segments, &Segment{
				Kind:   SegmentEndOfOptions,
				Offset: tok.Offset,
				Length: tok.Length,
			})

		case TokenCloseBrace:
			p.record(ParseUnbalancedBraces, tok, "")
			p.advance()

		case TokenAngleParam:
			p.record(ParseLegacyAngleSyntax, tok, tok.Suggestion)
			p.advance()

		case TokenInvalid:
			kind := ParseInvalidCharacter
			if strings.HasPrefix(tok.Text, "---") {
				kind = ParseMalformedDashes
			}
			p.record(kind, tok, tok.Suggestion)
			p.advance()

		default:
			p.record(ParseUnexpectedToken, tok, "")
			p.advance()
			p.synchronize()
		}
	}

	return pat, p.errs
}

type parser struct {
	src    string
	tokens []Token
	pos    int
	errs   []*ParseError
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) at(kind TokenKind) bool {
	return p.tokens[p.pos].Kind == kind
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) record(kind ParseErrorKind, tok Token, suggestion string) {
	p.errs = append(p.errs, &ParseError{
		Kind:       kind,
		Offset:     tok.Offset,
		Length:     tok.Length,
		Text:       tok.Text,
		Suggestion: suggestion,
	})
}

// recordSpan records an error covering an arbitrary source span.
func (p *parser) recordSpan(kind ParseErrorKind, offset, end int, suggestion string) {
	p.errs = append(p.errs, &ParseError{
		Kind:       kind,
		Offset:     offset,
		Length:     end - offset,
		Text:       p.src[offset:end],
		Suggestion: suggestion,
	})
}

// synchronize skips tokens until a plausible new segment start.
func (p *parser) synchronize() {
	for {
		switch p.peek().Kind {
		case TokenEOF, TokenIdentifier, TokenOpenBrace,
			TokenSingleDash, TokenDoubleDash, TokenEndOfOptions:
			return
		}
		p.advance()
	}
}

// skipBraceBody skips tokens until a "}" (consumed) or a plausible new
// segment start, used to recover from an unparsable parameter body.
func (p *parser) skipBraceBody() {
	for {
		switch p.peek().Kind {
		case TokenCloseBrace:
			p.advance()
			return
		case TokenEOF, TokenSingleDash, TokenDoubleDash, TokenEndOfOptions:
			return
		}
		p.advance()
	}
}

// parseParameterSegment parses "{" parameter-body "}" as a positional segment.
// The opening brace is the current token.
func (p *parser) parseParameterSegment() *Segment {
	open := p.advance()

	spec, ok := p.parseParameterBody()
	if !ok {
		p.skipBraceBody()
		return nil
	}

	end := p.peek().Offset
	if p.at(TokenCloseBrace) {
		closing := p.advance()
		end = closing.End()
	} else {
		p.record(ParseUnbalancedBraces, open, "")
	}

	if spec.CatchAll && spec.Optional {
		p.recordSpan(ParseCatchAllOptional, open.Offset, end, "")
	}

	return &Segment{
		Kind:   SegmentParameter,
		Offset: open.Offset,
		Length: end - open.Offset,
		Param:  spec,
	}
}

// parseParameterBody parses the inside of a braced parameter:
//
//	"*"? Identifier "?"? (":" Identifier "?"?)? ("|" Description)?
//
// The caller owns both braces.
func (p *parser) parseParameterBody() (*ParameterSpec, bool) {
	spec := &ParameterSpec{}

	if p.at(TokenStar) {
		p.advance()
		spec.CatchAll = true
	}

	if !p.at(TokenIdentifier) {
		p.record(ParseUnexpectedToken, p.peek(), "")
		return nil, false
	}
	spec.Name = p.advance().Text

	if p.at(TokenQuestion) {
		p.advance()
		spec.Optional = true
	}

	if p.at(TokenColon) {
		p.advance()
		tok := p.peek()
		if tok.Kind == TokenIdentifier && isConstraintName(tok.Text) {
			spec.Constraint = p.advance().Text
		} else {
			p.record(ParseInvalidConstraint, tok, "")
			if tok.Kind != TokenCloseBrace && tok.Kind != TokenEOF {
				p.advance()
			}
		}
		if p.at(TokenQuestion) {
			p.advance()
			spec.Optional = true
		}
	}

	if p.at(TokenPipe) {
		pipe := p.advance()
		spec.Description, _ = p.description(pipe, TokenCloseBrace)
	}

	return spec, true
}

// description consumes description tokens and returns the raw source text
// between the pipe and the terminator, plus the end offset of the last
// consumed token (the pipe's own end when nothing follows it). For parameters
// the terminator kind is the closing brace; for options it is any token that
// can start a new segment. The terminator itself is left for the caller.
func (p *parser) description(pipe Token, terminator TokenKind) (string, int) {
	end := pipe.End()
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF || tok.Kind == terminator {
			break
		}
		if terminator != TokenCloseBrace && startsSegment(tok.Kind) {
			break
		}
		p.advance()
		end = tok.End()
	}
	return strings.TrimSpace(p.src[pipe.End():end]), end
}

// startsSegment reports whether a token kind terminates an option description
// by opening a new segment. Hyphenated words lex as single identifiers, so
// only a word with a leading dash (or a brace) ends the description.
func startsSegment(kind TokenKind) bool {
	switch kind {
	case TokenSingleDash, TokenDoubleDash, TokenEndOfOptions, TokenOpenBrace:
		return true
	}
	return false
}

// parseOption parses an option segment:
//
//	("--" Identifier | "-" Identifier) ("," "-" Identifier)?
//	"?"? ("|" Description)? ("{" parameter-body "}" "*"?)?
//
// The leading dash token is the current token.
func (p *parser) parseOption() *Segment {
	dash := p.advance()
	opt := &OptionSpec{}

	name, ok := p.optionName(dash)
	if !ok {
		p.synchronize()
		return nil
	}
	if dash.Kind == TokenDoubleDash {
		opt.Long = name.Text
	} else {
		opt.Short = name.Text
	}
	end := name.End()

	if p.at(TokenComma) {
		p.advance()
		if !p.at(TokenSingleDash) {
			p.record(ParseUnexpectedToken, p.peek(), "")
			p.synchronize()
		} else {
			aliasDash := p.advance()
			alias, ok := p.optionName(aliasDash)
			if !ok {
				p.synchronize()
			} else {
				opt.Short = alias.Text
				end = alias.End()
			}
		}
	}

	if p.at(TokenQuestion) {
		q := p.advance()
		opt.Optional = true
		end = q.End()
	}

	if p.at(TokenPipe) {
		pipe := p.advance()
		opt.Description, end = p.description(pipe, TokenEOF)
	}

	if p.at(TokenOpenBrace) {
		open := p.advance()
		spec, ok := p.parseParameterBody()
		if !ok {
			p.skipBraceBody()
		} else {
			valueEnd := p.peek().Offset
			if p.at(TokenCloseBrace) {
				closing := p.advance()
				valueEnd = closing.End()
			} else {
				p.record(ParseUnbalancedBraces, open, "")
			}
			if spec.CatchAll {
				p.recordSpan(ParseCatchAllOptionValue, open.Offset, valueEnd, "")
			}
			opt.Value = spec
			end = valueEnd

			if p.at(TokenStar) {
				star := p.advance()
				spec.Repeated = true
				end = star.End()
			}
		}
	}

	return &Segment{
		Kind:   SegmentOption,
		Offset: dash.Offset,
		Length: end - dash.Offset,
		Option: opt,
	}
}

// optionName consumes the identifier glued to an option's dash prefix. A
// detached or missing name is an unexpected-token error; a multi-rune name
// after a single dash is reported with the long-form suggestion.
func (p *parser) optionName(dash Token) (Token, bool) {
	if !p.at(TokenIdentifier) || p.peek().Offset != dash.End() {
		p.record(ParseUnexpectedToken, dash, "")
		return Token{}, false
	}
	name := p.advance()
	if dash.Kind == TokenSingleDash && utf8.RuneCountInString(name.Text) > 1 {
		p.recordSpan(ParseShortNameTooLong, dash.Offset, name.End(), "--"+name.Text)
	}
	return name, true
}

// isConstraintName reports whether text is a well-formed type-constraint
// name: a letter followed by letters, digits, or underscores. Hyphens and
// dots lex into identifiers but are not legal constraint spellings.
func isConstraintName(text string) bool {
	for i, r := range text {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return text != ""
}
