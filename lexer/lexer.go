// Package lexer turns Venus source text into a token stream.
//
// Scanning is single-pass, left-to-right, with at most one character of
// lookahead. The first lexical error aborts the whole pass: no partial
// token list is ever returned.
package lexer

import (
	"github.com/qexat/venusc/diag"
	"github.com/qexat/venusc/tokens"
)

// Lex scans source and returns its tokens, terminated by exactly one EOF
// token, or the first lexical error encountered. The returned error, when
// non-nil, is always a diag.SyntaxError.
func Lex(source string) ([]tokens.Token, error) {
	return New(source).Lex()
}

// Lexer holds the scanning state for one source string. A Lexer is built
// per input and not reused.
type Lexer struct {
	source  string
	start   int // beginning of the token being assembled
	current int // scan head
}

// New returns a Lexer positioned at the beginning of source.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

// peek returns the character under the scan head, or NUL at end of input.
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

// advance moves the scan head forward one character. It never moves past
// the end of the source.
func (l *Lexer) advance() {
	if l.current < len(l.source) {
		l.current++
	}
}

// consume returns the character under the scan head and advances past it.
func (l *Lexer) consume() byte {
	ch := l.peek()
	l.advance()
	return ch
}

// match consumes the next character iff it equals ch.
func (l *Lexer) match(ch byte) bool {
	if l.peek() != ch {
		return false
	}
	l.advance()
	return true
}

// resetStart discards the characters scanned so far and starts a new token
// at the scan head.
func (l *Lexer) resetStart() {
	l.start = l.current
}

// lexeme returns the source substring of the token being assembled.
func (l *Lexer) lexeme() string {
	return l.source[l.start:l.current]
}

// span returns the interval of the token being assembled.
func (l *Lexer) span() tokens.Span {
	return tokens.Span{Start: l.start, End: l.current}
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || 'A' <= ch && ch <= 'Z' || 'a' <= ch && ch <= 'z'
}

func isIdentifierPart(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// scanIdentifier munches the longest identifier-shaped run, then classifies
// the lexeme: keywords and word-shaped operators are told apart from plain
// identifiers by table lookup, after scanning rather than during.
func (l *Lexer) scanIdentifier() tokens.Kind {
	for isIdentifierPart(l.peek()) {
		l.advance()
	}
	if kind, ok := tokens.Lookup(l.lexeme()); ok {
		return kind
	}
	return tokens.Identifier
}

// scanNatural munches the longest run of decimal digits. No sign, no radix
// prefixes, no floating point.
func (l *Lexer) scanNatural() tokens.Kind {
	for isDigit(l.peek()) {
		l.advance()
	}
	return tokens.Natural
}

// scanString munches until the closing quote. The opening quote has already
// been consumed. A string literal never spans a line: a newline or the end
// of input before the closing quote is an unclosed-string error whose span
// covers the scan attempted so far.
func (l *Lexer) scanString() (tokens.Kind, diag.SyntaxError) {
	for !l.atEnd() && l.peek() != '"' && l.peek() != '\n' {
		l.advance()
	}

	if l.atEnd() || l.peek() == '\n' {
		return 0, &diag.UnclosedStringError{At: l.span()}
	}

	l.advance() // closing quote
	return tokens.String, nil
}

// scanToken consumes characters until a token kind is determined.
// Whitespace resets the token start and loops without emitting; every other
// branch settles the kind with at most one character of lookahead.
func (l *Lexer) scanToken() (tokens.Kind, diag.SyntaxError) {
	for {
		if l.atEnd() {
			return tokens.EOF, nil
		}

		switch ch := l.consume(); {
		case ch == ' ' || ch == '\r' || ch == '\t' || ch == '\n':
			l.resetStart()
		case isIdentifierStart(ch):
			return l.scanIdentifier(), nil
		case isDigit(ch):
			return l.scanNatural(), nil
		default:
			switch ch {
			case '[':
				return tokens.LeftBracket, nil
			case '(':
				// "()" is one unit literal, not two groupers.
				if l.match(')') {
					return tokens.Unit, nil
				}
				return tokens.LeftParen, nil
			case ']':
				return tokens.RightBracket, nil
			case ')':
				return tokens.RightParen, nil
			case '"':
				return l.scanString()
			case '^':
				return tokens.Caret, nil
			case '-':
				if l.match('>') {
					return tokens.RightArrow, nil
				}
				return tokens.Minus, nil
			case '+':
				return tokens.Plus, nil
			case '/':
				return tokens.Slash, nil
			case '*':
				return tokens.Star, nil
			case ':':
				if l.match('=') {
					return tokens.ColonEqual, nil
				}
				return tokens.Colon, nil
			case ',':
				return tokens.Comma, nil
			case '%':
				return tokens.Percent, nil
			case '.':
				return tokens.Period, nil
			case ';':
				return tokens.Semicolon, nil
			case '=':
				return tokens.Equal, nil
			case '>':
				if l.match('=') {
					return tokens.GreaterEqual, nil
				}
				return tokens.Greater, nil
			case '<':
				if l.match('=') {
					return tokens.LessEqual, nil
				}
				return tokens.Less, nil
			default:
				return 0, &diag.UnrecognizedCharacterError{At: l.span(), Character: l.lexeme()}
			}
		}
	}
}

// build makes a token of the given kind out of the current lexeme.
func (l *Lexer) build(kind tokens.Kind) tokens.Token {
	return tokens.Token{Kind: kind, Lexeme: l.lexeme(), Offset: l.start}
}

// Lex scans the whole source. On success the token sequence ends with
// exactly one EOF token whose lexeme is empty and whose offset is the
// source length. On the first error, scanning aborts and no tokens are
// returned.
func (l *Lexer) Lex() ([]tokens.Token, error) {
	var list []tokens.Token

	for !l.atEnd() {
		l.resetStart()

		kind, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if kind == tokens.EOF {
			// trailing whitespace ran out of characters
			break
		}

		list = append(list, l.build(kind))
	}

	l.resetStart()
	list = append(list, l.build(tokens.EOF))

	return list, nil
}
