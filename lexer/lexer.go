// Package lexer scans Lox source text into a token stream.
//
// The scanner walks the full source as a single cursor rather than a
// per-line slice; line numbers are tracked incrementally whenever a
// newline is consumed.
package lexer

import (
	"strconv"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/token"
)

// Scanner tokenizes Lox source text, reporting errors through diags
// instead of a package-level sticky flag.
type Scanner struct {
	src     string
	start   int
	current int
	line    int
	diags   *diag.Diagnostics
	tokens  []token.Token
}

// New creates a Scanner over src that reports errors to diags.
func New(src string, diags *diag.Diagnostics) *Scanner {
	return &Scanner{src: src, line: 1, diags: diags}
}

// ScanTokens tokenizes the entire source and returns the token list,
// EOF-terminated.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the current character and returns true if it equals
// expected; otherwise it leaves the cursor untouched.
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(typ token.Type) {
	s.addLiteralToken(typ, nil)
}

func (s *Scanner) addLiteralToken(typ token.Type, literal interface{}) {
	lexeme := s.src[s.start:s.current]
	s.tokens = append(s.tokens, token.NewLiteral(typ, lexeme, literal, s.line))
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		if s.match('=') {
			s.addToken(token.NotEqual)
		} else {
			s.addToken(token.Not)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEq)
		} else {
			s.addToken(token.Greater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// ignored
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.diags.Report(s.line, "Unexpected character. "+string(c))
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && s.peek() != '\n' && !s.atEnd() {
		s.advance()
	}
	if s.atEnd() || s.peek() == '\n' {
		s.diags.Report(s.line, "Unterminated string.")
		return
	}
	s.advance() // closing quote
	literal := s.src[s.start+1 : s.current-1]
	s.addLiteralToken(token.String, literal)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	text := s.src[s.start:s.current]
	value, _ := strconv.ParseFloat(text, 64)
	s.addLiteralToken(token.Number, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	typ, ok := token.Keywords[text]
	if !ok {
		typ = token.Identifier
	}
	s.addToken(typ)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
