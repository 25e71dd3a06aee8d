// Package lexer turns source bytes into the token stream the parser
// consumes. The scanner shape (readChar stepping through a
// position/readPosition pair) follows internal/lexer.Lexer in this
// codebase's lineage; the character classes it recognizes are exactly
// spec.md §4.1.
package lexer

import (
	"github.com/levant47/lambda-calculus/internal/diagnostics"
	"github.com/levant47/lambda-calculus/internal/token"
)

// Lexer is a byte-by-byte scanner over a single source string.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New constructs a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isNameStart(ch byte) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' || ch == '_'
}

func isNameTail(ch byte) bool {
	return isNameStart(ch) || ch >= '0' && ch <= '9'
}

// nextToken scans exactly one token starting at the lexer's current
// position. ok is false at end of input or when the current byte starts no
// token.
func (l *Lexer) nextToken() (tok token.Token, ok bool) {
	if l.position >= len(l.input) {
		return token.Token{}, false
	}

	start := l.position

	switch {
	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.OpenParen, Text: "(", Offset: start}, true
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.CloseParen, Text: ")", Offset: start}, true
	case l.ch == '\\':
		l.readChar()
		return token.Token{Type: token.LambdaHeadStart, Text: "\\", Offset: start}, true
	case l.ch == '.':
		l.readChar()
		return token.Token{Type: token.LambdaHeadEnd, Text: ".", Offset: start}, true
	case l.ch == '=':
		l.readChar()
		return token.Token{Type: token.Equals, Text: "=", Offset: start}, true
	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.Semicolon, Text: ";", Offset: start}, true
	case isWhitespace(l.ch):
		for l.position < len(l.input) && isWhitespace(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.Whitespace, Text: l.input[start:l.position], Offset: start}, true
	case isNameStart(l.ch):
		for l.position < len(l.input) && isNameTail(l.ch) {
			l.readChar()
		}
		text := l.input[start:l.position]
		return token.Token{Type: token.Name, Text: text, Offset: start}, true
	default:
		return token.Token{}, false
	}
}

// Tokenize scans the entire input into a token list, or reports the byte
// offset of the first unrecognized byte.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for l.position < len(input) {
		tok, ok := l.nextToken()
		if !ok {
			return nil, &diagnostics.TokenizeError{Offset: l.position}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
