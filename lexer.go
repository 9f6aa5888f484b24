package stackl

import (
	"unicode"
	"unicode/utf8"
)

// Lexer 是基于字节切片的词法分析器. 产出的 Literal 直接引用 input, 不做复制.
type Lexer struct {
	input  []byte // 使用 []byte 避免复制
	pos    int    // index of the next unread byte
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// peekChar decodes the character at pos without consuming it. size is zero at
// end of input.
func (l *Lexer) peekChar() (rune, int) {
	if l.pos >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRune(l.input[l.pos:])
}

func (l *Lexer) advance(ch rune, size int) {
	l.pos += size
	if ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	ch, size := l.peekChar()
	line, col := l.line, l.column+1
	if size == 0 {
		return Token{Type: ERROR, Literal: []byte{}, Line: line, Column: col}
	}

	start := l.pos
	switch {
	case isLetter(ch):
		literal := l.readWhile(isLetter)
		return Token{Type: LookupIdentifier(literal), Literal: literal, Line: line, Column: col}
	case isDigit(ch):
		literal := l.readWhile(isDigit)
		return Token{Type: INT, Literal: literal, Line: line, Column: col}
	}

	l.advance(ch, size)
	tt, ok := singleCharTokens[ch]
	if !ok {
		tt = ERROR
	}
	return Token{Type: tt, Literal: l.input[start:l.pos], Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, size := l.peekChar()
		if size == 0 || !unicode.IsSpace(ch) {
			return
		}
		l.advance(ch, size)
	}
}

// readWhile consumes the maximal run of characters accepted by fn.
func (l *Lexer) readWhile(fn func(rune) bool) []byte {
	start := l.pos
	for {
		ch, size := l.peekChar()
		if size == 0 || !fn(ch) {
			break
		}
		l.advance(ch, size)
	}
	return l.input[start:l.pos]
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
