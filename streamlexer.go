package stackl

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"
)

// This file contains the stream-based lexer.

// pushback 是容量为一的回退缓冲区. fill 存入一个字符, drain 取出它.
// 读取新输入之前总是先清空缓冲区.
type pushback struct {
	ch   rune
	full bool
}

func (b *pushback) fill(ch rune) {
	if b.full {
		panic("stackl: pushback buffer already holds a character")
	}
	b.ch = ch
	b.full = true
}

func (b *pushback) drain() (rune, bool) {
	if !b.full {
		return 0, false
	}
	b.full = false
	return b.ch, true
}

// StreamLexer 是一个从 io.Reader 读取数据的词法分析器.
// It reads one character at a time and never looks further ahead than the
// single character held in its pushback buffer.
type StreamLexer struct {
	r    *bufio.Reader
	back pushback
	done bool
	err  error

	line, column         int
	prevLine, prevColumn int

	// Reusable buffer for building literals.
	literalBuf bytes.Buffer
}

// NewStreamLexer creates a new stream-based lexer.
func NewStreamLexer(r io.Reader) *StreamLexer {
	return &StreamLexer{r: bufio.NewReader(r), line: 1}
}

// Err returns the first read error other than io.EOF, if any. The token
// stream ends with an ERROR token either way.
func (l *StreamLexer) Err() error {
	return l.err
}

// readChar returns the next character, draining the pushback buffer before
// touching the reader. ok is false once input is exhausted.
func (l *StreamLexer) readChar() (rune, bool) {
	ch, ok := l.back.drain()
	if !ok {
		if l.done {
			return 0, false
		}
		var err error
		ch, _, err = l.r.ReadRune()
		if err != nil {
			l.done = true
			if !errors.Is(err, io.EOF) {
				l.err = err
			}
			return 0, false
		}
	}
	l.prevLine, l.prevColumn = l.line, l.column
	if ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return ch, true
}

// unreadChar hands ch back so the next readChar returns it first.
func (l *StreamLexer) unreadChar(ch rune) {
	l.back.fill(ch)
	l.line, l.column = l.prevLine, l.prevColumn
}

func (l *StreamLexer) NextToken() Token {
	ch, ok := l.readChar()
	for ok && unicode.IsSpace(ch) {
		ch, ok = l.readChar()
	}
	if !ok {
		return Token{Type: ERROR, Literal: []byte{}, Line: l.line, Column: l.column + 1}
	}
	line, col := l.line, l.column

	switch {
	case isLetter(ch):
		literal := l.readWhile(ch, isLetter)
		return Token{Type: LookupIdentifier(literal), Literal: literal, Line: line, Column: col}
	case isDigit(ch):
		return Token{Type: INT, Literal: l.readWhile(ch, isDigit), Line: line, Column: col}
	}

	tt, ok := singleCharTokens[ch]
	if !ok {
		tt = ERROR
	}
	return Token{Type: tt, Literal: utf8.AppendRune(nil, ch), Line: line, Column: col}
}

// readWhile collects first and every following character accepted by fn. The
// first rejected character is pushed back for the next token.
func (l *StreamLexer) readWhile(first rune, fn func(rune) bool) []byte {
	l.literalBuf.Reset()
	l.literalBuf.WriteRune(first)
	for {
		ch, ok := l.readChar()
		if !ok {
			break
		}
		if !fn(ch) {
			l.unreadChar(ch)
			break
		}
		l.literalBuf.WriteRune(ch)
	}
	c := make([]byte, l.literalBuf.Len())
	copy(c, l.literalBuf.Bytes())
	return c
}
