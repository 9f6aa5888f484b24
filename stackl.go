// Package stackl compiles the L language into S, a line-oriented stack
// machine language, and executes S.
//
// A program flows through three pull-based stages: a lexer producing tokens
// on demand, a single-pass recursive-descent Parser emitting S instructions
// as it recognizes the grammar, and an Interpreter executing S line by line.
package stackl

import (
	"fmt"
	"io"
)

// Lex returns the tokens of data up to and including the terminating ERROR
// token.
func Lex(data []byte) []Token {
	l := NewLexer(data)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == ERROR {
			return tokens
		}
	}
}

// Compile translates L source into S text written to w.
func Compile(src []byte, w io.Writer) error {
	return NewParser(NewLexer(src), NewEncoder(w)).Parse()
}

// CompileReader translates L read from r into S text written to w. Source is
// consumed one character at a time, never past the terminating "end".
func CompileReader(r io.Reader, w io.Writer) error {
	l := NewStreamLexer(r)
	err := NewParser(l, NewEncoder(w)).Parse()
	if l.Err() != nil {
		return fmt.Errorf("read source: %w", l.Err())
	}
	return err
}

// CompileProgram translates L source into an in-memory program.
func CompileProgram(src []byte) (*Program, error) {
	prog := &Program{}
	if err := NewParser(NewLexer(src), prog).Parse(); err != nil {
		return prog, err
	}
	return prog, nil
}

// Run executes S text read from r on a fresh interpreter, writing PRINT
// output to w.
func Run(r io.Reader, w io.Writer, opts ...InterpreterOption) error {
	return NewInterpreter(w, opts...).Run(r)
}

// Execute compiles src and, if it compiles, runs it on a fresh interpreter.
func Execute(src []byte, w io.Writer, opts ...InterpreterOption) error {
	prog, err := CompileProgram(src)
	if err != nil {
		return err
	}
	return NewInterpreter(w, opts...).RunProgram(prog)
}
