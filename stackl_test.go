package stackl_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/WJQSERVER/stackl"
)

func TestExecute_E2E(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = 1 + 2; print x; end", "3\n"},
		{"x = 2 - 1; print x; end", "1\n"},
		{"x = 2 + 3 * 4; print x; end", "14\n"},
		{"x = (2 + 3) * 4; print x; end", "20\n"},
		{"x = 10 - 2 * 3; print x; end", "4\n"},
		{"x = 8 - 4 - 2; print x; end", "6\n"},
		{"a = 5; b = a * a - 1; print b; print a; end", "24\n5\n"},
		{"x = y + 1; print x; end", "1\n"},
		{"print q; end", "0\n"},
		{"end", ""},
		{"n = 3;\nn = n * n;\nn = n * n;\nprint n;\nend\n", "81\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := stackl.Execute([]byte(tt.src), &out); err != nil {
			t.Errorf("%q: Execute() error = %v", tt.src, err)
			continue
		}
		if out.String() != tt.want {
			t.Errorf("%q: output = %q, want %q", tt.src, out.String(), tt.want)
		}
	}
}

func TestTwoStagePipeline_E2E(t *testing.T) {
	src := "x = 1 + 2; print x; end"

	var s bytes.Buffer
	if err := stackl.CompileReader(strings.NewReader(src), &s); err != nil {
		t.Fatalf("CompileReader() error = %v", err)
	}
	want := "PUSH x\nPUSH 1\nPUSH 2\nADD\nASSIGN\nPUSH x\nPRINT\n\n"
	if s.String() != want {
		t.Fatalf("S = %q, want %q", s.String(), want)
	}

	var out bytes.Buffer
	if err := stackl.Run(&s, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "3\n" {
		t.Errorf("output = %q, want %q", out.String(), "3\n")
	}
}

func TestCompileReaderMatchesCompile(t *testing.T) {
	sources := []string{
		"x = 1 + 2; print x; end",
		"total = (a + b) * (c - d) * 2;\nprint total;\nend",
		"x = 1; y = ; end",
		"q = 7 # 3; end",
	}
	for _, src := range sources {
		var want, got bytes.Buffer
		wantErr := stackl.Compile([]byte(src), &want)
		gotErr := stackl.CompileReader(iotest.OneByteReader(strings.NewReader(src)), &got)

		if got.String() != want.String() {
			t.Errorf("%q: CompileReader output %q, Compile output %q", src, got.String(), want.String())
		}
		if (gotErr == nil) != (wantErr == nil) || (gotErr != nil && gotErr.Error() != wantErr.Error()) {
			t.Errorf("%q: CompileReader error %v, Compile error %v", src, gotErr, wantErr)
		}
	}
}

func TestExecuteSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := stackl.Execute([]byte("print a; x = ; end"), &out)

	var syntaxErr *stackl.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Execute() error = %v, want *SyntaxError", err)
	}
	if out.Len() != 0 {
		t.Errorf("Execute() ran a program that did not compile: %q", out.String())
	}
}

func TestExecuteStrict(t *testing.T) {
	var out bytes.Buffer
	err := stackl.Execute([]byte("x = 1; print x; y = x + z; print y; end"), &out, stackl.WithStrictOperands())
	if !errors.Is(err, stackl.ErrUnresolvedOperand) {
		t.Fatalf("Execute() error = %v, want %v", err, stackl.ErrUnresolvedOperand)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
}

func TestLex(t *testing.T) {
	tokens := stackl.Lex([]byte("print x"))
	want := []stackl.TokenType{stackl.PRINT, stackl.IDENT, stackl.ERROR}
	if len(tokens) != len(want) {
		t.Fatalf("Lex() returned %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d = %s, want %s", i, tok.Type, want[i])
		}
	}
}
