package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/WJQSERVER/stackl"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const usage = `stacklc: compile L programs to S and run them.

Usage:
  stacklc <command> [flags] [file]

Commands:
  lex [-json] [file]       print the token stream
  compile [-json] [file]   translate L to S
  run [flags] [file]       execute S
  exec [flags] [file]      translate L and execute the result

Reads standard input when no file is given.
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	c := &command{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "lex":
		return c.lex(args[1:])
	case "compile":
		return c.compile(args[1:])
	case "run":
		return c.runS(args[1:])
	case "exec":
		return c.exec(args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %q\n", args[0])
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
}

type command struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	jsonOutput     bool
}

func (c *command) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.BoolVar(&c.jsonOutput, "json", false, "Output in JSON format")
	return fs
}

// open returns the file named by the single positional argument, or stdin.
func (c *command) open(fs *flag.FlagSet) (io.ReadCloser, error) {
	switch fs.NArg() {
	case 0:
		return io.NopCloser(c.stdin), nil
	case 1:
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", fs.Arg(0), err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
}

func (c *command) writeJSON(w io.Writer, v any) error {
	if err := json.MarshalWrite(w, v, jsontext.Expand(true), jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// report writes err to stderr, as JSON when -json is set and err is one of
// the diagnostic types.
func (c *command) report(err error) {
	if c.jsonOutput {
		var syntaxErr *stackl.SyntaxError
		var runtimeErr *stackl.RuntimeError
		switch {
		case errors.As(err, &syntaxErr):
			if c.writeJSON(c.stderr, syntaxErr) == nil {
				return
			}
		case errors.As(err, &runtimeErr):
			if c.writeJSON(c.stderr, runtimeErr) == nil {
				return
			}
		}
	}
	fmt.Fprintf(c.stderr, "Error: %v\n", err)
}

type tokenRecord struct {
	Type    stackl.TokenType `json:"type"`
	Literal string           `json:"literal"`
	Line    int              `json:"line"`
	Column  int              `json:"column"`
}

func (c *command) lex(args []string) int {
	fs := c.newFlagSet("lex")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	in, err := c.open(fs)
	if err != nil {
		c.report(err)
		return exitError
	}
	defer in.Close()

	l := stackl.NewStreamLexer(in)
	var records []tokenRecord
	for {
		tok := l.NextToken()
		if c.jsonOutput {
			records = append(records, tokenRecord{Type: tok.Type, Literal: string(tok.Literal), Line: tok.Line, Column: tok.Column})
		} else {
			fmt.Fprintln(c.stdout, tok)
		}
		if tok.Type == stackl.ERROR {
			break
		}
	}
	if l.Err() != nil {
		c.report(l.Err())
		return exitError
	}
	if c.jsonOutput {
		if err := c.writeJSON(c.stdout, records); err != nil {
			c.report(err)
			return exitError
		}
	}
	return exitOK
}

func (c *command) compile(args []string) int {
	fs := c.newFlagSet("compile")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	in, err := c.open(fs)
	if err != nil {
		c.report(err)
		return exitError
	}
	defer in.Close()

	if !c.jsonOutput {
		if err := stackl.CompileReader(in, c.stdout); err != nil {
			c.report(err)
			return exitError
		}
		return exitOK
	}

	src, err := io.ReadAll(in)
	if err != nil {
		c.report(err)
		return exitError
	}
	prog, err := stackl.CompileProgram(src)
	if err != nil {
		c.report(err)
		return exitError
	}
	if err := c.writeJSON(c.stdout, prog); err != nil {
		c.report(err)
		return exitError
	}
	return exitOK
}

type runFlags struct {
	strict bool
	limit  int
	trace  bool
}

func (c *command) runFlagSet(name string) (*flag.FlagSet, *runFlags) {
	fs := c.newFlagSet(name)
	rf := &runFlags{}
	fs.BoolVar(&rf.strict, "strict", false, "Fail on operands that are neither variables nor integers")
	fs.IntVar(&rf.limit, "stack", 0, "Maximum operand stack depth (0 means unbounded)")
	fs.BoolVar(&rf.trace, "trace", false, "Log every executed instruction to stderr")
	return fs, rf
}

func (c *command) interpreterOptions(rf *runFlags) []stackl.InterpreterOption {
	var opts []stackl.InterpreterOption
	if rf.strict {
		opts = append(opts, stackl.WithStrictOperands())
	}
	if rf.limit > 0 {
		opts = append(opts, stackl.WithStackLimit(rf.limit))
	}
	if rf.trace {
		opts = append(opts, stackl.WithTrace(log.New(c.stderr, "trace: ", 0)))
	}
	return opts
}

// finish maps an interpreter error to an exit code. A runtime error ends the
// run but not abnormally.
func (c *command) finish(err error) int {
	if err == nil {
		return exitOK
	}
	c.report(err)
	var runtimeErr *stackl.RuntimeError
	if errors.As(err, &runtimeErr) {
		return exitOK
	}
	return exitError
}

func (c *command) runS(args []string) int {
	fs, rf := c.runFlagSet("run")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if rf.limit < 0 {
		fmt.Fprintln(c.stderr, "Error: -stack must not be negative")
		return exitUsage
	}
	in, err := c.open(fs)
	if err != nil {
		c.report(err)
		return exitError
	}
	defer in.Close()

	return c.finish(stackl.Run(in, c.stdout, c.interpreterOptions(rf)...))
}

func (c *command) exec(args []string) int {
	fs, rf := c.runFlagSet("exec")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if rf.limit < 0 {
		fmt.Fprintln(c.stderr, "Error: -stack must not be negative")
		return exitUsage
	}
	in, err := c.open(fs)
	if err != nil {
		c.report(err)
		return exitError
	}
	defer in.Close()

	var s bytes.Buffer
	if err := stackl.CompileReader(in, &s); err != nil {
		c.report(err)
		return exitError
	}
	return c.finish(stackl.Run(&s, c.stdout, c.interpreterOptions(rf)...))
}
