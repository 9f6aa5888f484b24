package stackl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
)

var (
	ErrUnknownOpcode     = errors.New("unknown operator")
	ErrMissingOperand    = errors.New("missing operand")
	ErrExtraOperand      = errors.New("unexpected extra operand")
	ErrEmptyInstruction  = errors.New("empty instruction")
	ErrUnresolvedOperand = errors.New("operand is neither a variable nor an integer")
	ErrInvalidTarget     = errors.New("assignment target is not a variable name")
)

// RuntimeError stops an interpreter run. Op is the mnemonic of the failing
// instruction as it appeared in the S text. Line is zero for instructions
// executed through Exec.
type RuntimeError struct {
	Line   int    `json:"line,omitempty"`
	Op     string `json:"op"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func newRuntimeError(line int, op string, err error) *RuntimeError {
	return &RuntimeError{Line: line, Op: op, Reason: err.Error(), Err: err}
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Interpreter executes S. The operand stack and the variable store belong to
// the instance; two interpreters never share state.
type Interpreter struct {
	out   io.Writer
	stack *Stack
	vars  map[string]int64
	opts  interpreterOptions
}

func NewInterpreter(out io.Writer, opts ...InterpreterOption) *Interpreter {
	var options interpreterOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Interpreter{
		out:   out,
		stack: NewStack(options.stackLimit),
		vars:  make(map[string]int64),
		opts:  options,
	}
}

// Run executes S text from r line by line until r is exhausted or an
// instruction fails. Effects of instructions before the failing one are kept.
func (in *Interpreter) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		text, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read instructions: %w", readErr)
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			ins, err := ParseInstruction(text)
			if err != nil {
				return newRuntimeError(lineNo, fields[0], err)
			}
			if err := in.exec(lineNo, ins); err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

// RunProgram executes an in-memory program. Line numbers in errors count
// instructions from one.
func (in *Interpreter) RunProgram(p *Program) error {
	for i, ins := range p.Instructions {
		if err := in.exec(i+1, ins); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single instruction.
func (in *Interpreter) Exec(ins Instruction) error {
	return in.exec(0, ins)
}

func (in *Interpreter) exec(line int, ins Instruction) error {
	var err error
	switch ins.Op {
	case OpPush:
		err = in.stack.Push(ins.Operand)
	case OpAdd:
		err = in.arith(func(a, b int64) int64 { return a + b })
	case OpSub:
		err = in.arith(func(a, b int64) int64 { return a - b })
	case OpMult:
		err = in.arith(func(a, b int64) int64 { return a * b })
	case OpAssign:
		err = in.assign()
	case OpPrint:
		err = in.print()
	default:
		err = ErrUnknownOpcode
	}
	if in.opts.trace != nil {
		in.opts.trace.Printf("%d: %-10s depth=%d err=%v", line, ins, in.stack.Len(), err)
	}
	if err != nil {
		return newRuntimeError(line, ins.Op.String(), err)
	}
	return nil
}

// arith pops the right operand, then the left one, and pushes fn(left, right).
// The left operand is the one pushed earlier.
func (in *Interpreter) arith(fn func(a, b int64) int64) error {
	right, err := in.popValue()
	if err != nil {
		return err
	}
	left, err := in.popValue()
	if err != nil {
		return err
	}
	return in.stack.Push(strconv.FormatInt(fn(left, right), 10))
}

func (in *Interpreter) assign() error {
	value, err := in.popValue()
	if err != nil {
		return err
	}
	name, err := in.stack.Pop()
	if err != nil {
		return err
	}
	if in.opts.strict && !isIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, name)
	}
	in.vars[name] = value
	return nil
}

func (in *Interpreter) print() error {
	v, err := in.popValue()
	if err != nil {
		return err
	}
	buf := strconv.AppendInt(make([]byte, 0, 24), v, 10)
	buf = append(buf, '\n')
	if _, err := in.out.Write(buf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (in *Interpreter) popValue() (int64, error) {
	cell, err := in.stack.Pop()
	if err != nil {
		return 0, err
	}
	return in.resolve(cell)
}

// resolve looks cell up as a variable first, then as a decimal integer.
// Anything else is zero unless strict operands are enabled.
func (in *Interpreter) resolve(cell string) (int64, error) {
	if v, ok := in.vars[cell]; ok {
		return v, nil
	}
	if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return v, nil
	}
	if in.opts.strict {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedOperand, cell)
	}
	return 0, nil
}

// Reset clears the operand stack and the variable store.
func (in *Interpreter) Reset() {
	in.stack.Reset()
	clear(in.vars)
}

// Vars returns a copy of the variable store.
func (in *Interpreter) Vars() map[string]int64 {
	return maps.Clone(in.vars)
}

// Depth returns the number of cells on the operand stack.
func (in *Interpreter) Depth() int {
	return in.stack.Len()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !isLetter(ch) {
			return false
		}
	}
	return true
}
