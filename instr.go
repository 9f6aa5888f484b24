package stackl

import (
	"fmt"
	"strings"
)

// Opcode identifies an S instruction. The set is closed; text that names
// anything else fails in ParseInstruction and never reaches the interpreter.
type Opcode int

const (
	OpPush Opcode = iota
	OpAdd
	OpSub
	OpMult
	OpAssign
	OpPrint
)

var opcodeNames = [...]string{
	OpPush:   "PUSH",
	OpAdd:    "ADD",
	OpSub:    "SUB",
	OpMult:   "MULT",
	OpAssign: "ASSIGN",
	OpPrint:  "PRINT",
}

func (op Opcode) String() string {
	if op >= 0 && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// LookupOpcode maps an S mnemonic to its Opcode. Mnemonics are case-sensitive.
func LookupOpcode(name string) (Opcode, bool) {
	for op, n := range opcodeNames {
		if n == name {
			return Opcode(op), true
		}
	}
	return 0, false
}

func (op Opcode) MarshalText() ([]byte, error) {
	if op < 0 || int(op) >= len(opcodeNames) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOpcode, op)
	}
	return []byte(opcodeNames[op]), nil
}

func (op *Opcode) UnmarshalText(text []byte) error {
	v, ok := LookupOpcode(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOpcode, text)
	}
	*op = v
	return nil
}

// Instruction is one line of S. Operand is only meaningful for OpPush.
type Instruction struct {
	Op      Opcode `json:"op"`
	Operand string `json:"operand,omitempty"`
}

func Push(operand string) Instruction {
	return Instruction{Op: OpPush, Operand: operand}
}

func (ins Instruction) String() string {
	if ins.Op == OpPush {
		return "PUSH " + ins.Operand
	}
	return ins.Op.String()
}

// ParseInstruction decodes a single non-blank line of S text.
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Instruction{}, ErrEmptyInstruction
	}
	op, ok := LookupOpcode(fields[0])
	if !ok {
		return Instruction{}, ErrUnknownOpcode
	}
	if op != OpPush {
		return Instruction{Op: op}, nil
	}
	switch len(fields) {
	case 1:
		return Instruction{}, ErrMissingOperand
	case 2:
		return Push(fields[1]), nil
	default:
		return Instruction{}, ErrExtraOperand
	}
}
