package stackl

import (
	"errors"
	"testing"
)

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		line    string
		want    Instruction
		wantErr error
	}{
		{"PUSH x", Push("x"), nil},
		{"  PUSH\t42  ", Push("42"), nil},
		{"PUSH -7", Push("-7"), nil},
		{"ADD", Instruction{Op: OpAdd}, nil},
		{"SUB", Instruction{Op: OpSub}, nil},
		{"MULT", Instruction{Op: OpMult}, nil},
		{"ASSIGN", Instruction{Op: OpAssign}, nil},
		{"PRINT", Instruction{Op: OpPrint}, nil},
		{"PRINT extra", Instruction{Op: OpPrint}, nil},
		{"PUSH", Instruction{}, ErrMissingOperand},
		{"PUSH 1 2", Instruction{}, ErrExtraOperand},
		{"FOO", Instruction{}, ErrUnknownOpcode},
		{"push x", Instruction{}, ErrUnknownOpcode},
		{"   ", Instruction{}, ErrEmptyInstruction},
	}
	for _, tt := range tests {
		got, err := ParseInstruction(tt.line)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseInstruction(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInstruction(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	for op, name := range opcodeNames {
		if got := Opcode(op).String(); got != name {
			t.Errorf("Opcode(%d).String() = %q, want %q", op, got, name)
		}
		back, ok := LookupOpcode(name)
		if !ok || back != Opcode(op) {
			t.Errorf("LookupOpcode(%q) = %v, %v; want %v, true", name, back, ok, Opcode(op))
		}
	}
	if got := Opcode(42).String(); got != "Opcode(42)" {
		t.Errorf("Opcode(42).String() = %q", got)
	}
	if _, err := Opcode(42).MarshalText(); !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("Opcode(42).MarshalText() error = %v, want %v", err, ErrUnknownOpcode)
	}
}

func TestOpcodeUnmarshalText(t *testing.T) {
	var op Opcode
	if err := op.UnmarshalText([]byte("MULT")); err != nil || op != OpMult {
		t.Fatalf("UnmarshalText(MULT) = %v, %v", op, err)
	}
	if err := op.UnmarshalText([]byte("DIV")); !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("UnmarshalText(DIV) error = %v, want %v", err, ErrUnknownOpcode)
	}
	if op != OpMult {
		t.Errorf("failed UnmarshalText changed opcode to %v", op)
	}
}

func TestInstructionString(t *testing.T) {
	if got := Push("x").String(); got != "PUSH x" {
		t.Errorf("got %q", got)
	}
	if got := (Instruction{Op: OpAssign}).String(); got != "ASSIGN" {
		t.Errorf("got %q", got)
	}
}
