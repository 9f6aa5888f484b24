package stackl

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

var ErrEncoderClosed = errors.New("encoder is closed")

// Emitter receives the instructions produced by the parser. Emit stages an
// instruction, Flush commits everything staged since the previous Flush, and
// Close marks the end of the instruction stream.
type Emitter interface {
	Emit(ins Instruction) error
	Flush() error
	Close() error
}

type encoderOptions struct {
	trailingBlank bool
}

type EncoderOption func(*encoderOptions)

// WithoutTrailingBlank suppresses the blank line Close normally writes, for
// callers that splice S fragments together.
func WithoutTrailingBlank() EncoderOption {
	return func(o *encoderOptions) {
		o.trailingBlank = false
	}
}

// Encoder writes instructions as S text, one per line.
type Encoder struct {
	w    io.Writer
	buf  *bytes.Buffer
	opts encoderOptions
}

func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	options := encoderOptions{trailingBlank: true}
	for _, opt := range opts {
		opt(&options)
	}
	return &Encoder{w: w, buf: getBuffer(), opts: options}
}

func (enc *Encoder) Emit(ins Instruction) error {
	if enc.buf == nil {
		return ErrEncoderClosed
	}
	if ins.Op == OpPush {
		enc.buf.WriteString("PUSH ")
		enc.buf.WriteString(ins.Operand)
	} else {
		enc.buf.WriteString(ins.Op.String())
	}
	enc.buf.WriteByte('\n')
	return nil
}

func (enc *Encoder) Flush() error {
	if enc.buf == nil {
		return ErrEncoderClosed
	}
	if enc.buf.Len() == 0 {
		return nil
	}
	_, err := enc.w.Write(enc.buf.Bytes())
	enc.buf.Reset()
	return err
}

// Close flushes pending instructions and writes the end-of-stream blank line.
// The encoder cannot be used afterwards.
func (enc *Encoder) Close() error {
	if enc.buf == nil {
		return ErrEncoderClosed
	}
	if enc.opts.trailingBlank {
		enc.buf.WriteByte('\n')
	}
	err := enc.Flush()
	putBuffer(enc.buf)
	enc.buf = nil
	return err
}

// Program collects instructions in memory. Instructions staged after the last
// Flush are not part of Instructions.
type Program struct {
	Instructions []Instruction `json:"instructions"`
	pending      []Instruction
}

func (p *Program) Emit(ins Instruction) error {
	p.pending = append(p.pending, ins)
	return nil
}

func (p *Program) Flush() error {
	p.Instructions = append(p.Instructions, p.pending...)
	p.pending = p.pending[:0]
	return nil
}

func (p *Program) Close() error {
	return p.Flush()
}

// WriteTo encodes the program as S text terminated by a blank line.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := NewEncoder(cw)
	for _, ins := range p.Instructions {
		enc.Emit(ins)
	}
	err := enc.Close()
	return cw.n, err
}

func (p *Program) String() string {
	var sb strings.Builder
	p.WriteTo(&sb)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
