package stackl

import "log"

type interpreterOptions struct {
	strict     bool
	stackLimit int
	trace      *log.Logger
}

type InterpreterOption func(*interpreterOptions)

// WithStrictOperands makes operands that are neither a stored variable nor a
// decimal integer an error instead of zero. ASSIGN targets must then also be
// identifiers.
func WithStrictOperands() InterpreterOption {
	return func(o *interpreterOptions) {
		o.strict = true
	}
}

// WithStackLimit caps the operand stack at n cells. Zero means unbounded.
func WithStackLimit(n int) InterpreterOption {
	return func(o *interpreterOptions) {
		o.stackLimit = n
	}
}

// WithTrace logs every executed instruction to l.
func WithTrace(l *log.Logger) InterpreterOption {
	return func(o *interpreterOptions) {
		o.trace = l
	}
}
