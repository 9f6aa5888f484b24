package stackl

import (
	"errors"
	"strings"
)

var (
	// ErrStackOverflow is returned when a cell is pushed to a Stack that has
	// reached its limit.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a cell is popped from an empty Stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// A Stack is a LIFO queue of text cells. A cell holds either an integer in
// decimal or a variable name; which one is decided when the cell is consumed.
type Stack struct {
	limit int
	cells []string
}

// NewStack returns a Stack holding at most limit cells. A limit of zero means
// the Stack is unbounded.
func NewStack(limit int) *Stack {
	if limit < 0 {
		panic("stack limit must not be negative")
	}
	return &Stack{limit: limit}
}

// Push a cell to the Stack. If the Stack is already full, the cell is not
// pushed and ErrStackOverflow is returned.
func (stack *Stack) Push(cell string) error {
	if stack.IsFull() {
		return ErrStackOverflow
	}
	stack.cells = append(stack.cells, cell)
	return nil
}

// Pop a cell from the Stack. If the Stack is empty, the cell returned is
// empty and ErrStackUnderflow is returned.
func (stack *Stack) Pop() (string, error) {
	if stack.IsEmpty() {
		return "", ErrStackUnderflow
	}
	top := len(stack.cells) - 1
	cell := stack.cells[top]
	stack.cells = stack.cells[:top]
	return cell, nil
}

// IsFull returns true when a limited Stack holds limit cells. An unbounded
// Stack is never full.
func (stack *Stack) IsFull() bool {
	return stack.limit > 0 && len(stack.cells) >= stack.limit
}

// IsEmpty returns true when the Stack holds no cells. Popping from an empty
// Stack will result in a stack underflow.
func (stack *Stack) IsEmpty() bool {
	return len(stack.cells) == 0
}

func (stack *Stack) Len() int {
	return len(stack.cells)
}

// Reset drops every cell but keeps the limit.
func (stack *Stack) Reset() {
	stack.cells = stack.cells[:0]
}

// String lists the cells bottom first.
func (stack *Stack) String() string {
	return "[" + strings.Join(stack.cells, ", ") + "]"
}
