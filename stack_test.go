package stackl_test

import (
	"strconv"

	"github.com/WJQSERVER/stackl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stack", func() {

	buildStack := func(limit, n int) *stackl.Stack {
		stack := stackl.NewStack(limit)
		for i := 0; i < n; i++ {
			Expect(stack.Push(strconv.Itoa(i))).To(Succeed())
		}
		return stack
	}

	table := []struct {
		limit int
	}{
		// Skip limit 1 because a half full stack cannot be built
		{2}, {4}, {16}, {64}, {256},
	}

	for _, entry := range table {
		entry := entry

		Context("when the stack is full", func() {
			It("should be full and not empty", func() {
				stack := buildStack(entry.limit, entry.limit)
				Expect(stack.IsFull()).To(BeTrue())
				Expect(stack.IsEmpty()).To(BeFalse())
				Expect(stack.Len()).To(Equal(entry.limit))
			})

			It("should return a stack overflow when pushing", func() {
				stack := buildStack(entry.limit, entry.limit)
				Expect(stack.Push("x")).To(Equal(stackl.ErrStackOverflow))
				Expect(stack.Len()).To(Equal(entry.limit))
			})

			It("should pop cells in reverse order until it is empty", func() {
				stack := buildStack(entry.limit, entry.limit)
				for i := entry.limit - 1; i >= 0; i-- {
					cell, err := stack.Pop()
					Expect(err).To(BeNil())
					Expect(cell).To(Equal(strconv.Itoa(i)))
				}
				Expect(stack.IsEmpty()).To(BeTrue())
			})
		})

		Context("when the stack is half full", func() {
			It("should be neither full nor empty", func() {
				stack := buildStack(entry.limit, entry.limit/2)
				Expect(stack.IsFull()).To(BeFalse())
				Expect(stack.IsEmpty()).To(BeFalse())
			})

			It("should store cells until it is full", func() {
				stack := buildStack(entry.limit, entry.limit/2)
				for i := 0; i < entry.limit-entry.limit/2; i++ {
					Expect(stack.Push("x")).To(Succeed())
				}
				Expect(stack.IsFull()).To(BeTrue())
			})
		})

		Context("when the stack is empty", func() {
			It("should return a stack underflow when popping", func() {
				stack := buildStack(entry.limit, 0)
				cell, err := stack.Pop()
				Expect(err).To(Equal(stackl.ErrStackUnderflow))
				Expect(cell).To(BeEmpty())
			})
		})
	}

	Context("when the stack is unbounded", func() {
		It("should never be full", func() {
			stack := buildStack(0, 10000)
			Expect(stack.IsFull()).To(BeFalse())
			Expect(stack.Push("x")).To(Succeed())
		})
	})

	Context("when resetting a stack", func() {
		It("should drop every cell and keep the limit", func() {
			stack := buildStack(3, 3)
			stack.Reset()
			Expect(stack.IsEmpty()).To(BeTrue())
			Expect(stack.String()).To(Equal("[]"))
			for i := 0; i < 3; i++ {
				Expect(stack.Push("y")).To(Succeed())
			}
			Expect(stack.Push("y")).To(Equal(stackl.ErrStackOverflow))
		})
	})

	Context("when printing a stack", func() {
		It("should list cells bottom first", func() {
			stack := buildStack(0, 3)
			Expect(stack.String()).To(Equal("[0, 1, 2]"))
		})
	})

	Context("when building a stack with a negative limit", func() {
		It("should panic", func() {
			Expect(func() { stackl.NewStack(-1) }).To(Panic())
		})
	})
})
