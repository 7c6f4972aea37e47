package collections

// Stack is a LIFO container. The zero value is an empty stack ready to use.
// It is not safe for concurrent use.
type Stack[T any] struct {
	// items holds the elements, top of the stack last.
	items []T
}

// NewStack creates a stack pre-filled with items, the last one on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: append([]T(nil), items...)}
}

// All returns a copy of the elements, bottom first.
func (s *Stack[T]) All() []T {
	return append([]T{}, s.items...)
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push puts item on top of the stack and returns it.
func (s *Stack[T]) Push(item T) T {
	s.items = append(s.items, item)

	return item
}

// Pop removes and returns the top element.
// The second return value is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T

	if len(s.items) == 0 {
		return zero, false
	}

	last := len(s.items) - 1
	item := s.items[last]

	// Release the reference held by the backing array.
	s.items[last] = zero
	s.items = s.items[:last]

	return item, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[len(s.items)-1], true
}
