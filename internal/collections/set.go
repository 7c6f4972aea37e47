package collections

import (
	"iter"
	"slices"
)

// Set is a set that remembers insertion order.
// The zero value is not usable, create sets with NewSet.
type Set[T comparable] struct {
	// order holds the elements in insertion order.
	order []T
	// index maps each element to its position in order.
	index map[T]int
}

// NewSet creates a set holding items, duplicates dropped.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		order: make([]T, 0, len(items)),
		index: make(map[T]int, len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts item and reports whether it was not present before.
func (s *Set[T]) Add(item T) bool {
	if _, exists := s.index[item]; exists {
		return false
	}

	s.index[item] = len(s.order)
	s.order = append(s.order, item)

	return true
}

// Has reports whether item is in the set.
func (s *Set[T]) Has(item T) bool {
	_, exists := s.index[item]

	return exists
}

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	position, exists := s.index[item]
	if !exists {
		return false
	}

	delete(s.index, item)
	s.order = slices.Delete(s.order, position, position+1)

	for i := position; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}

	return true
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.order)
}

// All iterates over the elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.order)
}
