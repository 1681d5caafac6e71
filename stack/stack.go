// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack

// initial number of slots, grows as needed
const initialSize = 16

// Stack - LIFO of items of any type
type Stack[T any] struct {
	items []T
}

// New - create an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, initialSize),
	}
}

// Push - add an item to the top of the stack
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop - remove and return the most recently pushed item
// the boolean is false if the stack was empty
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if 0 == n {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // do not retain a reference
	s.items = s.items[:n-1]
	return item, true
}

// Peek - return the top item without removing it
func (s *Stack[T]) Peek() (T, bool) {
	n := len(s.items)
	if 0 == n {
		var zero T
		return zero, false
	}
	return s.items[n-1], true
}

// IsEmpty - true if nothing is on the stack
func (s *Stack[T]) IsEmpty() bool {
	return 0 == len(s.items)
}

// Len - number of items on the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear - drop all items
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
