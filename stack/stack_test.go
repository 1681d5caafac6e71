// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbuild/stack"
)

func TestEmpty(t *testing.T) {
	s := stack.New[int]()

	assert.True(t, s.IsEmpty(), "new stack not empty")
	assert.Equal(t, 0, s.Len(), "wrong length")

	v, ok := s.Pop()
	assert.False(t, ok, "pop from empty stack succeeded")
	assert.Equal(t, 0, v, "pop from empty stack returned a value")

	_, ok = s.Peek()
	assert.False(t, ok, "peek at empty stack succeeded")
}

func TestPushPop(t *testing.T) {
	s := stack.New[string]()

	items := []string{"one", "two", "three", "four"}
	for _, item := range items {
		s.Push(item)
	}
	assert.Equal(t, len(items), s.Len(), "wrong length after push")

	top, ok := s.Peek()
	assert.True(t, ok, "peek failed")
	assert.Equal(t, "four", top, "wrong top item")
	assert.Equal(t, len(items), s.Len(), "peek changed the length")

	for i := len(items) - 1; i >= 0; i -= 1 {
		v, ok := s.Pop()
		assert.True(t, ok, "pop failed at: %d", i)
		assert.Equal(t, items[i], v, "wrong item at: %d", i)
	}
	assert.True(t, s.IsEmpty(), "stack not empty after popping everything")
}

// push well beyond the initial size
func TestGrow(t *testing.T) {
	s := stack.New[int]()

	const n = 1000
	for i := 0; i < n; i += 1 {
		s.Push(i)
	}
	assert.Equal(t, n, s.Len(), "wrong length")

	for i := n - 1; i >= 0; i -= 1 {
		v, _ := s.Pop()
		if v != i {
			t.Fatalf("pop: %d  expected: %d", v, i)
		}
	}
}

func TestClear(t *testing.T) {
	s := stack.New[*int]()

	for i := 0; i < 5; i += 1 {
		v := i
		s.Push(&v)
	}
	s.Clear()

	assert.True(t, s.IsEmpty(), "stack not empty after clear")

	s.Push(nil)
	assert.Equal(t, 1, s.Len(), "stack unusable after clear")
}
