// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// equal values must come out of an in-order walk in the order they
// were inserted, whatever rotations happened in between
func TestTiesKeepInsertionOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1234))

	for round := 0; round < 2000; round += 1 {
		n := 1 + r.Intn(40)

		tree := New(nil)
		inserted := make(map[*Node]int, n)

		for i := 0; i < n; i += 1 {
			err := tree.Insert(r.Intn(4))
			if !assert.Nil(t, err, "round: %d  insert failed", round) {
				return
			}

			// label the single node not seen before
			tree.Walk(func(p *Node) bool {
				if _, ok := inserted[p]; !ok {
					inserted[p] = i
				}
				return true
			})
		}
		if !assert.Equal(t, n, len(inserted), "round: %d  node count", round) {
			return
		}

		last := make(map[int]int)
		ok := true
		tree.Walk(func(p *Node) bool {
			index := inserted[p]
			if previous, seen := last[p.value]; seen && previous > index {
				t.Errorf("round: %d  value: %d  index: %d  walked after index: %d", round, p.value, index, previous)
				ok = false
				return false
			}
			last[p.value] = index
			return true
		})
		if !ok {
			return
		}
		assert.Nil(t, tree.Check(), "round: %d  check failed", round)
	}
}

func TestTiesAfterRotation(t *testing.T) {
	tree := New(nil)

	assert.Nil(t, tree.Insert(10), "insert failed")
	first := tree.root
	assert.Nil(t, tree.Insert(10), "insert failed")
	second := first.right
	assert.Nil(t, tree.Insert(10), "insert failed")
	third := second.right

	assert.Equal(t, second, tree.root, "rotated root")
	assert.Equal(t, first, tree.root.left, "first twin moved")
	assert.Equal(t, third, tree.root.right, "third twin moved")
	assert.Nil(t, tree.Check(), "check failed")
}
