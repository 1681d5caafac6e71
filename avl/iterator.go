// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbuild/stack"
)

// First - return the node with the lowest value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Walk - visit nodes in ascending order until fn returns false
//
// nodes have no parent pointers so the pending ancestors are kept on
// a stack
func (tree *Tree) Walk(fn func(*Node) bool) {
	pending := stack.New[*Node]()
	defer pending.Clear()

	p := tree.root
	for nil != p || !pending.IsEmpty() {
		for nil != p {
			pending.Push(p)
			p = p.left
		}
		p, _ = pending.Pop()
		if !fn(p) {
			return
		}
		p = p.right
	}
}

// InOrder - all values in ascending order
func (tree *Tree) InOrder() []int {
	values := make([]int, 0, tree.count)
	tree.Walk(func(p *Node) bool {
		values = append(values, p.value)
		return true
	})
	return values
}
