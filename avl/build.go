// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbuild/fault"
	"github.com/bitmark-inc/avlbuild/stack"
)

// which child was followed during descent
type direction int

const (
	goLeft  direction = iota
	goRight direction = iota
)

// an ancestor on the current descent path
type pathEntry struct {
	node *Node
	dir  direction
}

// New - create an initially empty tree with an unlimited allocator
func New(log Logger) *Tree {
	return &Tree{
		root:      nil,
		count:     0,
		allocator: NewAllocator(0),
		log:       logOrDiscard(log),
	}
}

// Build - create a balanced tree from an array of values
func Build(values []int, log Logger) (*Tree, error) {
	return BuildWithAllocator(values, NewAllocator(0), log)
}

// BuildWithAllocator - create a balanced tree from an array of values
// taking nodes from the given allocator
//
// if any node cannot be allocated, all nodes already placed are
// returned to the allocator and no tree is returned
func BuildWithAllocator(values []int, allocator *Allocator, log Logger) (*Tree, error) {
	log = logOrDiscard(log)

	if 0 == len(values) {
		log.Errorf("invalid array")
		return nil, fault.ErrInvalidArray
	}
	if nil == allocator {
		allocator = NewAllocator(0)
	}

	tree := &Tree{
		root:      nil,
		count:     0,
		allocator: allocator,
		log:       log,
	}

	path := stack.New[pathEntry]()
	defer path.Clear()

	for i, v := range values {
		err := tree.insert(v, path)
		if nil != err {
			log.Errorf("value[%d]: %d  insert error: %s", i, v, err)
			if nil != tree.root {
				deleteTree(allocator, tree.root)
			}
			return nil, err
		}
	}
	return tree, nil
}

// Insert - add a single value and rebalance
//
// the tree is unchanged if a node cannot be allocated
func (tree *Tree) Insert(value int) error {
	path := stack.New[pathEntry]()
	defer path.Clear()

	err := tree.insert(value, path)
	if nil != err {
		tree.log.Errorf("value: %d  insert error: %s", value, err)
	}
	return err
}

// internal routine for insert
func (tree *Tree) insert(value int, path *stack.Stack[pathEntry]) error {
	if nil == tree.root {
		p, err := tree.allocator.newNode(value)
		if nil != err {
			return err
		}
		tree.root = p
		tree.count += 1
		return nil
	}

	p := tree.root
	for {
		dir := goRight
		next := p.right
		if value < p.value {
			dir = goLeft
			next = p.left
		}

		if nil == next {
			leaf, err := tree.allocator.newNode(value)
			if nil != err {
				path.Clear()
				return err
			}
			if goLeft == dir {
				p.left = leaf
			} else {
				p.right = leaf
			}
			p.height = height(p)
			tree.count += 1
			break
		}

		path.Push(pathEntry{
			node: p,
			dir:  dir,
		})
		p = next
	}

	tree.rebalance(value, path)
	return nil
}

// unwind the descent path refreshing heights and rotating any node
// found out of balance
//
// value is the one just inserted, it selects between the outer
// (single rotation) and inner (double rotation) cases
func (tree *Tree) rebalance(value int, path *stack.Stack[pathEntry]) {
	for {
		e, ok := path.Pop()
		if !ok {
			return
		}
		p := e.node

		var top *Node
		switch balanceFactor(p) {
		case -2: // right sub-tree longer
			if value >= p.right.value {
				top = rightRight(p)
			} else {
				top = rightLeft(p)
			}
		case +2: // left sub-tree longer
			if value < p.left.value {
				top = leftLeft(p)
			} else {
				top = leftRight(p)
			}
		}

		if nil != top {
			tree.reattach(top, path)
		}
		p.height = height(p)
	}
}

// link a rotated sub-tree into the ancestor still on the path, or
// make it the root when no ancestor remains
func (tree *Tree) reattach(top *Node, path *stack.Stack[pathEntry]) {
	parent, ok := path.Peek()
	if !ok {
		tree.root = top
		return
	}
	if goLeft == parent.dir {
		parent.node.left = top
	} else {
		parent.node.right = top
	}
}
