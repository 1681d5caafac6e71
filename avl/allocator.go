// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlbuild/fault"
)

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	value  int   // value part for ordering
	height int   // cached: 0 for a leaf
}

// Allocator - hands out nodes, reusing reclaimed nodes if any are
// available
//
// a limit of zero means no limit on the number of live nodes
type Allocator struct {
	sync.Mutex
	pool  *Node // linked list of reclaimed nodes
	limit int   // maximum live nodes
	live  int   // nodes currently in use
	total int   // total nodes created
	free  int   // number of nodes in the pool
}

// NewAllocator - create an allocator with an optional live node limit
func NewAllocator(limit int) *Allocator {
	if limit < 0 {
		limit = 0
	}
	return &Allocator{
		limit: limit,
	}
}

// Live - number of nodes currently allocated
func (a *Allocator) Live() int {
	a.Lock()
	defer a.Unlock()
	return a.live
}

// Total - number of nodes ever created
func (a *Allocator) Total() int {
	a.Lock()
	defer a.Unlock()
	return a.total
}

// Free - number of nodes waiting in the pool
func (a *Allocator) Free() int {
	a.Lock()
	defer a.Unlock()
	return a.free
}

// allocate a new leaf node
func (a *Allocator) newNode(value int) (*Node, error) {
	a.Lock()
	defer a.Unlock()

	if 0 != a.limit && a.live >= a.limit {
		return nil, fault.ErrAllocationFailed
	}
	a.live += 1

	if nil == a.pool {
		if 0 != a.free {
			panic("pool corrupt")
		}
		a.total += 1
		return &Node{
			value: value,
		}, nil
	}
	p := a.pool
	a.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.value = value
	p.height = 0
	a.free -= 1
	return p, nil
}

// reclaim a node and keep it in the pool
func (a *Allocator) freeNode(node *Node) {
	a.Lock()
	node.left = a.pool // use as free list pointer
	node.right = nil
	node.value = 0
	node.height = 0
	a.live -= 1
	a.free += 1
	a.pool = node
	a.Unlock()
}
