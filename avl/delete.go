// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbuild/fault"
)

// Delete - release every node of the tree
//
// returns the number of nodes released, the tree is empty afterwards
func (tree *Tree) Delete() (int, error) {
	if nil == tree {
		globalLog().Errorf("root invalid")
		return 0, fault.ErrInvalidRoot
	}
	if nil == tree.root {
		tree.log.Errorf("root invalid")
		return 0, fault.ErrInvalidRoot
	}

	n := deleteTree(tree.allocator, tree.root)
	tree.root = nil
	tree.count = 0
	return n, nil
}

// internal: post-order release of a sub-tree
func deleteTree(allocator *Allocator, p *Node) int {
	count := 0
	if nil != p.left {
		count += deleteTree(allocator, p.left)
	}
	if nil != p.right {
		count += deleteTree(allocator, p.right)
	}
	allocator.freeNode(p)
	return count + 1
}
