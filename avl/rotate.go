// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// all rotations return the new root of the local sub-tree, the
// caller must attach it in place of the original node

// promote the left child, p must have a left sub-tree
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be updated first
	p.height = height(p)
	p1.height = height(p1)

	return p1
}

// promote the right child, p must have a right sub-tree
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.height = height(p)
	p1.height = height(p1)

	return p1
}

// single LL rotation
func leftLeft(p *Node) *Node {
	return rotateRight(p)
}

// single RR rotation
func rightRight(p *Node) *Node {
	return rotateLeft(p)
}

// double LR rotation
func leftRight(p *Node) *Node {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double RL rotation
func rightLeft(p *Node) *Node {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}
