// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node closest to the root holding a specific value
func (tree *Tree) Search(value int) *Node {
	return search(value, tree.root)
}

func search(value int, p *Node) *Node {
	if nil == p {
		return nil
	}

	switch {
	case value < p.value:
		return search(value, p.left)
	case value > p.value:
		return search(value, p.right)
	default:
		return p
	}
}
