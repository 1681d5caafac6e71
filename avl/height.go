// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the heights seen through each child edge: an absent child counts
// zero, a present child one more than its own cached height
func childHeights(p *Node) (int, int) {
	lh := 0
	if nil != p.left {
		lh = 1 + p.left.height
	}
	rh := 0
	if nil != p.right {
		rh = 1 + p.right.height
	}
	return lh, rh
}

// height of a node computed from the cached heights of its children
//
// children must already be correct, so update bottom-up only
func height(p *Node) int {
	if nil == p {
		return 0
	}
	lh, rh := childHeights(p)
	if lh >= rh {
		return lh
	}
	return rh
}

// balance factor: positive when left heavy, negative when right heavy
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	lh, rh := childHeights(p)
	return lh - rh
}
