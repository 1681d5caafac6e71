// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbuild/fault"
)

// value limits inherited from the ancestors
//
// both limits are inclusive: equal values are inserted to the right
// but a later rotation can lift one of them above its twin
type bounds struct {
	lower    int
	hasLower bool
	upper    int
	hasUpper bool
}

// Check - verify ordering, cached heights, balance and node count
//
// ordering is looser than a strict search tree: a value equal to its
// ancestor is accepted in either sub-tree, as rotations can lift the
// later of two equal values above the earlier one
func (tree *Tree) Check() error {
	if nil == tree.root {
		if 0 != tree.count {
			tree.log.Errorf("empty tree has count: %d", tree.count)
			return fault.ErrCountMismatch
		}
		return nil
	}
	_, n, err := tree.check(tree.root, bounds{})
	if nil != err {
		return err
	}
	if n != tree.count {
		tree.log.Errorf("counted: %d nodes  expected: %d", n, tree.count)
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, returns the recomputed height and
// the number of nodes in the sub-tree
func (tree *Tree) check(p *Node, b bounds) (int, int, error) {
	if b.hasLower && p.value < b.lower {
		tree.log.Errorf("node: %d  below lower bound: %d", p.value, b.lower)
		return 0, 0, fault.ErrOrderViolation
	}
	if b.hasUpper && p.value > b.upper {
		tree.log.Errorf("node: %d  above upper bound: %d", p.value, b.upper)
		return 0, 0, fault.ErrOrderViolation
	}

	count := 1
	lh := 0
	if nil != p.left {
		lb := b
		lb.upper = p.value
		lb.hasUpper = true
		h, n, err := tree.check(p.left, lb)
		if nil != err {
			return 0, 0, err
		}
		lh = 1 + h
		count += n
	}
	rh := 0
	if nil != p.right {
		rb := b
		rb.lower = p.value
		rb.hasLower = true
		h, n, err := tree.check(p.right, rb)
		if nil != err {
			return 0, 0, err
		}
		rh = 1 + h
		count += n
	}

	h := lh
	if rh > h {
		h = rh
	}
	if h != p.height {
		tree.log.Errorf("node: %d  height: %d  expected: %d", p.value, p.height, h)
		return 0, 0, fault.ErrHeightMismatch
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		tree.log.Errorf("node: %d  balance factor: %d", p.value, bf)
		return 0, 0, fault.ErrUnbalanced
	}
	return h, count, nil
}
