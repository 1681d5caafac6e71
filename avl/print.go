// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbuild/fault"
)

// Print - log every value with its parent in pre-order
//
// returns the number of nodes visited
func (tree *Tree) Print() (int, error) {
	if nil == tree {
		globalLog().Errorf("root invalid")
		return 0, fault.ErrInvalidRoot
	}
	return PrintSubtree(tree.log, tree.root, nil)
}

// PrintSubtree - log a sub-tree in pre-order
//
// parent is optional; nil marks root as having no parent
func PrintSubtree(log Logger, root *Node, parent *Node) (int, error) {
	log = logOrDiscard(log)
	if nil == root {
		log.Errorf("root invalid")
		return 0, fault.ErrInvalidRoot
	}
	return printSubtree(log, root, parent), nil
}

func printSubtree(log Logger, p *Node, parent *Node) int {
	count := 1

	if nil == parent {
		log.Infof("data: %6d,  parent:   none", p.value)
	} else {
		log.Infof("data: %6d,  parent: %6d", p.value, parent.value)
	}

	if nil != p.left {
		log.Infof("LEFT.")
		count += printSubtree(log, p.left, p)
	}
	if nil != p.right {
		log.Infof("RIGHT.")
		count += printSubtree(log, p.right, p)
	}
	return count
}
