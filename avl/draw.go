// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the draw routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Draw - display an ASCII graphic representation of the tree, right
// sub-trees above and left sub-trees below their parent
//
// returns the maximum depth of the tree
func (tree *Tree) Draw(w io.Writer) int {
	return drawTree(w, tree.root, nil, "", rootBranch)
}

func drawTree(w io.Writer, p *Node, up *Node, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = drawTree(w, p.right, p, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	parent := "-"
	if nil != up {
		parent = fmt.Sprintf("%d", up.value)
	}
	fmt.Fprintf(w, "%d ^%s h:%d %+d\n", p.value, parent, p.height, balanceFactor(p))
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = drawTree(w, p.left, p, prefix+t, leftBranch)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
