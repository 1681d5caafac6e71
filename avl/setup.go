// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlbuild/fault"
)

//go:generate mockgen -destination=mocks/logger.go -package=mocks github.com/bitmark-inc/avlbuild/avl Logger

// Logger - the leveled log collaborator used for diagnostics
//
// satisfied by *logger.L
type Logger interface {
	Infof(format string, arguments ...interface{})
	Errorf(format string, arguments ...interface{})
}

// discards everything, used when no logger is supplied
type nullLogger struct{}

func (nullLogger) Infof(format string, arguments ...interface{})  {}
func (nullLogger) Errorf(format string, arguments ...interface{}) {}

func logOrDiscard(log Logger) Logger {
	if nil == log {
		return nullLogger{}
	}
	return log
}

// globals
type globalDataType struct {
	sync.RWMutex
	log Logger
}

// used for calls made without a tree handle
var globalData globalDataType

// Initialise - set the log channel for calls on a nil tree
func Initialise(log Logger) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return fault.ErrAlreadyInitialised
	}
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log = log
	return nil
}

// Finalise - drop the log channel
func Finalise() {
	globalData.Lock()
	globalData.log = nil
	globalData.Unlock()
}

func globalLog() Logger {
	globalData.RLock()
	defer globalData.RUnlock()
	return logOrDiscard(globalData.log)
}

// Tree - type to hold the root node of a tree
//
// the root slot is rewritten whenever a rotation promotes a new root
type Tree struct {
	root      *Node
	count     int
	allocator *Allocator
	log       Logger
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - cached height of the root, -1 for an empty tree
func (tree *Tree) Height() int {
	if nil == tree.root {
		return -1
	}
	return tree.root.height
}

// NodesAtDepth - returns all nodes at a specific depth of a sub-tree
// in left to right order
func (p *Node) NodesAtDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.NodesAtDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.NodesAtDepth(depth-1)...)
		}
	}
	return nodes
}

// Value - read the value from a node
func (p *Node) Value() int {
	return p.value
}

// Height - read the cached height of a node
func (p *Node) Height() int {
	return p.height
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// BalanceFactor - left height minus right height
func (p *Node) BalanceFactor() int {
	return balanceFactor(p)
}
