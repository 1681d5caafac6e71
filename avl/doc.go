// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integers built in bulk from
// an array of values
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Nodes do not carry parent pointers.  Insertion walks down from the
// root iteratively, recording each ancestor and the direction taken
// on a path stack, then unwinds that stack to refresh the cached
// heights and apply at most one single or double rotation.
//
// Equal values always go to the right sub-tree, so duplicates are
// kept and appear in insertion order during an in-order walk.
//
// Deletion does not rebalance: Delete releases the whole tree.
package avl
