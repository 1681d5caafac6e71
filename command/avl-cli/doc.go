// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build an AVL tree from integer arguments and show it
//
// e.g. to see the tree that three ascending values produce:
//
//	avl-cli draw 10 20 30
package main
