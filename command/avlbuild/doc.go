// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbuild - build an AVL tree from the values listed in a Lua
// configuration file, log it in pre-order, verify it and release it
//
// e.g. run once, then again every time the file is saved:
//
//	avlbuild --config-file=avlbuild.conf --watch
package main
