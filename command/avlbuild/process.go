// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbuild/avl"
)

// build, optionally print and draw, verify and release one tree
//
// the tree is always released, even if verification fails
func process(log *logger.L, treeLog avl.Logger, conf *Configuration, w io.Writer) error {

	allocator := avl.NewAllocator(conf.AllocatorLimit)

	tree, err := avl.BuildWithAllocator(conf.Values, allocator, treeLog)
	if nil != err {
		return err
	}
	log.Infof("built: %d nodes  height: %d  root: %d", tree.Count(), tree.Height(), tree.Root().Value())

	if conf.Print {
		n, err := tree.Print()
		if nil != err {
			return err
		}
		log.Infof("printed: %d nodes", n)
	}

	if conf.Draw {
		depth := tree.Draw(w)
		log.Debugf("drawn depth: %d", depth)
	}

	checkErr := tree.Check()
	if nil != checkErr {
		log.Errorf("check failed: %s", checkErr)
	}

	n, err := tree.Delete()
	if nil != err {
		return err
	}
	log.Infof("deleted: %d nodes  pooled: %d", n, allocator.Free())

	return checkErr
}
