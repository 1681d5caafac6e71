// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbuild/avl"
)

type buildSummary struct {
	Count  int   `json:"count"`
	Height int   `json:"height"`
	Root   int   `json:"root"`
	Values []int `json:"values"`
}

// build a tree from the positional arguments, the caller must Delete it
func buildFromArgs(c *cli.Context, m *metadata) (*avl.Tree, error) {
	values, err := checkValues(c.Args())
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "building from: %d values\n", len(values))
	}

	return avl.Build(values, nil)
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	out := buildSummary{
		Count:  tree.Count(),
		Height: tree.Height(),
		Root:   tree.Root().Value(),
		Values: tree.InOrder(),
	}
	return printJson(m.w, out)
}
