// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type level struct {
	Depth  int   `json:"depth"`
	Values []int `json:"values"`
}

func runLevels(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	levels := make([]level, 0, tree.Height()+1)
	for depth := 0; depth <= tree.Height(); depth += 1 {
		nodes := tree.Root().NodesAtDepth(uint(depth))
		values := make([]int, len(nodes))
		for i, n := range nodes {
			values[i] = n.Value()
		}
		levels = append(levels, level{
			Depth:  depth,
			Values: values,
		})
	}
	return printJson(m.w, levels)
}
