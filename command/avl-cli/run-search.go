// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbuild/fault"
)

type searchResult struct {
	Value   int  `json:"value"`
	Height  int  `json:"height"`
	Balance int  `json:"balance"`
	Left    *int `json:"left"`
	Right   *int `json:"right"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("value") {
		return fault.ErrInvalidValue
	}
	value := c.Int("value")

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	node := tree.Search(value)
	if nil == node {
		return fault.ErrValueNotFound
	}

	out := searchResult{
		Value:   node.Value(),
		Height:  node.Height(),
		Balance: node.BalanceFactor(),
	}
	if l := node.Left(); nil != l {
		v := l.Value()
		out.Left = &v
	}
	if r := node.Right(); nil != r {
		v := r.Value()
		out.Right = &v
	}
	return printJson(m.w, out)
}
