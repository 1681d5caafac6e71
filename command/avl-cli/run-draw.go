// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	depth := tree.Draw(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}
