// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	err = tree.Check()
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok: %d nodes, height: %d\n", tree.Count(), tree.Height())
	return nil
}
