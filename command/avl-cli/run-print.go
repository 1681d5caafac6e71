// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbuild/avl"
)

// writes tree diagnostics as plain lines
type lineLogger struct {
	w io.Writer
	e io.Writer
}

func (l *lineLogger) Infof(format string, arguments ...interface{}) {
	fmt.Fprintf(l.w, format+"\n", arguments...)
}

func (l *lineLogger) Errorf(format string, arguments ...interface{}) {
	fmt.Fprintf(l.e, "error: "+format+"\n", arguments...)
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildFromArgs(c, m)
	if nil != err {
		return err
	}
	defer tree.Delete()

	log := &lineLogger{
		w: m.w,
		e: m.e,
	}
	n, err := avl.PrintSubtree(log, tree.Root(), nil)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "visited: %d nodes\n", n)
	}
	return nil
}
