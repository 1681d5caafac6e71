// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build an AVL tree from integer arguments"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a tree and summarise it",
			ArgsUsage: "VALUE...",
			Action:    runBuild,
		},
		{
			Name:      "draw",
			Usage:     "draw the tree sideways, right sub-trees on top",
			ArgsUsage: "VALUE...",
			Action:    runDraw,
		},
		{
			Name:      "print",
			Usage:     "list each value with its parent in pre-order",
			ArgsUsage: "VALUE...",
			Action:    runPrint,
		},
		{
			Name:      "levels",
			Usage:     "list the values at each depth",
			ArgsUsage: "VALUE...",
			Action:    runLevels,
		},
		{
			Name:      "search",
			Usage:     "find a value and show its node",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "value, n",
					Usage: "*value to find `N`",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "check",
			Usage:     "verify ordering, heights and balance",
			ArgsUsage: "VALUE...",
			Action:    runCheck,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
