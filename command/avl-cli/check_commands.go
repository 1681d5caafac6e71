// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbuild/fault"
)

// all positional arguments must be integers
func checkValues(args cli.Args) ([]int, error) {
	if 0 == len(args) {
		return nil, fault.ErrInvalidArray
	}

	values := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		values = append(values, v)
	}
	return values, nil
}
