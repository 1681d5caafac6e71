// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbuild/configuration"
	"github.com/bitmark-inc/avlbuild/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlbuild.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Values         []int                `gluamapper:"values" json:"values"`
	AllocatorLimit int                  `gluamapper:"allocator_limit" json:"allocator_limit"`
	Print          bool                 `gluamapper:"print" json:"print"`
	Draw           bool                 `gluamapper:"draw" json:"draw"`
	Watch          bool                 `gluamapper:"watch" json:"watch"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		AllocatorLimit: 0, // no limit
		Print:          true,
		Draw:           false,
		Watch:          false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				"main":            "info",
				"avl":             "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.AllocatorLimit < 0 {
		return nil, fault.ErrInvalidAllocatorLimit
	}

	// force the log directory to be an absolute path
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}
