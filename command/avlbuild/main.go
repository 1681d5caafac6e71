// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbuild/avl"
	"github.com/bitmark-inc/avlbuild/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	watch := theConfiguration.Watch || len(options["watch"]) > 0

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	treeLog := logger.New("avl")
	if err = avl.Initialise(treeLog); nil != err {
		fault.Criticalf("avl setup error: %s", err)
		exitwithstatus.Message("%s: avl setup failed with error: %s", program, err)
	}
	defer avl.Finalise()

	err = process(log, treeLog, theConfiguration, os.Stdout)
	if nil != err {
		log.Criticalf("process error: %s", err)
		if !watch {
			fault.Criticalf("process error: %s", err)
			exitwithstatus.Message("%s: process error: %s", program, err)
		}
	}

	if !watch {
		return
	}

	w, err := newFileWatcher(configurationFile, logger.New("watcher"))
	if nil != err {
		log.Criticalf("watcher error: %s", err)
		fault.Criticalf("watcher: %q  error: %s", configurationFile, err)
		exitwithstatus.Message("%s: watcher error: %s", program, err)
	}
	fault.PanicIfError("watcher start", w.Start())
	defer w.Stop()

	// wait for configuration changes or a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

wait_loop:
	for {
		select {
		case <-w.ChangeChannel():
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
				continue wait_loop
			}
			err = process(log, treeLog, c, os.Stdout)
			if nil != err {
				log.Errorf("process error: %s", err)
			}

		case <-w.RemoveChannel():
			log.Warn("configuration file removed")
			break wait_loop

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break wait_loop
		}
	}
}
