// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbuild/fault"
)

func run(arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestBuild(t *testing.T) {
	out, _, err := run("build", "10", "20", "30")
	assert.Nil(t, err, "build failed")

	var summary buildSummary
	err = json.Unmarshal([]byte(out), &summary)
	assert.Nil(t, err, "invalid JSON")
	assert.Equal(t, 20, summary.Root, "wrong root")
	assert.Equal(t, 1, summary.Height, "wrong height")
	assert.Equal(t, 3, summary.Count, "wrong count")
	assert.Equal(t, []int{10, 20, 30}, summary.Values, "wrong order")
}

func TestBuildVerbose(t *testing.T) {
	_, e, err := run("--verbose", "build", "5", "4", "3")
	assert.Nil(t, err, "build failed")
	assert.Equal(t, "building from: 3 values\n", e, "wrong verbose output")
}

func TestBuildBadArguments(t *testing.T) {
	_, _, err := run("build")
	assert.Equal(t, fault.ErrInvalidArray, err, "empty arguments accepted")

	_, _, err = run("build", "10", "x")
	assert.Equal(t, fault.ErrInvalidValue, err, "non-integer accepted")
}

func TestDrawCommand(t *testing.T) {
	out, _, err := run("draw", "30", "10", "20")
	assert.Nil(t, err, "draw failed")
	assert.Contains(t, out, "|------+ 20 ^- h:1 +0\n", "root not drawn")
}

func TestPrintCommand(t *testing.T) {
	out, _, err := run("print", "10", "20", "30")
	assert.Nil(t, err, "print failed")

	expected := "data:     20,  parent:   none\n" +
		"LEFT.\n" +
		"data:     10,  parent:     20\n" +
		"RIGHT.\n" +
		"data:     30,  parent:     20\n"
	assert.Equal(t, expected, out, "wrong print output")
}

func TestLevels(t *testing.T) {
	out, _, err := run("levels", "1", "2", "3", "4", "5", "6", "7")
	assert.Nil(t, err, "levels failed")

	var levels []level
	err = json.Unmarshal([]byte(out), &levels)
	assert.Nil(t, err, "invalid JSON")

	expected := []level{
		{Depth: 0, Values: []int{4}},
		{Depth: 1, Values: []int{2, 6}},
		{Depth: 2, Values: []int{1, 3, 5, 7}},
	}
	assert.Equal(t, expected, levels, "wrong levels")
}

func TestSearch(t *testing.T) {
	out, _, err := run("search", "--value", "20", "10", "20", "30")
	assert.Nil(t, err, "search failed")

	var result searchResult
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "invalid JSON")
	assert.Equal(t, 20, result.Value, "wrong value")
	assert.Equal(t, 1, result.Height, "wrong height")
	assert.Equal(t, 0, result.Balance, "wrong balance")
	if assert.NotNil(t, result.Left, "missing left") {
		assert.Equal(t, 10, *result.Left, "wrong left")
	}
	if assert.NotNil(t, result.Right, "missing right") {
		assert.Equal(t, 30, *result.Right, "wrong right")
	}
}

func TestSearchLeaf(t *testing.T) {
	out, _, err := run("search", "-n", "10", "10", "20", "30")
	assert.Nil(t, err, "search failed")

	var result searchResult
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "invalid JSON")
	assert.Nil(t, result.Left, "leaf has left")
	assert.Nil(t, result.Right, "leaf has right")
}

func TestSearchErrors(t *testing.T) {
	_, _, err := run("search", "--value", "99", "10", "20", "30")
	assert.Equal(t, fault.ErrValueNotFound, err, "missing value found")

	_, _, err = run("search", "10", "20", "30")
	assert.Equal(t, fault.ErrInvalidValue, err, "search without value accepted")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := run("check", "10", "10", "10", "10", "10")
	assert.Nil(t, err, "check failed")
	assert.Equal(t, "ok: 5 nodes, height: 2\n", out, "wrong check output")
}
