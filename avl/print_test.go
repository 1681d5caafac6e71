// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbuild/avl"
	"github.com/bitmark-inc/avlbuild/avl/mocks"
	"github.com/bitmark-inc/avlbuild/fault"
)

func TestPrint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	tree, err := avl.Build([]int{10, 20, 30}, m)
	assert.Nil(t, err, "build failed")

	gomock.InOrder(
		m.EXPECT().Infof("data: %6d,  parent:   none", 20).Times(1),
		m.EXPECT().Infof("LEFT.").Times(1),
		m.EXPECT().Infof("data: %6d,  parent: %6d", 10, 20).Times(1),
		m.EXPECT().Infof("RIGHT.").Times(1),
		m.EXPECT().Infof("data: %6d,  parent: %6d", 30, 20).Times(1),
	)

	n, err := tree.Print()
	assert.Nil(t, err, "print failed")
	assert.Equal(t, 3, n, "wrong visit count")
}

func TestPrintSubtreeWithParent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	tree, err := avl.Build([]int{2, 1, 3}, nil)
	assert.Nil(t, err, "build failed")

	root := tree.Root()
	m.EXPECT().Infof("data: %6d,  parent: %6d", 3, 2).Times(1)

	n, err := avl.PrintSubtree(m, root.Right(), root)
	assert.Nil(t, err, "print failed")
	assert.Equal(t, 1, n, "wrong visit count")
}

func TestPrintInvalidRoot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	m.EXPECT().Errorf("root invalid").Times(1)

	n, err := avl.PrintSubtree(m, nil, nil)
	assert.Equal(t, 0, n, "wrong visit count")
	assert.Equal(t, fault.ErrInvalidRoot, err, "wrong error")
}

func TestDeleteLogsInvalidRoot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	m.EXPECT().Errorf("root invalid").Times(1)

	tree := avl.New(m)
	_, err := tree.Delete()
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
}

func TestBuildLogsInvalidArray(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	m.EXPECT().Errorf("invalid array").Times(1)

	_, err := avl.Build([]int{}, m)
	assert.Equal(t, fault.ErrInvalidArray, err, "wrong error")
}

func TestBuildLogsAllocationFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	m.EXPECT().Errorf("value[%d]: %d  insert error: %s", 2, 7, fault.ErrAllocationFailed).Times(1)

	_, err := avl.BuildWithAllocator([]int{5, 6, 7}, avl.NewAllocator(2), m)
	assert.Equal(t, fault.ErrAllocationFailed, err, "wrong error")
}

func TestDraw(t *testing.T) {
	tree, err := avl.Build([]int{10, 20, 30}, nil)
	assert.Nil(t, err, "build failed")

	buffer := &bytes.Buffer{}
	depth := tree.Draw(buffer)

	expected := "       /------+ 30 ^20 h:0 +0\n" +
		"|------+ 20 ^- h:1 +0\n" +
		"       \\------+ 10 ^20 h:0 +0\n"

	assert.Equal(t, 2, depth, "wrong depth")
	assert.Equal(t, expected, buffer.String(), "wrong drawing")
}

func TestNilTreeLogsInvalidRoot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockLogger(ctl)

	err := avl.Initialise(m)
	assert.Nil(t, err, "initialise failed")
	defer avl.Finalise()

	err = avl.Initialise(m)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise accepted")

	m.EXPECT().Errorf("root invalid").Times(2)

	var tree *avl.Tree
	n, err := tree.Delete()
	assert.Equal(t, 0, n, "wrong delete count")
	assert.Equal(t, fault.ErrInvalidRoot, err, "wrong delete error")

	n, err = tree.Print()
	assert.Equal(t, 0, n, "wrong visit count")
	assert.Equal(t, fault.ErrInvalidRoot, err, "wrong print error")
}

func TestInitialiseNilChannel(t *testing.T) {
	err := avl.Initialise(nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil channel accepted")
}
