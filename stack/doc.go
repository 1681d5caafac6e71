// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a simple LIFO stack
//
// Used to record a descent path through a tree so that the path can
// be unwound bottom-up afterwards.
//
// Note: a stack is not thread safe, use it only from a single go
// routine.
package stack
