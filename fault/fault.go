// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed      = ProcessError("node allocation failed")
	ErrAlreadyInitialised    = InvalidError("already initialised")
	ErrCountMismatch         = ProcessError("node count does not match tree")
	ErrHeightMismatch        = ProcessError("cached height does not match subtree")
	ErrInvalidAllocatorLimit = InvalidError("allocator limit must not be negative")
	ErrInvalidArray          = InvalidError("invalid array")
	ErrInvalidConfigTable    = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRoot           = InvalidError("root invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidValue          = InvalidError("value is not an integer")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = ProcessError("search order violated")
	ErrUnbalanced            = ProcessError("balance factor out of range")
	ErrValueNotFound         = NotFoundError("value not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
