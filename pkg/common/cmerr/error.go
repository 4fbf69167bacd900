// Copyright 2023 Mapforge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmerr

import (
	"fmt"
)

const (
	// 0 - 99 is OK.  They do not contain info, and are special handled
	// using a static instance, no alloc.
	Ok uint16 = 0

	OkMax uint16 = 99

	// Group 1: internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101

	// Group 2: invalid input
	ErrInvalidArg uint16 = 20200
	ErrBadConfig  uint16 = 20201

	// Group 3: lookup
	ErrKeyNotFound uint16 = 20300

	// ErrEnd, the max value of CmErrorCode
	ErrEnd uint16 = 65535
)

type cmErrorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]cmErrorMsgItem{
	// OK code not in this table.  They do not carry a message and
	// should not leak back to callers as failures.

	// Group 1: internal errors
	ErrStart:    {"internal error: error code start"},
	ErrInternal: {"internal error: %s"},

	// Group 2: invalid input
	ErrInvalidArg: {"invalid argument %s, bad value %s"},
	ErrBadConfig:  {"invalid configuration: %s"},

	// Group 3: lookup
	ErrKeyNotFound: {"key %s not found"},

	// Group End: max value of CmErrorCode
	ErrEnd: {"internal error: end of errcode code"},
}

func newError(code uint16, args ...any) *Error {
	var err *Error
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError("not exist CmErrorCode: %d", code))
	}
	if len(args) == 0 {
		err = &Error{
			code:    code,
			message: item.errorMsgOrFormat,
		}
	} else {
		err = &Error{
			code:    code,
			message: fmt.Sprintf(item.errorMsgOrFormat, args...),
		}
	}
	return err
}

// Error is the single error type of this module.  It carries a code so
// that callers can test for a condition without string matching.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Succeeded() bool {
	return e.code < OkMax
}

// IsCmErrCode reports whether e is an *Error carrying the code rc.
func IsCmErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	me, ok := e.(*Error)
	if !ok {
		// This is not a cmerr
		return false
	}
	return me.code == rc
}

// Lookup misses happen on every negative Find, which can sit inside a
// tight, performance critical loop.  We cannot afford to new an Error
// and format a message there, so a static instance without contextual
// info is returned by GetKeyNotFound.  The returned *Error can be
// tested with either
//
//	   if err == GetKeyNotFound()
//	or if cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound)
var errKeyNotFound = Error{ErrKeyNotFound, "key not found"}

func GetKeyNotFound() *Error {
	return &errKeyNotFound
}

// NewKeyNotFound builds a key-not-found error naming the key.  Prefer
// GetKeyNotFound on hot paths.
func NewKeyNotFound(key any) *Error {
	return newError(ErrKeyNotFound, fmt.Sprintf("%v", key))
}

func NewInternalError(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInternal, xmsg)
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewBadConfig(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrBadConfig, xmsg)
}
