// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package errors provides basic utilities to construct errors.
//
// Use this package rather than the standard errors and fmt.Errorf to create
// or wrap errors. Errors created here record the location where they were
// created, and "%+v" prints the whole chain with those locations:
//
//	errors.New("matrix is empty")
//	errors.Errorf("case %d failed", i)
//	errors.Wrap(err, "failed to decode matrix")
//	errors.Wrapf(err, "case %d", i)
//
// Is, As and Unwrap are forwarded to the standard library so that callers
// can inspect wrapped chains without importing both packages.
package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.chromium.org/sizecheck/internal/errors/stack"
)

// impl is the error implementation used by this package.
type impl struct {
	msg   string      // message prepended to cause
	stk   stack.Stack // where this error was created
	cause error       // wrapped error, may be nil
}

// Error implements the error interface.
func (e *impl) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

// Unwrap returns the wrapped error, if any.
func (e *impl) Unwrap() error {
	return e.cause
}

// formatChain formats an error chain, one link per paragraph.
func formatChain(err error) string {
	var chain []string
	for err != nil {
		e, ok := err.(*impl)
		if !ok {
			chain = append(chain, fmt.Sprintf("%s\n\tat ???", err.Error()))
			break
		}
		chain = append(chain, fmt.Sprintf("%s\n%v", e.msg, e.stk))
		err = e.cause
	}
	return strings.Join(chain, "\n")
}

// Format implements fmt.Formatter. "%+v" prints the chain with stack traces.
func (e *impl) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		io.WriteString(s, formatChain(e))
	} else {
		io.WriteString(s, e.Error())
	}
}

// New creates a new error with the given message.
func New(msg string) error {
	return &impl{msg, stack.New(1), nil}
}

// Errorf creates a new error with a message formatted by fmt.Sprintf.
func Errorf(format string, args ...interface{}) error {
	return &impl{fmt.Sprintf(format, args...), stack.New(1), nil}
}

// Wrap creates a new error with the given message, wrapping cause.
// If cause is nil, this is the same as New.
func Wrap(cause error, msg string) error {
	return &impl{msg, stack.New(1), cause}
}

// Wrapf is similar to Wrap but formats the message with fmt.Sprintf.
func Wrapf(cause error, format string, args ...interface{}) error {
	return &impl{fmt.Sprintf(format, args...), stack.New(1), cause}
}

// Is is the same as the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is the same as the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap is the same as the standard errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
