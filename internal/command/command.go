// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package command describes and runs the external commands the harness
// drives.
package command

import (
	"context"
	"fmt"

	"go.chromium.org/sizecheck/shutil"
)

// Invocation is a single external command together with the environment
// variables it needs on top of the harness's own environment.
type Invocation struct {
	// Args holds the program name followed by its arguments.
	Args []string
	// Env holds "KEY=VALUE" entries overriding the inherited environment.
	Env []string
}

// New returns an Invocation running args with the env overlay.
func New(env []string, args ...string) *Invocation {
	return &Invocation{Args: args, Env: env}
}

// String renders the invocation as a shell command line with the overlay
// as leading assignments.
func (inv *Invocation) String() string {
	return shutil.CommandLine(inv.Env, inv.Args)
}

// Executor runs invocations. Run blocks until the command terminates and
// returns nil only if it completed with zero status. Any other outcome is
// reported as *Error.
type Executor interface {
	Run(ctx context.Context, inv *Invocation) error
}

// Status codes reported for commands that did not exit normally. They follow
// what POSIX shells report for the same situations.
const (
	// StatusNotStarted is reported when the command could not be started,
	// e.g. because the program was not found.
	StatusNotStarted = 127
	// statusSignalBase is added to the signal number of a killed command.
	statusSignalBase = 128
)

// Error is the failure of an external command.
type Error struct {
	// Command is the command line that failed, as rendered by
	// Invocation.String.
	Command string
	// Status is the non-zero completion status of the command.
	Status int

	cause error
}

// NewError returns an Error for inv failing with status. cause may be nil.
func NewError(inv *Invocation, status int, cause error) *Error {
	return &Error{Command: inv.String(), Status: status, cause: cause}
}

func (e *Error) Error() string {
	return fmt.Sprintf("command %s failed with exit code %d", e.Command, e.Status)
}

// Unwrap returns the underlying error from os/exec, if any.
func (e *Error) Unwrap() error {
	return e.cause
}
