// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"go.chromium.org/sizecheck/internal/caserun"
	"go.chromium.org/sizecheck/internal/command"
	"go.chromium.org/sizecheck/internal/errors"
	"go.chromium.org/sizecheck/internal/hostcpu"
	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/matrix"
)

// runCmd implements subcommands.Command to run the matrix.
type runCmd struct {
	preflight bool // warn about features the host lacks before running
	stream    bool // show command output as it is produced; set from -verbose

	// Collaborators, replaced in unit tests.
	loadMatrix  func() (*matrix.Matrix, error)
	newExecutor func(stream bool) command.Executor
	detectHost  func(ctx context.Context) *hostcpu.Host
}

var _ = subcommands.Command(&runCmd{})

// newRunCmd returns a runCmd that runs the built-in matrix with real
// commands in the current directory.
func newRunCmd() *runCmd {
	return &runCmd{
		loadMatrix: matrix.Default,
		newExecutor: func(stream bool) command.Executor {
			return &command.ExecExecutor{Stream: stream}
		},
		detectHost: hostcpu.Detect,
	}
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "build and test every case of the matrix" }
func (*runCmd) Usage() string {
	return `Usage: run [flag]...

Description:
    For every case of the built-in matrix, in order: select the toolchain
    with rustup, build with the target feature enabled, and run the SimdBlock
    size test. Run from the root of the crate.

    The first failing command stops the run, and its exit code becomes the
    exit code of this program.

Flag:
`
}

func (rc *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&rc.preflight, "preflight", true, "warn about target features the host CPU lacks")
}

func (rc *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		logging.Info(ctx, "Unexpected arguments.\n\n"+rc.Usage())
		return subcommands.ExitUsageError
	}

	m, err := rc.loadMatrix()
	if err != nil {
		logging.Info(ctx, "Failed to load matrix: ", err)
		return subcommands.ExitFailure
	}

	if rc.preflight {
		rc.detectHost(ctx).Check(ctx, m)
	}

	r := caserun.NewRunner(caserun.Config{Executor: rc.newExecutor(rc.stream)})
	return exitStatus(ctx, r.Run(ctx, m))
}

// exitStatus turns the result of a run into the exit status of the process.
// A command failure is mirrored as is.
func exitStatus(ctx context.Context, err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	logging.Debugf(ctx, "Run failed: %+v", err)
	var cerr *command.Error
	if errors.As(err, &cerr) {
		return subcommands.ExitStatus(cerr.Status)
	}
	logging.Info(ctx, "Error: ", err)
	return subcommands.ExitFailure
}
