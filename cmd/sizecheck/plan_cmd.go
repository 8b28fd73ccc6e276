// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"go.chromium.org/sizecheck/internal/caserun"
	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/matrix"
)

// planCmd implements subcommands.Command to print the commands of a run
// without executing them.
type planCmd struct {
	stdout     io.Writer
	loadMatrix func() (*matrix.Matrix, error)
}

var _ = subcommands.Command(&planCmd{})

func newPlanCmd(stdout io.Writer) *planCmd {
	return &planCmd{stdout: stdout, loadMatrix: matrix.Default}
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "print the commands run would execute" }
func (*planCmd) Usage() string {
	return `Usage: plan

Description:
    Print, as a shell script, the commands that run would execute, in order.
    Nothing is executed. The script stops at the first failing command.
`
}

func (*planCmd) SetFlags(*flag.FlagSet) {}

func (pc *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := pc.loadMatrix()
	if err != nil {
		logging.Info(ctx, "Failed to load matrix: ", err)
		return subcommands.ExitFailure
	}
	if err := writePlan(pc.stdout, m); err != nil {
		logging.Info(ctx, "Failed to write plan: ", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writePlan writes m's commands to w as a POSIX shell script.
func writePlan(w io.Writer, m *matrix.Matrix) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "#!/bin/sh")
	fmt.Fprintln(bw, "set -e")
	for _, tc := range m.Cases() {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "# %s\n", tc.Describe())
		for _, inv := range caserun.Plan(tc) {
			fmt.Fprintln(bw, inv)
		}
	}
	return bw.Flush()
}
