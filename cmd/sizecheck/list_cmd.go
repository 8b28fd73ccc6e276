// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v2"

	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/matrix"
)

// listCmd implements subcommands.Command to print the matrix.
type listCmd struct {
	yaml       bool // print the matrix as YAML instead of descriptions
	stdout     io.Writer
	loadMatrix func() (*matrix.Matrix, error)
}

var _ = subcommands.Command(&listCmd{})

func newListCmd(stdout io.Writer) *listCmd {
	return &listCmd{stdout: stdout, loadMatrix: matrix.Default}
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the cases of the matrix" }
func (*listCmd) Usage() string {
	return `Usage: list [flag]...

Description:
    Print one line per case of the built-in matrix, in run order.

Flag:
`
}

func (lc *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&lc.yaml, "yaml", false, "print the full matrix as YAML")
}

func (lc *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := lc.loadMatrix()
	if err != nil {
		logging.Info(ctx, "Failed to load matrix: ", err)
		return subcommands.ExitFailure
	}
	if err := lc.print(m); err != nil {
		logging.Info(ctx, "Failed to write matrix: ", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (lc *listCmd) print(m *matrix.Matrix) error {
	if lc.yaml {
		b, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = lc.stdout.Write(b)
		return err
	}
	for _, tc := range m.Cases() {
		if _, err := fmt.Fprintln(lc.stdout, tc.Describe()); err != nil {
			return err
		}
	}
	return nil
}
