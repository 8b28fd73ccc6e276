// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package main implements the sizecheck executable, which verifies that
// SimdBlock has the expected size under every target feature in the matrix.
//
// Running it without arguments is the same as "sizecheck run".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"go.chromium.org/sizecheck/internal/logging"
)

const progName = "sizecheck"

// Version is the version info of this command. It is filled in at link time.
var Version = "<unknown>"

// newLogger creates a logger writing to w based on the global flags.
func newLogger(w io.Writer, verbose, logTime bool) logging.Logger {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewSinkLogger(level, logTime, logging.NewWriterSink(w))
}

// doMain implements the main body of the program and returns the exit
// status. rc is the run command to register; it is a parameter so that
// tests can replace its collaborators.
func doMain(args []string, stdout io.Writer, rc *runCmd) int {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(stdout)
	version := fs.Bool("version", false, "print version and exit")
	verbose := fs.Bool("verbose", false, "use verbose logging and show command output as it runs")
	logTime := fs.Bool("logtime", false, "include date/time headers in logs")

	cdr := subcommands.NewCommander(fs, progName)
	cdr.Output = stdout
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(rc, "")
	cdr.Register(newListCmd(stdout), "")
	cdr.Register(newPlanCmd(stdout), "")

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}
	if *version {
		fmt.Fprintf(stdout, "%s version %s\n", progName, Version)
		return int(subcommands.ExitSuccess)
	}
	if fs.NArg() == 0 {
		if err := fs.Parse(append(args[:len(args):len(args)], rc.Name())); err != nil {
			return int(subcommands.ExitUsageError)
		}
	}

	rc.stream = *verbose
	ctx := logging.AttachLogger(context.Background(), newLogger(stdout, *verbose, *logTime))
	return int(cdr.Execute(ctx))
}

func main() {
	installSignalHandler(os.Stderr)
	os.Exit(doMain(os.Args[1:], os.Stdout, newRunCmd()))
}
