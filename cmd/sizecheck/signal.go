// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// installSignalHandler starts a goroutine that, on SIGINT or SIGTERM,
// terminates the running external command, restores the terminal and exits
// with status 1. Deferred functions do not run in that case.
func installSignalHandler(out io.Writer) {
	var st *term.State
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		var err error
		if st, err = term.GetState(fd); err != nil {
			fmt.Fprintf(out, "Failed to get terminal state: %v\n", err)
		}
	}

	ch := make(chan os.Signal, 1)
	go func() {
		sig := <-ch
		fmt.Fprintf(out, "\n%s: Caught %v signal; exiting\n", progName, sig)
		terminateChildren(out)
		restoreTerminal(out, fd, st)
		os.Exit(1)
	}()
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)
}

// restoreTerminal puts fd back into state st. A nil st is a no-op.
func restoreTerminal(out io.Writer, fd int, st *term.State) {
	if st == nil {
		return
	}
	if err := term.Restore(fd, st); err != nil {
		fmt.Fprintf(out, "Failed to restore terminal state: %v\n", err)
	}
}

// terminateChildren sends SIGTERM to the direct children of this process.
// cargo and rustup forward it to their own children.
func terminateChildren(out io.Writer) {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		fmt.Fprintf(out, "Failed to terminate subprocesses: %v\n", err)
		return
	}
	children, err := self.Children()
	if err != nil {
		// gopsutil reports an error when there are no children.
		return
	}
	for _, c := range children {
		if err := c.Terminate(); err != nil {
			fmt.Fprintf(out, "Failed to terminate process %d: %v\n", c.Pid, err)
		}
	}
}
