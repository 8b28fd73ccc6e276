// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package command

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"go.chromium.org/sizecheck/internal/errors"
	"go.chromium.org/sizecheck/internal/logging"
)

// maxTailLines is the number of trailing output lines kept for a failed
// command when output is not streamed.
const maxTailLines = 200

// ExecExecutor runs invocations as local processes.
//
// There is no timeout: a command that never exits blocks Run forever.
type ExecExecutor struct {
	// Dir is the working directory of commands. Empty means the current
	// directory.
	Dir string
	// BaseEnv is the environment that invocation overlays are applied to.
	// nil means os.Environ().
	BaseEnv []string
	// Stream makes command output appear in the log as it is produced.
	// Otherwise output is held back and only the tail is logged when the
	// command fails. Either way, each output line is prefixed with the
	// program name in brackets, e.g. "[cargo] ".
	Stream bool
}

var _ Executor = &ExecExecutor{}

// Run runs inv and waits for it to terminate.
func (e *ExecExecutor) Run(ctx context.Context, inv *Invocation) error {
	if len(inv.Args) == 0 {
		return errors.New("empty invocation")
	}

	base := e.BaseEnv
	if base == nil {
		base = os.Environ()
	}
	cmd := exec.Command(inv.Args[0], inv.Args[1:]...)
	cmd.Dir = e.Dir
	// os/exec keeps the last value of duplicated keys, so the overlay wins.
	cmd.Env = append(append([]string(nil), base...), inv.Env...)

	logging.Debugf(ctx, "Running %s (dir=%q)", inv, cmd.Dir)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to create stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to create stderr pipe")
	}
	if err := cmd.Start(); err != nil {
		return NewError(inv, StatusNotStarted, err)
	}

	out := newOutputLog(logging.SetLogPrefix(ctx, OutputPrefix(inv)), e.Stream)
	var g errgroup.Group
	g.Go(func() error { return out.pump(stdout) })
	g.Go(func() error { return out.pump(stderr) })
	pumpErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		out.flush()
		return NewError(inv, exitStatus(err), err)
	}
	if pumpErr != nil {
		return errors.Wrapf(pumpErr, "failed to read output of %s", inv)
	}
	return nil
}

// OutputPrefix returns the prefix of log lines carrying the output of inv.
func OutputPrefix(inv *Invocation) string {
	if len(inv.Args) == 0 {
		return ""
	}
	return "[" + filepath.Base(inv.Args[0]) + "] "
}

// exitStatus converts an error from exec.Cmd.Wait to a completion status.
func exitStatus(err error) int {
	var xerr *exec.ExitError
	if !errors.As(err, &xerr) {
		return StatusNotStarted
	}
	if ws, ok := xerr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return statusSignalBase + int(ws.Signal())
	}
	if code := xerr.ExitCode(); code > 0 {
		return code
	}
	return 1
}

// outputLog collects the output lines of a running command.
type outputLog struct {
	ctx    context.Context
	stream bool

	mu   sync.Mutex
	tail []string
}

func newOutputLog(ctx context.Context, stream bool) *outputLog {
	return &outputLog{ctx: ctx, stream: stream}
}

// pump reads r line by line until EOF. It is called concurrently for
// stdout and stderr.
func (o *outputLog) pump(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			o.add(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (o *outputLog) add(line string) {
	if o.stream {
		logging.Info(o.ctx, line)
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tail = append(o.tail, line)
	if len(o.tail) > maxTailLines {
		o.tail = o.tail[len(o.tail)-maxTailLines:]
	}
}

// flush logs the held-back tail, if any.
func (o *outputLog) flush() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range o.tail {
		logging.Info(o.ctx, line)
	}
	o.tail = nil
}
