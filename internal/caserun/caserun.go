// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package caserun drives a matrix of test cases through their external
// commands and stops at the first failing command.
package caserun

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"go.chromium.org/sizecheck/internal/command"
	"go.chromium.org/sizecheck/internal/errors"
	"go.chromium.org/sizecheck/internal/failfast"
	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/matrix"
)

// failFastThreshold is the number of failed commands that ends a run.
const failFastThreshold = 1

// State is the state of a run.
type State int

const (
	// NotStarted means Run has not been called yet.
	NotStarted State = iota
	// Running means a case is being executed.
	Running
	// Done means every command of every case succeeded.
	Done
	// Failed means a command failed and the run was abandoned.
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case Running:
		return "RUNNING"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Result describes where a run is or how it ended.
type Result struct {
	State State
	// CaseIndex is the case being run (Running) or that failed (Failed).
	// It is the matrix length when Done and -1 when NotStarted.
	CaseIndex int
	// Step is the step that failed. Valid only when Failed.
	Step Step
	// Failure is the failed command. It is nil unless Failed, and may be
	// nil when Failed if the executor returned an error of another kind.
	Failure *command.Error
}

// Config holds the collaborators of a Runner.
type Config struct {
	// Executor runs the external commands. Required.
	Executor command.Executor
	// Clock measures case durations. nil means the real clock.
	Clock clock.Clock
}

// Runner runs matrices. A Runner may run several matrices one after
// another; nothing carries over between runs.
type Runner struct {
	exec  command.Executor
	clock clock.Clock
	res   Result
}

// NewRunner returns a Runner using cfg.
func NewRunner(cfg Config) *Runner {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewClock()
	}
	return &Runner{
		exec:  cfg.Executor,
		clock: clk,
		res:   Result{State: NotStarted, CaseIndex: -1},
	}
}

// Result returns the state of the latest run.
func (r *Runner) Result() Result {
	return r.res
}

// Run runs every case of m in order. For each case it selects the
// toolchain, builds and runs the size test.
//
// The first failing command ends the run: no further command is executed,
// and the returned error wraps the failure, so that errors.As finds the
// *command.Error carrying the failed command and its status. Nothing is
// retried.
func (r *Runner) Run(ctx context.Context, m *matrix.Matrix) error {
	ff := failfast.NewCounter(failFastThreshold)
	for i := 0; i < m.Len(); i++ {
		r.res = Result{State: Running, CaseIndex: i}
		step, err := r.runCase(ctx, m.At(i))
		if err == nil {
			continue
		}
		ff.Record(errors.Wrapf(err, "case %d (%s) %s step", i, m.At(i).Feature(), step))
		if abortErr := ff.Check(); abortErr != nil {
			r.res = Result{State: Failed, CaseIndex: i, Step: step}
			errors.As(err, &r.res.Failure)
			return abortErr
		}
	}
	r.res = Result{State: Done, CaseIndex: m.Len()}
	return nil
}

// runCase runs the commands of tc and returns the last step it ran: the
// failed step on error, StepTest on success.
func (r *Runner) runCase(ctx context.Context, tc matrix.TestCase) (Step, error) {
	logging.Info(ctx, tc.Describe())
	start := r.clock.Now()

	var step Step
	for i, inv := range Plan(tc) {
		step = Step(i)
		logging.Infof(ctx, "Executing %s", inv)
		if err := r.exec.Run(ctx, inv); err != nil {
			var cerr *command.Error
			if errors.As(err, &cerr) {
				logging.Infof(ctx, "Command %s failed with exit code %d", cerr.Command, cerr.Status)
			} else {
				logging.Infof(ctx, "Command %s failed: %v", inv, err)
			}
			return step, err
		}
	}

	logging.Infof(ctx, "TEST CASE OK (%v)", r.clock.Since(start).Round(time.Millisecond))
	return step, nil
}
