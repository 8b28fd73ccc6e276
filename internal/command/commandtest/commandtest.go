// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package commandtest provides a fake command.Executor for unit tests.
package commandtest

import (
	"context"
	"sync"

	"go.chromium.org/sizecheck/internal/command"
)

// Executor is a command.Executor that records invocations instead of running
// them. Every call succeeds unless a failure was registered for it.
type Executor struct {
	mu       sync.Mutex
	invs     []*command.Invocation
	failures map[int]int
}

var _ command.Executor = &Executor{}

// NewExecutor returns an Executor on which every call succeeds.
func NewExecutor() *Executor {
	return &Executor{failures: make(map[int]int)}
}

// FailCall makes the call-th Run (counting from 0) fail with status.
func (e *Executor) FailCall(call, status int) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[call] = status
	return e
}

// Run records inv and reports the registered outcome.
func (e *Executor) Run(ctx context.Context, inv *command.Invocation) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	call := len(e.invs)
	e.invs = append(e.invs, inv)
	if status, ok := e.failures[call]; ok {
		return command.NewError(inv, status, nil)
	}
	return nil
}

// Invocations returns the recorded invocations in call order.
func (e *Executor) Invocations() []*command.Invocation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*command.Invocation(nil), e.invs...)
}

// Commands returns the recorded invocations rendered as command lines.
func (e *Executor) Commands() []string {
	var res []string
	for _, inv := range e.Invocations() {
		res = append(res, inv.String())
	}
	return res
}

// Reset forgets recorded invocations. Registered failures are kept.
func (e *Executor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.invs = nil
}
