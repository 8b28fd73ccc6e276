// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestRestoreTerminalNilState(t *testing.T) {
	var buf bytes.Buffer
	restoreTerminal(&buf, -1, nil)
	if buf.Len() != 0 {
		t.Errorf("restoreTerminal printed %q; want nothing", buf.String())
	}
}

func TestRestoreTerminalReportsError(t *testing.T) {
	var buf bytes.Buffer
	// An invalid descriptor makes the restore fail.
	restoreTerminal(&buf, -1, &term.State{})
	if got := buf.String(); !strings.HasPrefix(got, "Failed to restore terminal state: ") {
		t.Errorf("restoreTerminal printed %q; want a restore failure", got)
	}
}
