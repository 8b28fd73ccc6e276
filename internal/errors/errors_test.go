// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"testing"
)

func check(t *testing.T, err error, msg string, traceRegexp *regexp.Regexp) {
	t.Helper()
	if s := err.Error(); s != msg {
		t.Errorf("Wrong error message %q; want %q", s, msg)
	}
	if s := fmt.Sprintf("%v", err); s != msg {
		t.Errorf("Wrong default value %q; want %q", s, msg)
	}
	if tr := fmt.Sprintf("%+v", err); !traceRegexp.MatchString(tr) {
		t.Errorf("Wrong trace %q; should match %q", tr, traceRegexp)
	}
}

func TestNew(t *testing.T) {
	traceRegexp := regexp.MustCompile(`^rustup missing
	at go\.chromium\.org/sizecheck/internal/errors\.TestNew \(errors_test.go:\d+\)`)
	check(t, New("rustup missing"), "rustup missing", traceRegexp)
}

func TestErrorf(t *testing.T) {
	traceRegexp := regexp.MustCompile(`^case 3 failed
	at go\.chromium\.org/sizecheck/internal/errors\.TestErrorf \(errors_test.go:\d+\)`)
	check(t, Errorf("case %d failed", 3), "case 3 failed", traceRegexp)
}

func TestWrap(t *testing.T) {
	traceRegexp := regexp.MustCompile(`(?s)^case 1
	at go\.chromium\.org/sizecheck/internal/errors\.TestWrap \(errors_test.go:\d+\)
.*
build failed
	at go\.chromium\.org/sizecheck/internal/errors\.TestWrap \(errors_test.go:\d+\)`)
	check(t, Wrap(New("build failed"), "case 1"), "case 1: build failed", traceRegexp)
}

func TestWrapForeignError(t *testing.T) {
	traceRegexp := regexp.MustCompile(`(?s)^case 1
	at go\.chromium\.org/sizecheck/internal/errors\.TestWrapForeignError \(errors_test.go:\d+\)
.*
exit status 1
	at \?\?\?$`)
	check(t, Wrapf(stderrors.New("exit status 1"), "case %d", 1), "case 1: exit status 1", traceRegexp)
}

func TestWrapNil(t *testing.T) {
	traceRegexp := regexp.MustCompile(`^no cause
	at go\.chromium\.org/sizecheck/internal/errors\.TestWrapNil \(errors_test.go:\d+\)`)
	check(t, Wrap(nil, "no cause"), "no cause", traceRegexp)
}

type statusError struct{ status int }

func (e *statusError) Error() string { return fmt.Sprintf("status %d", e.status) }

func TestAsThroughChain(t *testing.T) {
	err := Wrap(Wrapf(&statusError{status: 101}, "test step"), "case 9")

	var se *statusError
	if !As(err, &se) {
		t.Fatalf("As(%v) = false; want true", err)
	}
	if se.status != 101 {
		t.Errorf("status = %d; want 101", se.status)
	}
	if !Is(err, se) {
		t.Errorf("Is(%v, %v) = false; want true", err, se)
	}
	if u := Unwrap(err); u == nil || u.Error() != "test step: status 101" {
		t.Errorf("Unwrap(%v) = %v; want test step error", err, u)
	}
}
