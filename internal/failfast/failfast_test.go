// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package failfast

import (
	"testing"

	"go.chromium.org/sizecheck/internal/errors"
)

func TestCounterFirstFailureAborts(t *testing.T) {
	c := NewCounter(1)
	if err := c.Check(); err != nil {
		t.Fatalf("Check before any failure = %v; want nil", err)
	}
	first := errors.New("build failed")
	c.Record(first)
	c.Record(errors.New("test failed"))
	if err := c.Check(); err != first {
		t.Errorf("Check = %v; want %v", err, first)
	}
}

func TestCounterThreshold(t *testing.T) {
	c := NewCounter(2)
	c.Record(errors.New("a"))
	if err := c.Check(); err != nil {
		t.Errorf("Check after 1 of 2 failures = %v; want nil", err)
	}
	c.Record(errors.New("b"))
	if err := c.Check(); err == nil || err.Error() != "a" {
		t.Errorf("Check after 2 of 2 failures = %v; want a", err)
	}
}

func TestNonPositiveThreshold(t *testing.T) {
	for _, threshold := range []int{0, -1} {
		c := NewCounter(threshold)
		first := errors.New("build failed")
		c.Record(first)
		if err := c.Check(); err != first {
			t.Errorf("NewCounter(%d): Check = %v; want %v", threshold, err, first)
		}
	}
}
