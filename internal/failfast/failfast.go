// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package failfast decides when a run must stop because of failures.
package failfast

// Counter records failures and aborts execution once their number reaches a
// threshold.
type Counter struct {
	threshold int
	fails     []error
}

// NewCounter constructs a Counter. A threshold below 1 is treated as 1.
func NewCounter(threshold int) *Counter {
	if threshold < 1 {
		threshold = 1
	}
	return &Counter{threshold: threshold}
}

// Record records a failure.
func (c *Counter) Record(err error) {
	c.fails = append(c.fails, err)
}

// Check returns the first recorded failure if the threshold has been
// reached, and nil otherwise.
func (c *Counter) Check() error {
	if len(c.fails) < c.threshold {
		return nil
	}
	return c.fails[0]
}
