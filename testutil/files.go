// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package testutil provides support code for unit tests.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// TempDir creates a temporary directory prefixed by
// "sizecheck_unittest_[TestName]." and returns its path. The caller removes
// it. If the directory cannot be created, a fatal error is reported to t.
func TempDir(t *testing.T) string {
	t.Helper()
	// Subtests have slashes in their name.
	name := strings.Replace(t.Name(), "/", "_", -1)
	td, err := os.MkdirTemp("", "sizecheck_unittest_"+name+".")
	if err != nil {
		t.Fatal(err)
	}
	return td
}
