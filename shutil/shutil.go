// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package shutil renders commands as shell command lines for display.
package shutil

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// \w is [0-9A-Za-z_]. A leading equals sign is unsafe in zsh.
	leadingSafeChars  = `-\w@%+:,./`
	trailingSafeChars = leadingSafeChars + "="
)

// safeRE matches an argument that needs no quoting.
var safeRE = regexp.MustCompile(fmt.Sprintf("^[%s][%s]*$", leadingSafeChars, trailingSafeChars))

// envNameRE matches a valid environment variable name.
var envNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Escape escapes a string so it can be safely included as an argument in a
// shell command line. The string is not modified if it is already safe.
func Escape(s string) string {
	if safeRE.MatchString(s) {
		return s
	}
	return "'" + strings.Replace(s, "'", `'"'"'`, -1) + "'"
}

// EscapeSlice escapes each element of args and joins them with spaces.
func EscapeSlice(args []string) string {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = Escape(arg)
	}
	return strings.Join(escaped, " ")
}

// EscapeAssignment renders a "KEY=VALUE" environment entry as a shell
// assignment, quoting only the value. Entries whose key is not a valid
// variable name are escaped as a whole.
func EscapeAssignment(kv string) string {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || !envNameRE.MatchString(k) {
		return Escape(kv)
	}
	return k + "=" + Escape(v)
}

// CommandLine renders args prefixed by env assignments, e.g.
//
//	RUSTFLAGS='-C target-feature=+avx' cargo build --target x86_64-unknown-linux-gnu
func CommandLine(env, args []string) string {
	parts := make([]string, 0, len(env)+len(args))
	for _, kv := range env {
		parts = append(parts, EscapeAssignment(kv))
	}
	if len(args) > 0 {
		parts = append(parts, EscapeSlice(args))
	}
	return strings.Join(parts, " ")
}
