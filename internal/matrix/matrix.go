// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package matrix declares the configurations under which the SimdBlock size
// is verified.
//
// A Matrix is an ordered, read-only list of TestCase values. Order only
// decides run order; no case depends on another. Nothing here checks that a
// size fits its feature: a wrong pairing is reported by the external test.
package matrix

import "fmt"

// TestCase is one (feature, target, toolchain, size) configuration.
// The zero value is not meaningful; use NewTestCase.
type TestCase struct {
	feature      string
	targetTriple string
	toolchain    string
	expectedSize int
}

// NewTestCase returns a TestCase expecting SimdBlock to be expectedSize bytes
// when built for targetTriple with toolchain and target feature enabled.
func NewTestCase(feature, targetTriple, toolchain string, expectedSize int) TestCase {
	return TestCase{
		feature:      feature,
		targetTriple: targetTriple,
		toolchain:    toolchain,
		expectedSize: expectedSize,
	}
}

// Feature returns the CPU target feature, e.g. "avx2".
func (tc TestCase) Feature() string { return tc.feature }

// TargetTriple returns the compilation target, e.g. "x86_64-unknown-linux-gnu".
func (tc TestCase) TargetTriple() string { return tc.targetTriple }

// Toolchain returns the toolchain channel selected before building.
func (tc TestCase) Toolchain() string { return tc.toolchain }

// ExpectedSize returns the expected SimdBlock size in bytes.
func (tc TestCase) ExpectedSize() int { return tc.expectedSize }

// Describe returns the line printed before the case runs.
func (tc TestCase) Describe() string {
	return fmt.Sprintf("TEST CASE: target_feature %s should cause SimdBlock to have size %d when compiled with %s on %s",
		tc.feature, tc.expectedSize, tc.toolchain, tc.targetTriple)
}

// Matrix is an ordered, immutable sequence of test cases.
type Matrix struct {
	cases []TestCase
}

// New returns a Matrix holding cases in the given order.
func New(cases ...TestCase) *Matrix {
	return &Matrix{cases: append([]TestCase(nil), cases...)}
}

// Len returns the number of cases.
func (m *Matrix) Len() int { return len(m.cases) }

// At returns the i-th case. It panics if i is out of range.
func (m *Matrix) At(i int) TestCase { return m.cases[i] }

// Cases returns a copy of the cases in run order.
func (m *Matrix) Cases() []TestCase {
	return append([]TestCase(nil), m.cases...)
}
