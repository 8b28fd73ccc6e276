// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package caserun

import (
	"strconv"

	"go.chromium.org/sizecheck/internal/command"
	"go.chromium.org/sizecheck/internal/matrix"
)

const (
	// ExpectedSizeEnv carries the expected SimdBlock size to the test.
	ExpectedSizeEnv = "ALIGNERS_TEST_SIMD_EXPECTED_SIZE"

	// rustFlagsEnv holds the extra compiler flags cargo passes to rustc.
	rustFlagsEnv = "RUSTFLAGS"

	// sizeTestName is the ignored-by-default test asserting the size.
	sizeTestName = "simd_alignment_test"
)

// Step identifies one of the commands run for a case.
type Step int

const (
	// StepSelectToolchain selects the toolchain channel.
	StepSelectToolchain Step = iota
	// StepBuild builds the library with the target feature enabled.
	StepBuild
	// StepTest runs the size test with the target feature enabled.
	StepTest

	numSteps
)

func (s Step) String() string {
	switch s {
	case StepSelectToolchain:
		return "toolchain"
	case StepBuild:
		return "build"
	case StepTest:
		return "test"
	default:
		return "step(" + strconv.Itoa(int(s)) + ")"
	}
}

// FeatureFlags returns the RUSTFLAGS value enabling feature.
func FeatureFlags(feature string) string {
	return "-C target-feature=+" + feature
}

// Plan returns the commands for tc, indexed by Step.
//
// The toolchain step has no precondition. Its postcondition is that the
// working directory's toolchain override is tc.Toolchain(); the build and
// test steps rely on it. The override lives outside this process and is
// shared by every case, so cases must not run concurrently.
func Plan(tc matrix.TestCase) []*command.Invocation {
	featureEnv := rustFlagsEnv + "=" + FeatureFlags(tc.Feature())
	target := tc.TargetTriple()

	invs := make([]*command.Invocation, numSteps)
	invs[StepSelectToolchain] = command.New(nil, "rustup", "override", "set", tc.Toolchain())
	invs[StepBuild] = command.New([]string{featureEnv}, "cargo", "build", "--target", target)
	invs[StepTest] = command.New(
		[]string{ExpectedSizeEnv + "=" + strconv.Itoa(tc.ExpectedSize()), featureEnv},
		"cargo", "test", sizeTestName, "--target", target, "--", "--include-ignored")
	return invs
}
