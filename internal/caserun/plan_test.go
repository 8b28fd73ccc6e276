// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package caserun

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/sizecheck/internal/matrix"
)

func TestPlan(t *testing.T) {
	tc := matrix.NewTestCase("sse4.1", "x86_64-unknown-linux-gnu", "stable", 16)
	var got []string
	for _, inv := range Plan(tc) {
		got = append(got, inv.String())
	}
	want := []string{
		"rustup override set stable",
		"RUSTFLAGS='-C target-feature=+sse4.1' cargo build --target x86_64-unknown-linux-gnu",
		"ALIGNERS_TEST_SIMD_EXPECTED_SIZE=16 RUSTFLAGS='-C target-feature=+sse4.1' cargo test simd_alignment_test --target x86_64-unknown-linux-gnu -- --include-ignored",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Plan mismatch (-got +want):\n%s", diff)
	}
}

func TestPlanEnvironment(t *testing.T) {
	tc := matrix.NewTestCase("avx512f", "x86_64-unknown-linux-gnu", "nightly", 64)
	invs := Plan(tc)
	if len(invs) != int(numSteps) {
		t.Fatalf("Plan returned %d invocations; want %d", len(invs), numSteps)
	}
	if env := invs[StepSelectToolchain].Env; len(env) != 0 {
		t.Errorf("Toolchain step env = %q; want none", env)
	}
	if diff := cmp.Diff(invs[StepBuild].Env, []string{"RUSTFLAGS=-C target-feature=+avx512f"}); diff != "" {
		t.Errorf("Build step env mismatch (-got +want):\n%s", diff)
	}
	want := []string{"ALIGNERS_TEST_SIMD_EXPECTED_SIZE=64", "RUSTFLAGS=-C target-feature=+avx512f"}
	if diff := cmp.Diff(invs[StepTest].Env, want); diff != "" {
		t.Errorf("Test step env mismatch (-got +want):\n%s", diff)
	}
}

func TestStepString(t *testing.T) {
	for s, want := range map[Step]string{
		StepSelectToolchain: "toolchain",
		StepBuild:           "build",
		StepTest:            "test",
		Step(7):             "step(7)",
	} {
		if got := s.String(); got != want {
			t.Errorf("Step(%d).String() = %q; want %q", int(s), got, want)
		}
	}
}
