// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package hostcpu

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	xcpu "golang.org/x/sys/cpu"

	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/logging/loggingtest"
	"go.chromium.org/sizecheck/internal/matrix"
)

const x86 = "x86_64-unknown-linux-gnu"

func TestSupport(t *testing.T) {
	h := NewHost("Test CPU", map[string]bool{"sse2": true, "avx512f": false})
	for feature, want := range map[string]Support{
		"sse2":    Supported,
		"avx512f": Unsupported,
		"neon":    Unknown,
	} {
		if got := h.Support(feature); got != want {
			t.Errorf("Support(%q) = %v; want %v", feature, got, want)
		}
	}
}

func TestCheck(t *testing.T) {
	h := NewHost("Test CPU", map[string]bool{"avx": true, "avx512f": false})
	m := matrix.New(
		matrix.NewTestCase("avx", x86, "stable", 32),
		matrix.NewTestCase("avx512f", x86, "nightly", 64),
		matrix.NewTestCase("neon", "aarch64-unknown-linux-gnu", "stable", 16),
	)
	logger := loggingtest.NewLogger(t, logging.LevelInfo)
	ctx := logging.AttachLogger(context.Background(), logger)

	got := h.Check(ctx, m)
	if diff := cmp.Diff(got, []int{1}); diff != "" {
		t.Errorf("Check mismatch (-got +want):\n%s", diff)
	}
	wantLogs := []string{
		"Host CPU: Test CPU",
		"WARNING: host CPU lacks avx512f; case 1 is expected to fail",
	}
	if diff := cmp.Diff(logger.Logs(), wantLogs); diff != "" {
		t.Errorf("Logs mismatch (-got +want):\n%s", diff)
	}
}

func TestDetectMatchesCPUID(t *testing.T) {
	h := Detect(context.Background())
	if h.Model == "" {
		t.Error("Detect returned an empty model name")
	}
	for feature, has := range map[string]bool{
		"sse2":    xcpu.X86.HasSSE2,
		"avx":     xcpu.X86.HasAVX,
		"avx2":    xcpu.X86.HasAVX2,
		"avx512f": xcpu.X86.HasAVX512F,
	} {
		want := Unsupported
		if has {
			want = Supported
		}
		if got := h.Support(feature); got != want {
			t.Errorf("Support(%q) = %v; want %v", feature, got, want)
		}
	}
}

func TestDefaultMatrixFeaturesKnown(t *testing.T) {
	m, err := matrix.Default()
	if err != nil {
		t.Fatal("Default failed: ", err)
	}
	h := NewHost("", x86Features())
	for _, tc := range m.Cases() {
		if h.Support(tc.Feature()) == Unknown {
			t.Errorf("Feature %q of the built-in matrix is not in the CPUID table", tc.Feature())
		}
	}
}
