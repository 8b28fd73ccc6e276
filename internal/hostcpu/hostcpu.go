// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package hostcpu reports whether the host can run code built for the
// target features of a matrix.
//
// A size test compiled for a feature the host lacks dies with an illegal
// instruction. The harness still runs such cases; this package only warns
// about them up front.
package hostcpu

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	xcpu "golang.org/x/sys/cpu"

	"go.chromium.org/sizecheck/internal/logging"
	"go.chromium.org/sizecheck/internal/matrix"
)

// Support tells whether the host implements a target feature.
type Support int

const (
	// Unknown means the feature name is not recognized.
	Unknown Support = iota
	// Supported means the host implements the feature.
	Supported
	// Unsupported means the host does not implement the feature.
	Unsupported
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Host describes the CPU the harness runs on.
type Host struct {
	Model    string
	features map[string]bool
}

// NewHost returns a Host with the given model name and feature table.
// Features missing from the table are Unknown.
func NewHost(model string, features map[string]bool) *Host {
	return &Host{Model: model, features: features}
}

// Detect inspects the current host.
func Detect(ctx context.Context) *Host {
	return NewHost(modelName(ctx), x86Features())
}

// x86Features maps rustc target feature names to the host's x86 CPUID bits.
// SSE is implied by SSE2, which x/sys/cpu reports.
func x86Features() map[string]bool {
	x := xcpu.X86
	return map[string]bool{
		"sse":     x.HasSSE2,
		"sse2":    x.HasSSE2,
		"sse3":    x.HasSSE3,
		"ssse3":   x.HasSSSE3,
		"sse4.1":  x.HasSSE41,
		"sse4.2":  x.HasSSE42,
		"avx":     x.HasAVX,
		"avx2":    x.HasAVX2,
		"avx512f": x.HasAVX512F,
	}
}

func modelName(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		logging.Debug(ctx, "Failed to read CPU info: ", err)
		return "unknown"
	}
	if len(infos) == 0 || strings.TrimSpace(infos[0].ModelName) == "" {
		return "unknown"
	}
	return strings.TrimSpace(infos[0].ModelName)
}

// Support reports whether the host implements feature.
func (h *Host) Support(feature string) Support {
	has, ok := h.features[feature]
	switch {
	case !ok:
		return Unknown
	case has:
		return Supported
	default:
		return Unsupported
	}
}

// Check logs the host model and a warning for every case whose feature the
// host does not implement. It returns the indices of those cases. Cases
// with unknown features are logged at debug level and not returned.
func (h *Host) Check(ctx context.Context, m *matrix.Matrix) []int {
	logging.Infof(ctx, "Host CPU: %s", h.Model)
	var unsupported []int
	for i, tc := range m.Cases() {
		switch h.Support(tc.Feature()) {
		case Unsupported:
			logging.Infof(ctx, "WARNING: host CPU lacks %s; case %d is expected to fail", tc.Feature(), i)
			unsupported = append(unsupported, i)
		case Unknown:
			logging.Debugf(ctx, "Cannot tell whether host CPU supports %s", tc.Feature())
		}
	}
	return unsupported
}
