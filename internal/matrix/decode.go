// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package matrix

import (
	_ "embed"

	"gopkg.in/yaml.v2"

	"go.chromium.org/sizecheck/internal/errors"
)

//go:embed matrix.yaml
var defaultYAML []byte

// file is the YAML layout of a matrix document.
type file struct {
	Defaults fileDefaults `yaml:"defaults,omitempty"`
	Cases    []fileCase   `yaml:"cases"`
}

type fileDefaults struct {
	Target    string `yaml:"target,omitempty"`
	Toolchain string `yaml:"toolchain,omitempty"`
}

type fileCase struct {
	Feature   string `yaml:"feature"`
	Target    string `yaml:"target,omitempty"`
	Toolchain string `yaml:"toolchain,omitempty"`
	Size      int    `yaml:"size"`
}

// Default returns the matrix compiled into the binary.
func Default() (*Matrix, error) {
	m, err := Parse(defaultYAML)
	if err != nil {
		return nil, errors.Wrap(err, "built-in matrix")
	}
	return m, nil
}

// Parse decodes a matrix document. Entries inherit target and toolchain from
// the defaults block when they omit them. Unknown keys are rejected.
func Parse(b []byte) (*Matrix, error) {
	var f file
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return nil, errors.Wrap(err, "failed to decode matrix")
	}

	cases := make([]TestCase, 0, len(f.Cases))
	for i, c := range f.Cases {
		if c.Target == "" {
			c.Target = f.Defaults.Target
		}
		if c.Toolchain == "" {
			c.Toolchain = f.Defaults.Toolchain
		}
		switch {
		case c.Feature == "":
			return nil, errors.Errorf("case %d: feature is missing", i)
		case c.Target == "":
			return nil, errors.Errorf("case %d (%s): target is missing", i, c.Feature)
		case c.Toolchain == "":
			return nil, errors.Errorf("case %d (%s): toolchain is missing", i, c.Feature)
		case c.Size <= 0:
			return nil, errors.Errorf("case %d (%s): size must be positive; got %d", i, c.Feature, c.Size)
		}
		cases = append(cases, NewTestCase(c.Feature, c.Target, c.Toolchain, c.Size))
	}
	return &Matrix{cases: cases}, nil
}

// MarshalYAML implements yaml.Marshaler. Every case is written out in full,
// without a defaults block.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	f := file{Cases: make([]fileCase, 0, len(m.cases))}
	for _, tc := range m.cases {
		f.Cases = append(f.Cases, fileCase{
			Feature:   tc.feature,
			Target:    tc.targetTriple,
			Toolchain: tc.toolchain,
			Size:      tc.expectedSize,
		})
	}
	return f, nil
}
