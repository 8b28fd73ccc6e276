// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package fakeexec lets unit tests run the test executable itself as a fake
// external command.
//
// A test package registers an auxiliary main function in a top-level
// variable:
//
//	type cargoParams struct { ExitCode int }
//
//	var fakeCargo = fakeexec.NewAuxMain("fake_cargo", func(p cargoParams) {
//		os.Exit(p.ExitCode)
//	})
//
// and runs it as a subprocess with the environment returned by Params:
//
//	p, err := fakeCargo.Params(cargoParams{ExitCode: 101})
//	cmd := exec.Command(p.Executable())
//	cmd.Env = append(os.Environ(), p.Envs()...)
package fakeexec

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

const (
	// auxMainNameEnv selects the auxiliary main function to run.
	auxMainNameEnv = "SIZECHECK_AUX_MAIN_NAME"

	// auxMainValueEnv carries the JSON-encoded parameter of the function.
	auxMainValueEnv = "SIZECHECK_AUX_MAIN_VALUE"
)

// AuxMain is a registered auxiliary main function.
type AuxMain struct {
	name string
}

// Params returns what is needed to run the auxiliary main function with v,
// which must be JSON-serializable.
func (a *AuxMain) Params(v interface{}) (*AuxMainParams, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	p, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &AuxMainParams{
		executable: exe,
		name:       a.name,
		param:      string(p),
	}, nil
}

// AuxMainParams holds the executable and environment needed to run an
// auxiliary main function.
type AuxMainParams struct {
	executable string
	name       string
	param      string
}

// Executable returns the path to the current executable.
func (a *AuxMainParams) Executable() string {
	return a.executable
}

// Envs returns "KEY=VALUE" entries selecting the auxiliary main function.
func (a *AuxMainParams) Envs() []string {
	return []string{
		fmt.Sprintf("%s=%s", auxMainNameEnv, a.name),
		fmt.Sprintf("%s=%s", auxMainValueEnv, a.param),
	}
}

var knownNames = map[string]struct{}{}

// NewAuxMain registers f, of type func(T) with a JSON-decodable T, under
// name. It must be called from a top-level variable initializer and name
// must be unique within the executable.
//
// When the process was started for this function, NewAuxMain calls f and
// exits with status 0 if f returns. Otherwise it returns an *AuxMain.
func NewAuxMain(name string, f interface{}) *AuxMain {
	if _, found := knownNames[name]; found {
		panic(fmt.Sprintf("fakeexec.NewAuxMain: multiple registrations for %q", name))
	}
	knownNames[name] = struct{}{}

	tf := reflect.TypeOf(f)
	if tf.Kind() != reflect.Func || tf.NumIn() != 1 || tf.NumOut() != 0 {
		panic(fmt.Sprintf("fakeexec.NewAuxMain: %s: f must be func(T)", name))
	}

	if os.Getenv(auxMainNameEnv) != name {
		return &AuxMain{name: name}
	}

	vp := reflect.New(tf.In(0))
	if err := json.Unmarshal([]byte(os.Getenv(auxMainValueEnv)), vp.Interface()); err != nil {
		panic(fmt.Sprintf("fakeexec.NewAuxMain: %s: failed to unmarshal parameter: %v", name, err))
	}
	reflect.ValueOf(f).Call([]reflect.Value{vp.Elem()})
	os.Exit(0)
	panic("unreachable")
}
