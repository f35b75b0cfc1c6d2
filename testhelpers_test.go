// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/DavidGamba/go-argparser/option"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// recorder - Keeps the callback invocations in order.
type recorder struct {
	calls []string
}

func (r *recorder) flag(name string) func() {
	return func() {
		r.calls = append(r.calls, name)
	}
}

func record[T any](r *recorder, name string) func(T) {
	return func(v T) {
		r.calls = append(r.calls, fmt.Sprintf("%s=%v", name, v))
	}
}

// checkOptions - Compares option identity and order.
func checkOptions(t *testing.T, got []*option.Option, expected ...*option.Option) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("wrong number of options: got %v, want %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("wrong option at %d: got %s, want %s", i, got[i], expected[i])
		}
	}
}
