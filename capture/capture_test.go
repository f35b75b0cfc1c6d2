// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package capture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClaim(t *testing.T) {
	run := []string{"a", "b", "c"}
	tests := []struct {
		name     string
		policy   Policy
		supplied int
		run      []string
		expected []string
		err      error
	}{
		{"empty", Empty(), 0, run, []string{}, nil},
		{"empty with assignment", Empty(), 1, run, nil, ErrorExcess},
		{"fixed 0", Fixed(0), 0, run, []string{}, nil},
		{"fixed 1", Fixed(1), 0, run, []string{"a"}, nil},
		{"fixed 1 assigned", Fixed(1), 1, run, []string{}, nil},
		{"fixed 2 assigned", Fixed(2), 1, run, []string{"a"}, nil},
		{"fixed 3", Fixed(3), 0, run, []string{"a", "b", "c"}, nil},
		{"fixed 4 short", Fixed(4), 0, run, nil, ErrorInsufficient},
		{"fixed 1 nothing", Fixed(1), 0, []string{}, nil, ErrorInsufficient},
		{"zero or more", ZeroOrMore(), 0, run, []string{"a", "b", "c"}, nil},
		{"zero or more empty", ZeroOrMore(), 0, []string{}, []string{}, nil},
		{"zero or more assigned", ZeroOrMore(), 1, run, []string{"a", "b", "c"}, nil},
		{"one or more", OneOrMore(), 0, run, []string{"a", "b", "c"}, nil},
		{"one or more empty", OneOrMore(), 0, []string{}, nil, ErrorInsufficient},
		{"one or more assigned empty", OneOrMore(), 1, []string{}, []string{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Claim(tt.supplied, tt.run)
			if !errors.Is(err, tt.err) {
				t.Fatalf("wrong error: got %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Claim() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		policy    Policy
		min, max  int
		zeroArity bool
		str       string
	}{
		{Policy{}, 0, 0, true, "empty"},
		{Empty(), 0, 0, true, "empty"},
		{Fixed(0), 0, 0, true, "fixed(0)"},
		{Fixed(4), 4, 4, false, "fixed(4)"},
		{ZeroOrMore(), 0, -1, true, "zero-or-more"},
		{OneOrMore(), 1, -1, false, "one-or-more"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if tt.policy.Min() != tt.min || tt.policy.Max() != tt.max {
				t.Errorf("wrong bounds: got (%d, %d), want (%d, %d)", tt.policy.Min(), tt.policy.Max(), tt.min, tt.max)
			}
			if tt.policy.ZeroArity() != tt.zeroArity {
				t.Errorf("wrong zero arity: %v", tt.policy.ZeroArity())
			}
			if tt.policy.String() != tt.str {
				t.Errorf("wrong string: %s", tt.policy)
			}
		})
	}
}

func TestFixedNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Fixed(-1) did not panic")
		}
	}()
	Fixed(-1)
}
