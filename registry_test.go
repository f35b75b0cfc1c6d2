// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"errors"
	"testing"

	"github.com/DavidGamba/go-argparser/capture"
	"github.com/DavidGamba/go-argparser/option"
	"github.com/google/go-cmp/cmp"
)

func TestRegistryAdd(t *testing.T) {
	tests := []struct {
		name     string
		existing []*option.Option
		option   *option.Option
		err      error
		conflict *NameConflictError
	}{
		{"ok", nil, option.NewFlag("verbose", "v", nil), nil, nil},
		{"short only", nil, option.NewFlag("", "v", nil), nil, nil},
		{"no names", nil, option.NewFlag("", "", nil, option.Alias("x")), ErrorNameConflict, &NameConflictError{}},
		{"leading dash", nil, option.NewFlag("-v", "", nil), ErrorNameConflict, &NameConflictError{Option: "-v", Name: "-v"}},
		{"leading slash", nil, option.NewFlag("/v", "", nil), ErrorNameConflict, &NameConflictError{Option: "/v", Name: "/v"}},
		{"space", nil, option.NewFlag("dry run", "", nil), ErrorNameConflict, &NameConflictError{Option: "dry run", Name: "dry run"}},
		{"equal", nil, option.NewFlag("a=b", "", nil), ErrorNameConflict, &NameConflictError{Option: "a=b", Name: "a=b"}},
		{"invalid alias", nil, option.NewFlag("verbose", "", nil, option.Alias("x y")), ErrorNameConflict, &NameConflictError{Option: "verbose", Name: "x y"}},
		{"inner dash", nil, option.NewFlag("dry-run", "n", nil), nil, nil},
		{"question mark", nil, option.NewFlag("", "?", nil), nil, nil},
		{"repeated own name", nil, option.NewFlag("v", "v", nil, option.Alias("v")), nil, nil},
		{"long conflict", []*option.Option{option.NewFlag("verbose", "", nil)}, option.NewFlag("verbose", "V", nil), ErrorNameConflict, &NameConflictError{Option: "verbose", Name: "verbose", Existing: "verbose"}},
		{"short against long", []*option.Option{option.NewFlag("v", "", nil)}, option.NewFlag("verbose", "v", nil), ErrorNameConflict, &NameConflictError{Option: "verbose", Name: "v", Existing: "v"}},
		{"alias conflict", []*option.Option{option.NewFlag("help", "h", nil)}, option.NewFlag("host", "", nil, option.Alias("h")), ErrorNameConflict, &NameConflictError{Option: "host", Name: "h", Existing: "help"}},
		{"case sensitive", []*option.Option{option.NewFlag("", "v", nil)}, option.NewFlag("", "V", nil), nil, nil},
		{"definition", nil, option.NewFlag("verbose", "", nil, option.Capture(capture.Fixed(1))), ErrorInvalidDefinition, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry()
			for _, opt := range tt.existing {
				if err := r.add(opt); err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
			}
			err := r.add(tt.option)
			checkError(t, err, tt.err)
			if tt.conflict != nil {
				var got *NameConflictError
				if !errors.As(err, &got) {
					t.Fatalf("wrong error type: %T", err)
				}
				if diff := cmp.Diff(tt.conflict, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
			if err != nil {
				if len(r.list()) != len(tt.existing) {
					t.Errorf("failed option was registered")
				}
				return
			}
			for _, name := range tt.option.Names() {
				if opt, ok := r.lookup(name); !ok || opt != tt.option {
					t.Errorf("lookup(%q) didn't find the option", name)
				}
			}
		})
	}
}

func TestRegistryLookupAndRemove(t *testing.T) {
	r := newRegistry()
	verbose := option.NewFlag("verbose", "v", nil, option.Alias("loud"))
	width := option.NewValue[int]("width", "w", nil)
	help := option.NewHelp(nil)
	for _, opt := range []*option.Option{verbose, width, help} {
		if err := r.add(opt); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	if diff := cmp.Diff([]string{"?", "h", "help", "loud", "v", "verbose", "w", "width"}, r.names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	checkOptions(t, r.list(), verbose, width, help)
	if _, ok := r.lookup("Verbose"); ok {
		t.Errorf("case sensitive lookup matched")
	}

	if !r.remove(width) {
		t.Errorf("remove returned false")
	}
	if r.remove(width) {
		t.Errorf("second remove returned true")
	}
	if _, ok := r.lookup("w"); ok {
		t.Errorf("removed option still indexed")
	}
	checkOptions(t, r.list(), verbose, help)

	// The name can be registered again
	if err := r.add(option.NewValue[string]("width", "", nil)); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestRegistryComparison(t *testing.T) {
	t.Run("fold", func(t *testing.T) {
		r := newRegistry()
		opt := option.NewFlag("Verbose", "", nil)
		_ = r.add(opt)
		if err := r.setComparison(CaseInsensitive); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		for _, name := range []string{"verbose", "VERBOSE", "Verbose"} {
			if got, ok := r.lookup(name); !ok || got != opt {
				t.Errorf("lookup(%q) failed", name)
			}
		}
		err := r.add(option.NewFlag("VERBOSE", "", nil))
		checkError(t, err, ErrorNameConflict)

		if err := r.setComparison(CaseSensitive); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, ok := r.lookup("verbose"); ok {
			t.Errorf("case sensitive lookup matched")
		}
	})

	t.Run("collision", func(t *testing.T) {
		r := newRegistry()
		_ = r.add(option.NewFlag("", "v", nil))
		_ = r.add(option.NewFlag("", "V", nil))
		err := r.setComparison(CaseInsensitive)
		checkError(t, err, ErrorNameConflict)
		if r.comparison != CaseSensitive {
			t.Errorf("comparison changed after a failure")
		}
		if _, ok := r.lookup("V"); !ok {
			t.Errorf("index changed after a failure")
		}
	})
}
