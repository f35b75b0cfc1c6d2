// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	i := New(data)
	if i.Size() != len(data) {
		t.Errorf("wrong size: %d\n", i.Size())
	}
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value before Next: %s\n", i.Value())
	}
	for i.Next() {
		if i.Index() == 0 {
			if i.Value() != "a" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
		}
		if i.Index() == 2 {
			if i.Value() != "c" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
			if !reflect.DeepEqual(i.Remaining(), []string{"d"}) {
				t.Errorf("wrong remaining value: %v\n", i.Remaining())
			}
		}
	}
	if i.Value() != "" {
		t.Errorf("wrong value after end: %s\n", i.Value())
	}
	if i.Next() {
		t.Errorf("Next after end returned true")
	}
	if len(i.Remaining()) != 0 {
		t.Errorf("wrong remaining value: %v\n", i.Remaining())
	}
}

func TestSkip(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	i := New(data)
	i.Skip(2)
	if !i.Next() || i.Value() != "c" {
		t.Errorf("wrong value after skip: %s\n", i.Value())
	}

	i = New(data)
	i.Skip(10)
	if i.Next() {
		t.Errorf("Next after skipping past the end returned true")
	}
}

func TestDrain(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	i := New(data)
	i.Next()
	if n := i.Drain(); n != 3 {
		t.Errorf("wrong drained count: %d\n", n)
	}
	if i.Next() {
		t.Errorf("Next after drain returned true")
	}
	if n := i.Drain(); n != 0 {
		t.Errorf("wrong drained count on exhausted iterator: %d\n", n)
	}
}
