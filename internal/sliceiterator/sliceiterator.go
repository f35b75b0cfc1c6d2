// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds a forward iterator over the raw argument slice.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or an empty string if you are trying to read the value after having fully read the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// Skip - moves the index forward n positions without reading them.
// Skipping past the end leaves the Iterator exhausted.
func (a *Iterator) Skip(n int) {
	for i := 0; i < n && a.idx < len(a.data); i++ {
		a.idx++
	}
}

// Remaining - Get all values after the current index.
func (a *Iterator) Remaining() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	return a.data[a.idx+1:]
}

// Drain - exhausts the Iterator and returns how many values were left unread.
func (a *Iterator) Drain() int {
	n := len(a.Remaining())
	a.idx = len(a.data)
	return n
}
