// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package capture - context capture policies.
// A policy decides how many plain arguments following an option belong to it.
package capture

import (
	"errors"
	"fmt"
)

// ErrorInsufficient - The bounded run didn't have enough plain arguments.
var ErrorInsufficient = errors.New("insufficient values")

// ErrorExcess - More values were supplied than the policy accepts.
var ErrorExcess = errors.New("too many values")

// Kind - Policy variant.
type Kind int

// Policy variants
const (
	EmptyKind Kind = iota
	FixedKind
	ZeroOrMoreKind
	OneOrMoreKind
)

func (k Kind) String() string {
	switch k {
	case FixedKind:
		return "fixed"
	case ZeroOrMoreKind:
		return "zero-or-more"
	case OneOrMoreKind:
		return "one-or-more"
	default:
		return "empty"
	}
}

// Policy - A closed variant, build it with Empty, Fixed, ZeroOrMore or OneOrMore.
// The zero value is Empty.
type Policy struct {
	kind Kind
	n    int
}

// Empty - Claims nothing, used by flags and counters.
func Empty() Policy { return Policy{kind: EmptyKind} }

// Fixed - Requires exactly n values.
// Panics on a negative n since that is a programming error.
func Fixed(n int) Policy {
	if n < 0 {
		panic(fmt.Sprintf("capture.Fixed: negative count %d", n))
	}
	return Policy{kind: FixedKind, n: n}
}

// ZeroOrMore - Claims the whole bounded run, possibly empty.
func ZeroOrMore() Policy { return Policy{kind: ZeroOrMoreKind} }

// OneOrMore - Claims the whole bounded run, it must not be empty.
func OneOrMore() Policy { return Policy{kind: OneOrMoreKind} }

// Kind - Returns the policy variant.
func (p Policy) Kind() Kind { return p.kind }

// Count - Returns n for Fixed policies and 0 otherwise.
func (p Policy) Count() int { return p.n }

// Min - Minimum number of values the option needs.
func (p Policy) Min() int {
	switch p.kind {
	case FixedKind:
		return p.n
	case OneOrMoreKind:
		return 1
	default:
		return 0
	}
}

// Max - Maximum number of values the option takes, -1 when unbounded.
func (p Policy) Max() int {
	switch p.kind {
	case FixedKind:
		return p.n
	case ZeroOrMoreKind, OneOrMoreKind:
		return -1
	default:
		return 0
	}
}

// ZeroArity - Indicates the option can be matched without any value.
// Only these options take part in compound expansion.
func (p Policy) ZeroArity() bool {
	return p.Min() == 0
}

// TakesValues - Indicates the option accepts at least one value.
func (p Policy) TakesValues() bool {
	return p.Max() != 0
}

// Limit - Returns how many more plain arguments may be drawn after `supplied`
// values were already provided with the assignment syntax, -1 when unbounded.
func (p Policy) Limit(supplied int) int {
	max := p.Max()
	if max < 0 {
		return -1
	}
	if supplied >= max {
		return 0
	}
	return max - supplied
}

// Validate - Checks the total number of values gathered.
func (p Policy) Validate(supplied, drawn int) error {
	total := supplied + drawn
	if max := p.Max(); max >= 0 && total > max {
		return fmt.Errorf("%w: %s accepts %d, got %d", ErrorExcess, p, max, total)
	}
	if total < p.Min() {
		return fmt.Errorf("%w: %s requires %d, got %d", ErrorInsufficient, p, p.Min(), total)
	}
	return nil
}

// Claim - Given the run of plain arguments bounded by the next option-like
// argument, returns the claimed prefix.
// The values supplied through assignment count toward the requirement.
func (p Policy) Claim(supplied int, run []string) ([]string, error) {
	n := len(run)
	if limit := p.Limit(supplied); limit >= 0 && limit < n {
		n = limit
	}
	if err := p.Validate(supplied, n); err != nil {
		return nil, err
	}
	return run[:n], nil
}

// Requirement - Human readable requirement, used in error messages.
func (p Policy) Requirement() string {
	switch p.kind {
	case FixedKind:
		if p.n == 1 {
			return "1 value"
		}
		return fmt.Sprintf("%d values", p.n)
	case OneOrMoreKind:
		return "at least 1 value"
	case ZeroOrMoreKind:
		return "any number of values"
	default:
		return "no value"
	}
}

func (p Policy) String() string {
	if p.kind == FixedKind {
		return fmt.Sprintf("fixed(%d)", p.n)
	}
	return p.kind.String()
}
