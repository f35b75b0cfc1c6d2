// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"github.com/DavidGamba/go-argparser/capture"
	"github.com/DavidGamba/go-argparser/convert"
)

// Alias - Adds aliases to an option.
func Alias(alias ...string) ModifyFn {
	return func(opt *Option) {
		opt.SetAlias(alias...)
	}
}

// Description - Add a description to an option for use in automated help.
func Description(msg string) ModifyFn {
	return func(opt *Option) {
		opt.SetDescription(msg)
	}
}

// Required - Parsing fails if the option is not passed and has no default.
func Required() ModifyFn {
	return func(opt *Option) {
		opt.SetRequired()
	}
}

// Hidden - Hides the option from help.
func Hidden() ModifyFn {
	return func(opt *Option) {
		opt.IsHidden = true
	}
}

// Final - Parsing stops after the option is handled.
func Final() ModifyFn {
	return func(opt *Option) {
		opt.IsFinal = true
	}
}

// Default - Value applied after parsing when the option wasn't passed.
// Use a []T for multi value options and a []interface{} for tuples.
func Default(v interface{}) ModifyFn {
	return func(opt *Option) {
		opt.SetDefault(v)
	}
}

// Capture - Sets the capture policy.
func Capture(p capture.Policy) ModifyFn {
	return func(opt *Option) {
		opt.SetCapture(p)
	}
}

// Converter - Converts the option values with fn instead of the registry converter.
func Converter(fn convert.Func) ModifyFn {
	return func(opt *Option) {
		opt.SetConverter(fn)
	}
}

// OnHandled - Runs fn every time the option is handled, after its handler.
func OnHandled(fn func(*Option)) ModifyFn {
	return func(opt *Option) {
		opt.hooks = append(opt.hooks, fn)
	}
}
