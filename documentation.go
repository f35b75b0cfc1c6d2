// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argparser - Typed command line argument parser.

It operates on any given slice of strings, hands the converted values of the
registered options to their callbacks and returns the arguments it didn't use.
The remaining arguments can be passed to another parser to implement subcommands.

# Usage

	p := argparser.New()
	p.SetCompoundOptions(true)

	var width int
	var files []string
	verbosity := 0
	err := p.AddOptions(
		option.NewValue("width", "w", func(i int) { width = i }, option.Required()),
		option.NewMultiValue("files", "f", func(s []string) { files = s }, option.Capture(capture.ZeroOrMore())),
		option.NewCounter("verbose", "v", func() { verbosity++ }),
		option.NewHelp(func() { fmt.Println(usage) }),
	)
	if err != nil {
		// Programming error, names are validated on registration.
	}

	remaining, err := p.ParseKnown(os.Args[1:])
	if err != nil {
		// User error
	}
	if p.Halted() {
		// Help was requested
	}

# Features

• Long `--name`, short `-n` and, when enabled, slash `/name` options.
Any of them accept `=value`, for example: `--width=500`.

• Names are matched regardless of the prefix, `-width` and `--w` are valid.

• Compound short options, `-abc` is `-a -b -c` when every character is a
registered option that doesn't require a value.

• Values are captured according to a capture policy: exactly n values,
zero or more, one or more, or none.

• Values are converted by type with a conversion registry that covers Go's
basic types, time.Time, time.Duration, url.URL, math/big numbers, uuid.UUID,
semver versions and human byte sizes.
Any type implementing encoding.TextUnmarshaler works out of the box and
custom converters can be registered.

• Negative numbers are values, `--offset -10` works.

• Required options, options with defaults and final options like help and
version that stop parsing.

• Counters, the only options that can be passed more than once.

• Typed errors for every failure, usable with errors.Is and errors.As.

# Panic

The library will panic if the programmer (not end user):

• Defines a negative fixed capture count.

• Registers a nil converter.
*/
package argparser
