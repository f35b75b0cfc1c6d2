// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"github.com/DavidGamba/go-argparser/convert"
	"github.com/DavidGamba/go-argparser/option"
)

// session - State for a single parse call.
type session struct {
	parser  *Parser
	stream  *tokenStream
	handled []*option.Option // Options handled in this call, in order
	extras  []Token
	halted  *option.Option
}

func newSession(p *Parser, args []string) *session {
	tz := &tokenizer{registry: p.registry, compound: p.compound, slash: p.slash}
	return &session{
		parser: p,
		stream: newTokenStream(args, p.skipArgs, tz),
	}
}

// run - Scans every token, then applies defaults and validates required options.
// Validation is skipped when a final option halts the scan.
func (s *session) run() error {
	for {
		tok, ok := s.stream.Next()
		if !ok {
			break
		}
		if !tok.IsOption() {
			s.extras = append(s.extras, tok)
			continue
		}
		opt, ok := s.parser.registry.lookup(tok.Name)
		if !ok {
			Logger.Printf("unknown option %q", tok.Raw)
			s.extras = append(s.extras, tok)
			continue
		}
		err := s.handle(tok, opt)
		if err != nil {
			return err
		}
		if opt.IsFinal {
			n := s.stream.Drain()
			Logger.Printf("halted by %s, dropped %d arguments", opt.PreferredName(), n)
			s.halted = opt
			return nil
		}
	}
	return nil
}

// handle - Captures, converts and dispatches the values for a matched option.
func (s *session) handle(tok Token, opt *option.Option) error {
	name := opt.PreferredName()
	if opt.Called && !opt.IsRepeatable {
		return &OptionAlreadyHandledError{Option: name}
	}

	args := []string{}
	if tok.Assigned {
		if !opt.Capture.TakesValues() {
			return &UnexpectedValueError{Option: name, Value: tok.Value}
		}
		args = append(args, tok.Value)
	}

	run := s.stream.PlainRun()
	raw := make([]string, len(run))
	for i, t := range run {
		raw[i] = t.Raw
	}
	claimed, err := opt.Capture.Claim(len(args), raw)
	if err != nil {
		Logger.Printf("capture failed for %s: %s", name, err)
		return &MissingValueError{Option: name, Requirement: opt.Capture.Requirement(), Got: len(args) + len(raw)}
	}
	s.stream.Unread(run[len(claimed):])
	args = append(args, claimed...)
	Logger.Printf("matched %s as %q, captured %d values", name, tok.Name, len(args))

	values := make([]interface{}, 0, len(args))
	for i, arg := range args {
		v, err := s.convert(opt, i, arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	err = opt.Handle(opt.Value(values), tok.Name)
	if err != nil {
		return err
	}
	s.handled = append(s.handled, opt)
	return nil
}

func (s *session) convert(opt *option.Option, i int, arg string) (interface{}, error) {
	t := opt.TypeAt(i)
	var v interface{}
	var err error
	if opt.Converter != nil {
		v, err = convert.Apply(t, opt.Converter, arg)
	} else {
		v, err = s.parser.converters.Convert(t, arg)
	}
	if err != nil {
		return nil, &ConversionError{Option: opt.PreferredName(), Value: arg, Type: t, Err: err}
	}
	return v, nil
}

// validate - Applies defaults to the options that weren't handled, in
// registration order, and fails on required options without one.
func (s *session) validate() error {
	for _, opt := range s.parser.registry.list() {
		if opt.Called {
			continue
		}
		if opt.HasDefault {
			Logger.Printf("applying default to %s", opt.PreferredName())
			err := opt.Handle(opt.Default, "")
			if err != nil {
				return err
			}
			s.handled = append(s.handled, opt)
			continue
		}
		if opt.IsRequired {
			return &RequiredOptionNotSpecifiedError{Option: opt.PreferredName()}
		}
	}
	return nil
}

// remaining - Returns the raw text of the extra arguments in order.
func (s *session) remaining() []string {
	out := make([]string, 0, len(s.extras))
	for _, tok := range s.extras {
		out = append(out, tok.Raw)
	}
	return out
}
