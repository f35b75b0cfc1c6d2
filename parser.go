// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"io"
	"log"
	"reflect"
	"sort"
	"strings"

	"github.com/DavidGamba/go-argparser/convert"
	"github.com/DavidGamba/go-argparser/option"
	"github.com/google/shlex"
	"github.com/hashicorp/go-multierror"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// SuggestionDistance - Maximum edit distance for a name to be suggested on an unrecognized option.
var SuggestionDistance = 2

// Parser - main object.
type Parser struct {
	registry   *registry
	converters *convert.Registry
	skipArgs   int
	compound   bool
	slash      bool

	// State of the last parse
	halted  *option.Option
	handled []*option.Option
}

// New returns an empty Parser with the built-in converters.
// This is the starting point when using go-argparser.
// For example:
//
//	p := argparser.New()
func New() *Parser {
	return &Parser{
		registry:   newRegistry(),
		converters: convert.New(),
	}
}

// SetSkipArgs - Drops the first n arguments before parsing.
// Skipped arguments are never returned as extras.
func (p *Parser) SetSkipArgs(n int) *Parser {
	if n < 0 {
		n = 0
	}
	p.skipArgs = n
	return p
}

// SetCompoundOptions - Enables `-abc` as a shorthand for `-a -b -c`.
// Only applies when every character is a registered option that doesn't require a value.
func (p *Parser) SetCompoundOptions(b bool) *Parser {
	p.compound = b
	return p
}

// SetSlashOptions - Enables `/name` and `/name=value` options.
func (p *Parser) SetSlashOptions(b bool) *Parser {
	p.slash = b
	return p
}

// SetNameComparison - Sets how option names are matched for every prefix.
// Returns a NameConflictError and keeps the previous policy when registered
// names collide under the new one.
func (p *Parser) SetNameComparison(c NameComparison) error {
	return p.registry.setComparison(c)
}

// SetConverters - Uses r instead of the parser's own registry, r can be shared between parsers.
func (p *Parser) SetConverters(r *convert.Registry) *Parser {
	if r != nil {
		p.converters = r
	}
	return p
}

// Converters - Returns the conversion registry.
//
//	convert.Register(p.Converters(), func(s string) (Level, error) { ... })
func (p *Parser) Converters() *convert.Registry {
	return p.converters
}

// AddConverter - Registers fn as the converter for type t, the last registration wins.
func (p *Parser) AddConverter(t reflect.Type, fn convert.Func) *Parser {
	p.converters.Register(t, fn)
	return p
}

// AddOption - Registers an option.
// Names are validated here, never at parse time.
func (p *Parser) AddOption(opt *option.Option) error {
	return p.registry.add(opt)
}

// AddOptions - Registers every option and returns all the errors found.
// Valid options are registered even when others fail.
func (p *Parser) AddOptions(opts ...*option.Option) error {
	var result *multierror.Error
	for _, opt := range opts {
		err := p.AddOption(opt)
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// RemoveOption - Unregisters the option, returns false if it wasn't registered.
func (p *Parser) RemoveOption(opt *option.Option) bool {
	return p.registry.remove(opt)
}

// RemoveOptionByName - Unregisters the option registered with the given name or alias.
func (p *Parser) RemoveOptionByName(name string) bool {
	opt, ok := p.registry.lookup(name)
	if !ok {
		return false
	}
	return p.registry.remove(opt)
}

// Option - Returns the option registered with the given name or alias.
func (p *Parser) Option(name string) (*option.Option, bool) {
	return p.registry.lookup(name)
}

// Options - Returns the registered options in registration order.
func (p *Parser) Options() []*option.Option {
	return p.registry.list()
}

// Called - Indicates if the option was handled.
// If the `name` is an option that wasn't declared it will return false.
func (p *Parser) Called(name string) bool {
	opt, ok := p.registry.lookup(name)
	return ok && opt.Called
}

// Handled - Returns the options handled by the last parse, in order.
// Repeatable options show once per occurrence and defaults are included.
func (p *Parser) Handled() []*option.Option {
	return p.handled
}

// ResetHandledState - Resets every option so the parser can be used again.
// Without a reset, matching an option handled in a previous parse fails with OptionAlreadyHandled.
func (p *Parser) ResetHandledState() *Parser {
	for _, opt := range p.registry.list() {
		opt.ResetHandledState()
	}
	p.halted = nil
	p.handled = nil
	return p
}

// Halted - Indicates the last parse was stopped by a final option.
func (p *Parser) Halted() bool {
	return p.halted != nil
}

// HaltedBy - Returns the final option that stopped the last parse, nil otherwise.
func (p *Parser) HaltedBy() *option.Option {
	return p.halted
}

func (p *Parser) parse(args []string) (*session, error) {
	s := newSession(p, args)
	err := s.run()
	p.halted = s.halted
	p.handled = s.handled
	return s, err
}

// ParseKnown - Parses args and returns the arguments that weren't claimed by any option.
// Extras keep their relative order.
//
// When a final option is handled the remaining arguments are dropped,
// required options are not validated and Halted returns true.
func (p *Parser) ParseKnown(args []string) ([]string, error) {
	s, err := p.parse(args)
	if err != nil {
		return nil, err
	}
	if s.halted == nil {
		err = s.validate()
		p.handled = s.handled
		if err != nil {
			return nil, err
		}
	}
	return s.remaining(), nil
}

// Parse - Parses args and fails on the first argument no option claimed.
// Unrecognized option like arguments get a suggestion when a registered name is close.
func (p *Parser) Parse(args []string) error {
	s, err := p.parse(args)
	if err != nil {
		return err
	}
	if s.halted != nil {
		return nil
	}
	if len(s.extras) > 0 {
		return p.unrecognized(s.extras[0])
	}
	err = s.validate()
	p.handled = s.handled
	return err
}

// ParseString - Splits s using shell rules and calls Parse.
func (p *Parser) ParseString(s string) error {
	args, err := shlex.Split(s)
	if err != nil {
		return err
	}
	return p.Parse(args)
}

// ParseKnownString - Splits s using shell rules and calls ParseKnown.
func (p *Parser) ParseKnownString(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	return p.ParseKnown(args)
}

func (p *Parser) unrecognized(tok Token) error {
	e := &UnrecognizedArgumentError{Argument: tok.Raw, IsOption: tok.IsOption()}
	if e.IsOption {
		if name := p.suggest(tok.Name); name != "" {
			e.Suggestion = prefixed(name)
		}
	}
	Logger.Printf("unrecognized argument %q, suggestion %q", e.Argument, e.Suggestion)
	return e
}

// suggest - Returns the closest registered name.
// Names containing the input as a fuzzy match rank first, then the smallest edit distance.
func (p *Parser) suggest(name string) string {
	names := p.registry.names()
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, distance := "", SuggestionDistance+1
	for _, n := range names {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(n))
		if d < distance {
			best, distance = n, d
		}
	}
	return best
}

func prefixed(name string) string {
	if len([]rune(name)) > 1 {
		return "--" + name
	}
	return "-" + name
}
