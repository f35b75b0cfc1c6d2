// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DavidGamba/go-argparser/internal/sliceiterator"
	"github.com/ef-ds/deque"
)

// TokenKind - Classification of a raw argument.
type TokenKind int

// Token kinds
const (
	PlainToken TokenKind = iota
	LongToken
	ShortToken
	SlashToken
)

func (k TokenKind) String() string {
	switch k {
	case LongToken:
		return "long"
	case ShortToken:
		return "short"
	case SlashToken:
		return "slash"
	default:
		return "plain"
	}
}

// Token - A classified argument.
type Token struct {
	Raw      string    // Argument as received
	Index    int       // Position in the argument list, skipped arguments included
	Kind     TokenKind // Option like kind or plain
	Name     string    // Option name without prefix or assignment
	Value    string    // Value after the first '='
	Assigned bool      // The argument used the name=value syntax
	Expanded bool      // Produced by compound expansion of Raw
}

// IsOption - Indicates the token is option like.
func (t Token) IsOption() bool {
	return t.Kind != PlainToken
}

func (t Token) String() string {
	if t.Kind == PlainToken {
		return fmt.Sprintf("%d:plain(%s)", t.Index, t.Raw)
	}
	if t.Assigned {
		return fmt.Sprintf("%d:%s(%s=%s)", t.Index, t.Kind, t.Name, t.Value)
	}
	return fmt.Sprintf("%d:%s(%s)", t.Index, t.Kind, t.Name)
}

// 1: leading dashes or /
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`^(--?|/)([^=]*)(=.*)?$`)

// Bodies that are numeric literals: 10, 1.5, .5, 1e-5
var isNumberRegex = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// tokenizer - Classifies arguments using the parser configuration.
type tokenizer struct {
	registry *registry
	compound bool
	slash    bool
}

/*
classify - Returns the tokens for a raw argument.

	--name[=value] long option
	-x[=value]     short option
	-xyz           compound expansion into -x -y -z when enabled and every
	               character is a registered zero arity option, a literal short option otherwise
	/name[=value]  slash option when enabled
	-10, -1.5e3    plain unless an option with that exact name exists

Everything else, including `-`, `--`, `/` and assignments with an empty
name, is a plain token.
*/
func (tz *tokenizer) classify(raw string, index int) []Token {
	plain := []Token{{Raw: raw, Index: index, Kind: PlainToken}}
	match := isOptionRegex.FindStringSubmatch(raw)
	if match == nil || match[2] == "" {
		return plain
	}
	tok := Token{Raw: raw, Index: index, Name: match[2]}
	if match[3] != "" {
		tok.Assigned = true
		tok.Value = strings.TrimPrefix(match[3], "=")
	}
	switch match[1] {
	case "--":
		tok.Kind = LongToken
	case "/":
		if !tz.slash {
			return plain
		}
		tok.Kind = SlashToken
	default:
		if isNumberRegex.MatchString(strings.TrimPrefix(raw, "-")) {
			if _, ok := tz.registry.lookup(tok.Name); !ok {
				return plain
			}
		}
		tok.Kind = ShortToken
		if tz.compound && !tok.Assigned {
			if expanded, ok := tz.expand(tok); ok {
				return expanded
			}
		}
	}
	return []Token{tok}
}

// expand - Splits `-xyz` when every character is a registered zero arity option.
func (tz *tokenizer) expand(tok Token) ([]Token, bool) {
	runes := []rune(tok.Name)
	if len(runes) < 2 {
		return nil, false
	}
	tokens := make([]Token, 0, len(runes))
	for _, r := range runes {
		opt, ok := tz.registry.lookup(string(r))
		if !ok || !opt.Capture.ZeroArity() {
			return nil, false
		}
		tokens = append(tokens, Token{Raw: tok.Raw, Index: tok.Index, Kind: ShortToken, Name: string(r), Expanded: true})
	}
	return tokens, true
}

// tokenStream - Lazily classified arguments.
// Classification happens when an argument is first read so compound expansion
// and negative number detection see the registry at parse time.
type tokenStream struct {
	args    *sliceiterator.Iterator
	pending *deque.Deque
	tz      *tokenizer
}

// newTokenStream - The first skip arguments are dropped unconditionally.
func newTokenStream(args []string, skip int, tz *tokenizer) *tokenStream {
	it := sliceiterator.New(args)
	if skip > 0 {
		it.Skip(skip)
	}
	return &tokenStream{args: it, pending: deque.New(), tz: tz}
}

func (ts *tokenStream) fill() bool {
	if ts.pending.Len() > 0 {
		return true
	}
	if !ts.args.Next() {
		return false
	}
	for _, tok := range ts.tz.classify(ts.args.Value(), ts.args.Index()) {
		Logger.Printf("token %s", tok)
		ts.pending.PushBack(tok)
	}
	return ts.pending.Len() > 0
}

// Next - Returns the next token.
func (ts *tokenStream) Next() (Token, bool) {
	if !ts.fill() {
		return Token{}, false
	}
	v, _ := ts.pending.PopFront()
	return v.(Token), true
}

func (ts *tokenStream) peek() (Token, bool) {
	if !ts.fill() {
		return Token{}, false
	}
	v, _ := ts.pending.Front()
	return v.(Token), true
}

// PlainRun - Removes and returns the plain tokens up to the next option like
// token or the end of the stream.
func (ts *tokenStream) PlainRun() []Token {
	run := []Token{}
	for {
		tok, ok := ts.peek()
		if !ok || tok.IsOption() {
			return run
		}
		ts.pending.PopFront()
		run = append(run, tok)
	}
}

// Unread - Puts tokens back at the front of the stream keeping their order.
func (ts *tokenStream) Unread(tokens []Token) {
	for i := len(tokens) - 1; i >= 0; i-- {
		ts.pending.PushFront(tokens[i])
	}
}

// Drain - Discards everything left and returns the number of arguments dropped.
func (ts *tokenStream) Drain() int {
	n := 0
	for ts.pending.Len() > 0 {
		ts.pending.PopFront()
		n++
	}
	return n + ts.args.Drain()
}
