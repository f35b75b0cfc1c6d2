// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"regexp"

	"github.com/DavidGamba/go-argparser/option"
	"github.com/tidwall/btree"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
)

// NameComparison - Indicates how option names are matched.
type NameComparison int

// Name comparison policies, they apply to long, short and slash options alike.
const (
	CaseSensitive NameComparison = iota
	CaseInsensitive
)

func (c NameComparison) String() string {
	if c == CaseInsensitive {
		return "case-insensitive"
	}
	return "case-sensitive"
}

// Names can't contain spaces or '=' and can't start with '-' or '/'.
var validName = regexp.MustCompile(`^[^\s=\-/][^\s=]*$`)

// registry - Registered options in registration order plus a sorted index of
// every name and alias.
type registry struct {
	comparison NameComparison
	fold       cases.Caser
	options    *orderedmap.OrderedMap[*option.Option, struct{}]
	index      *btree.Map[string, *option.Option]
}

func newRegistry() *registry {
	return &registry{
		fold:    cases.Fold(),
		options: orderedmap.New[*option.Option, struct{}](),
		index:   new(btree.Map[string, *option.Option]),
	}
}

func (r *registry) normalize(name string) string {
	if r.comparison == CaseInsensitive {
		return r.fold.String(name)
	}
	return name
}

// keys - Returns the normalized names of opt without duplicates.
func (r *registry) keys(opt *option.Option) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, name := range opt.Names() {
		k := r.normalize(name)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func (r *registry) add(opt *option.Option) error {
	if opt.LongName == "" && opt.ShortName == "" {
		return &NameConflictError{}
	}
	names := opt.Names()
	for _, name := range names {
		if !validName.MatchString(name) {
			return &NameConflictError{Option: opt.PreferredName(), Name: name}
		}
	}
	for _, k := range r.keys(opt) {
		if existing, ok := r.index.Get(k); ok {
			return &NameConflictError{Option: opt.PreferredName(), Name: k, Existing: existing.PreferredName()}
		}
	}
	if err := opt.Validate(); err != nil {
		return &DefinitionError{Option: opt.PreferredName(), Err: err}
	}
	for _, k := range r.keys(opt) {
		r.index.Set(k, opt)
	}
	r.options.Set(opt, struct{}{})
	Logger.Printf("registered option %s: %v", opt.PreferredName(), names)
	return nil
}

func (r *registry) remove(opt *option.Option) bool {
	if _, ok := r.options.Delete(opt); !ok {
		return false
	}
	for _, k := range r.keys(opt) {
		if o, ok := r.index.Get(k); ok && o == opt {
			r.index.Delete(k)
		}
	}
	Logger.Printf("removed option %s", opt.PreferredName())
	return true
}

func (r *registry) lookup(name string) (*option.Option, bool) {
	return r.index.Get(r.normalize(name))
}

// list - Returns the options in registration order.
func (r *registry) list() []*option.Option {
	list := make([]*option.Option, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Key)
	}
	return list
}

// names - Returns every normalized name and alias in sorted order.
func (r *registry) names() []string {
	return r.index.Keys()
}

// setComparison - Rebuilds the index with the new policy.
// The registry is left untouched when names collide under the new policy.
func (r *registry) setComparison(c NameComparison) error {
	next := &registry{comparison: c, fold: r.fold, index: new(btree.Map[string, *option.Option])}
	for _, opt := range r.list() {
		for _, k := range next.keys(opt) {
			if existing, ok := next.index.Get(k); ok {
				return &NameConflictError{Option: opt.PreferredName(), Name: k, Existing: existing.PreferredName()}
			}
			next.index.Set(k, opt)
		}
	}
	r.comparison = c
	r.index = next.index
	return nil
}
