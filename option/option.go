// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - option descriptor struct and methods.
package option

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DavidGamba/go-argparser/capture"
	"github.com/DavidGamba/go-argparser/convert"
)

// ErrorDefinition - Indicates the option combination of kind, capture policy, types and default is not valid.
var ErrorDefinition = errors.New("")

// Handler - Signature for the function that receives the converted option value.
//
// The value depends on the option kind:
// nil for flags and counters, T for single values and enumerations,
// []T for multi values and []interface{} for tuples.
type Handler func(value interface{}) error

// Kind - Indicates the kind of option.
type Kind int

// Option Kinds
const (
	FlagKind Kind = iota
	CounterKind
	ValueKind
	MultiValueKind
	EnumKind
	TupleKind
)

func (k Kind) String() string {
	switch k {
	case CounterKind:
		return "counter"
	case ValueKind:
		return "value"
	case MultiValueKind:
		return "multi-value"
	case EnumKind:
		return "enum"
	case TupleKind:
		return "tuple"
	default:
		return "flag"
	}
}

// Option - main object
type Option struct {
	LongName    string
	ShortName   string
	Aliases     []string
	Description string // Optional description used for help
	Kind        Kind

	IsRequired   bool // Indicates if the option is required
	IsHidden     bool // Hidden from help, it is still parsed and validated
	IsFinal      bool // Stops parsing when handled
	IsRepeatable bool // Can be handled more than once per parse

	Capture        capture.Policy
	Type           reflect.Type   // Value type, the element type for multi values
	ComponentTypes []reflect.Type // Per position types for tuples
	Converter      convert.Func   // Overrides the registry converter when set

	Default    interface{}
	HasDefault bool

	Called    bool   // Indicates if the option was handled in the current parse
	UsedAlias string // Name used when the option was called

	handler Handler
	hooks   []func(*Option)
}

// ModifyFn - Function signature for functions that modify an option.
type ModifyFn func(opt *Option)

// New - Returns a new option object.
// The kind specific constructors are usually a better fit.
func New(long, short string, kind Kind, policy capture.Policy, t reflect.Type, handler Handler) *Option {
	return &Option{
		LongName:  long,
		ShortName: short,
		Kind:      kind,
		Capture:   policy,
		Type:      t,
		handler:   handler,
	}
}

// NewFlag - Returns an option that takes no value.
func NewFlag(long, short string, fn func(), mods ...ModifyFn) *Option {
	opt := New(long, short, FlagKind, capture.Empty(), nil, func(interface{}) error {
		if fn != nil {
			fn()
		}
		return nil
	})
	return opt.Apply(mods...)
}

// NewCounter - Returns a flag that can be passed multiple times, fn is called on every occurrence.
//
//	-v -vvv // fn called 4 times with compound options enabled
func NewCounter(long, short string, fn func(), mods ...ModifyFn) *Option {
	opt := NewFlag(long, short, fn)
	opt.Kind = CounterKind
	opt.IsRepeatable = true
	return opt.Apply(mods...)
}

// NewFinal - Returns a flag that stops parsing when handled.
// No further arguments are processed and required options are not validated.
func NewFinal(long, short string, fn func(), mods ...ModifyFn) *Option {
	opt := NewFlag(long, short, fn)
	opt.IsFinal = true
	return opt.Apply(mods...)
}

// NewHelp - Returns the `--help`, `-h`, `-?` final flag.
func NewHelp(fn func(), mods ...ModifyFn) *Option {
	opt := NewFinal("help", "h", fn, Alias("?"), Description("Show help."))
	return opt.Apply(mods...)
}

// NewVersion - Returns the `--version` final flag.
func NewVersion(fn func(), mods ...ModifyFn) *Option {
	opt := NewFinal("version", "", fn, Description("Show version information."))
	return opt.Apply(mods...)
}

// NewValue - Returns an option that takes exactly one value of type T.
func NewValue[T any](long, short string, fn func(T), mods ...ModifyFn) *Option {
	opt := New(long, short, ValueKind, capture.Fixed(1), convert.TypeOf[T](), func(v interface{}) error {
		if fn != nil {
			fn(cast[T](v))
		}
		return nil
	})
	return opt.Apply(mods...)
}

// NewMultiValue - Returns an option that takes one or more values of type T.
// Use the Capture modifier to change the number of values, for example: capture.ZeroOrMore().
//
// Each value is converted in order, the first failure aborts the option.
func NewMultiValue[T any](long, short string, fn func([]T), mods ...ModifyFn) *Option {
	opt := New(long, short, MultiValueKind, capture.OneOrMore(), convert.TypeOf[T](), func(v interface{}) error {
		if fn != nil {
			fn(cast[[]T](v))
		}
		return nil
	})
	return opt.Apply(mods...)
}

// NewEnum - Returns an option whose single value must be one of the member names.
// Matching is exact and case sensitive.
func NewEnum[T any](long, short string, members map[string]T, fn func(T), mods ...ModifyFn) *Option {
	opt := NewValue(long, short, fn)
	opt.Kind = EnumKind
	opt.Converter = convert.Enum(members)
	return opt.Apply(mods...)
}

// NewTuple - Returns an option that takes one value per component type.
// Each value is converted with the type in the same position.
//
//	NewTuple("point", "", []reflect.Type{convert.TypeOf[int](), convert.TypeOf[int]()}, fn)
//	--point 10 20
func NewTuple(long, short string, types []reflect.Type, fn func([]interface{}), mods ...ModifyFn) *Option {
	opt := New(long, short, TupleKind, capture.Fixed(len(types)), nil, func(v interface{}) error {
		if fn != nil {
			vs, _ := v.([]interface{})
			fn(vs)
		}
		return nil
	})
	opt.ComponentTypes = types
	return opt.Apply(mods...)
}

// Apply - Runs the modifiers on the option.
func (opt *Option) Apply(mods ...ModifyFn) *Option {
	for _, fn := range mods {
		fn(opt)
	}
	return opt
}

// Names - Returns the long name, short name and aliases in that order, skipping empty ones.
func (opt *Option) Names() []string {
	names := []string{}
	if opt.LongName != "" {
		names = append(names, opt.LongName)
	}
	if opt.ShortName != "" {
		names = append(names, opt.ShortName)
	}
	return append(names, opt.Aliases...)
}

// PreferredName - Returns the long name when defined, the short name otherwise.
func (opt *Option) PreferredName() string {
	if opt.LongName != "" {
		return opt.LongName
	}
	return opt.ShortName
}

func (opt *Option) String() string {
	return opt.PreferredName()
}

// Synopsis - Returns a usage string like `--name|-n <int>`.
func (opt *Option) Synopsis() string {
	names := []string{}
	for _, n := range opt.Names() {
		if len([]rune(n)) > 1 {
			names = append(names, "--"+n)
		} else {
			names = append(names, "-"+n)
		}
	}
	s := strings.Join(names, "|")
	switch {
	case opt.Kind == TupleKind:
		for _, t := range opt.ComponentTypes {
			s += fmt.Sprintf(" <%s>", t)
		}
	case opt.Capture.TakesValues() && opt.Type != nil:
		s += fmt.Sprintf(" <%s>", opt.Type)
		if opt.Capture.Max() != 1 {
			s += "..."
		}
	}
	return s
}

// SetAlias - Adds aliases to an option.
func (opt *Option) SetAlias(alias ...string) *Option {
	opt.Aliases = append(opt.Aliases, alias...)
	return opt
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.Description = s
	return opt
}

// SetRequired - Marks an option as required.
func (opt *Option) SetRequired() *Option {
	opt.IsRequired = true
	return opt
}

// SetDefault - Value applied when the option isn't passed.
func (opt *Option) SetDefault(v interface{}) *Option {
	opt.Default = v
	opt.HasDefault = true
	return opt
}

// SetCapture - Updates the capture policy.
func (opt *Option) SetCapture(p capture.Policy) *Option {
	opt.Capture = p
	return opt
}

// SetConverter - Uses fn instead of the registry converter for this option.
func (opt *Option) SetConverter(fn convert.Func) *Option {
	opt.Converter = fn
	return opt
}

// TypeAt - Returns the conversion type for the value at position i.
func (opt *Option) TypeAt(i int) reflect.Type {
	if opt.Kind == TupleKind {
		if i < len(opt.ComponentTypes) {
			return opt.ComponentTypes[i]
		}
		return nil
	}
	return opt.Type
}

// Validate - Verifies the kind, capture policy, types and default are consistent.
func (opt *Option) Validate() error {
	switch opt.Kind {
	case FlagKind, CounterKind:
		if opt.Capture.TakesValues() {
			return fmt.Errorf("%w%s options can't take values, capture policy is %s", ErrorDefinition, opt.Kind, opt.Capture)
		}
		if opt.HasDefault {
			return fmt.Errorf("%w%s options can't have a default", ErrorDefinition, opt.Kind)
		}
		return nil
	case ValueKind, EnumKind:
		if opt.Capture != capture.Fixed(1) {
			return fmt.Errorf("%w%s options take exactly one value, capture policy is %s", ErrorDefinition, opt.Kind, opt.Capture)
		}
	case MultiValueKind:
		if !opt.Capture.TakesValues() {
			return fmt.Errorf("%w%s options must take values, capture policy is %s", ErrorDefinition, opt.Kind, opt.Capture)
		}
	case TupleKind:
		if len(opt.ComponentTypes) == 0 {
			return fmt.Errorf("%wtuple options need at least one component type", ErrorDefinition)
		}
		for i, t := range opt.ComponentTypes {
			if t == nil {
				return fmt.Errorf("%wtuple component %d has no type", ErrorDefinition, i)
			}
		}
		if opt.Capture != capture.Fixed(len(opt.ComponentTypes)) {
			return fmt.Errorf("%wtuple options take one value per component, capture policy is %s", ErrorDefinition, opt.Capture)
		}
	}
	if opt.Kind != TupleKind && opt.Type == nil {
		return fmt.Errorf("%w%s options need a value type", ErrorDefinition, opt.Kind)
	}
	if opt.HasDefault {
		return opt.validateDefault()
	}
	return nil
}

func (opt *Option) validateDefault() error {
	switch opt.Kind {
	case MultiValueKind:
		if !assignable(opt.Default, reflect.SliceOf(opt.Type)) {
			return fmt.Errorf("%wdefault %T is not a []%s", ErrorDefinition, opt.Default, opt.Type)
		}
	case TupleKind:
		vs, ok := opt.Default.([]interface{})
		if !ok || len(vs) != len(opt.ComponentTypes) {
			return fmt.Errorf("%wdefault must be a []interface{} with %d elements", ErrorDefinition, len(opt.ComponentTypes))
		}
		for i, v := range vs {
			if !assignable(v, opt.ComponentTypes[i]) {
				return fmt.Errorf("%wdefault element %d is %T, want %s", ErrorDefinition, i, v, opt.ComponentTypes[i])
			}
		}
	default:
		if !assignable(opt.Default, opt.Type) {
			return fmt.Errorf("%wdefault %T is not a %s", ErrorDefinition, opt.Default, opt.Type)
		}
	}
	return nil
}

// Value - Builds the value passed to the handler from the converted arguments.
func (opt *Option) Value(values []interface{}) interface{} {
	switch opt.Kind {
	case FlagKind, CounterKind:
		return nil
	case MultiValueKind:
		s := reflect.MakeSlice(reflect.SliceOf(opt.Type), 0, len(values))
		for _, v := range values {
			if v == nil {
				s = reflect.Append(s, reflect.Zero(opt.Type))
				continue
			}
			s = reflect.Append(s, reflect.ValueOf(v))
		}
		return s.Interface()
	case TupleKind:
		return values
	default:
		if len(values) == 0 {
			return nil
		}
		return values[0]
	}
}

// Handle - Calls the handler with the value, marks the option as called and runs the OnHandled hooks.
// An empty usedAlias, as used when applying the default, keeps the previous UsedAlias.
func (opt *Option) Handle(value interface{}, usedAlias string) error {
	if opt.handler != nil {
		err := opt.handler(value)
		if err != nil {
			return err
		}
	}
	opt.Called = true
	if usedAlias != "" {
		opt.UsedAlias = usedAlias
	}
	for _, fn := range opt.hooks {
		fn(opt)
	}
	return nil
}

// ResetHandledState - Clears the handled state so the option can be parsed again.
func (opt *Option) ResetHandledState() *Option {
	opt.Called = false
	opt.UsedAlias = ""
	return opt
}

func assignable(v interface{}, t reflect.Type) bool {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t)
}

// cast - v is already known to be assignable to T.
func cast[T any](v interface{}) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	if v == nil {
		return zero
	}
	rv := reflect.ValueOf(v)
	tt := reflect.TypeOf(&zero).Elem()
	if rv.Type().ConvertibleTo(tt) {
		return rv.Convert(tt).Interface().(T)
	}
	return zero
}
