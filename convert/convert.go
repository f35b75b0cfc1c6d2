// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package convert - string to value conversion registry.

A Registry maps a target type to a conversion function.
New returns a registry with the built-in converters already registered:

	bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
	float32, float64, string, Char, time.Time, time.Duration, url.URL, *url.URL,
	*big.Int, *big.Rat, *big.Float, uuid.UUID, *semver.Version and ByteSize.

The last registration for a type wins, so any built-in can be overridden.

Types without a registered converter are converted through encoding.TextUnmarshaler
when they implement it, or by their underlying kind, for example `type Level int`.

A Registry is read-mostly configuration, it has no locking and must not be
modified while a parse is running.
*/
package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/DavidGamba/go-argparser/text"
)

// ErrorUnsupportedType - No converter is registered for the type and it can't be converted by kind.
var ErrorUnsupportedType = errors.New("unsupported type")

// ErrorNotEnumMember - The value doesn't match any of the declared enumeration members.
var ErrorNotEnumMember = errors.New("")

// ErrorTypeMismatch - A converter returned a value of a different type than the one it was registered for.
var ErrorTypeMismatch = errors.New("converter returned wrong type")

// Func - Signature for the function that converts a raw argument.
type Func func(value string) (interface{}, error)

// Registry - type to converter map.
type Registry struct {
	converters map[reflect.Type]Func
}

// New - Returns a Registry with the built-in converters.
func New() *Registry {
	r := &Registry{converters: map[reflect.Type]Func{}}
	registerBuiltins(r)
	return r
}

// TypeOf - Returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register - Registers fn as the converter for t.
func (r *Registry) Register(t reflect.Type, fn Func) {
	if t == nil || fn == nil {
		panic("convert: Register called with a nil type or function")
	}
	r.converters[t] = fn
}

// Register - Typed version of Registry.Register.
func Register[T any](r *Registry, fn func(string) (T, error)) {
	r.Register(TypeOf[T](), func(s string) (interface{}, error) {
		return fn(s)
	})
}

// RegisterEnum - Registers an enumeration type by its member names.
// Matching is exact and case sensitive.
func RegisterEnum[T any](r *Registry, members map[string]T) {
	r.Register(TypeOf[T](), Enum(members))
}

// Enum - Returns a converter that only accepts the given member names.
func Enum[T any](members map[string]T) Func {
	names := make([]string, 0, len(members))
	for k := range members {
		names = append(names, k)
	}
	sort.Strings(names)
	return func(s string) (interface{}, error) {
		if v, ok := members[s]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w"+text.ErrorNotEnumMember, ErrorNotEnumMember, s, names)
	}
}

// Has - Indicates if a converter was registered for t.
// It doesn't take the fallbacks into account.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.converters[t]
	return ok
}

// Resolve - Returns the converter for t.
// Lookup order: registered converter, encoding.TextUnmarshaler, underlying kind.
func (r *Registry) Resolve(t reflect.Type) (Func, bool) {
	if t == nil {
		return nil, false
	}
	if fn, ok := r.converters[t]; ok {
		return fn, true
	}
	if fn, ok := textUnmarshalerFunc(t); ok {
		return fn, true
	}
	if _, ok := kindParsers[t.Kind()]; ok {
		return kindFunc(t), true
	}
	return nil, false
}

// Convert - Converts value to the type t.
func (r *Registry) Convert(t reflect.Type, value string) (interface{}, error) {
	fn, ok := r.Resolve(t)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrorUnsupportedType, t)
	}
	return Apply(t, fn, value)
}

// Apply - Runs fn and verifies the result can be used as a t.
func Apply(t reflect.Type, fn Func, value string) (interface{}, error) {
	v, err := fn(value)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return v, nil
	}
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map:
			return nil, nil
		}
		return nil, fmt.Errorf("%w: got nil, want %s", ErrorTypeMismatch, t)
	}
	if !reflect.TypeOf(v).AssignableTo(t) {
		return nil, fmt.Errorf("%w: got %T, want %s", ErrorTypeMismatch, v, t)
	}
	return v, nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func textUnmarshalerFunc(t reflect.Type) (Func, bool) {
	switch {
	case t.Kind() == reflect.Ptr && t.Implements(textUnmarshalerType):
		return func(s string) (interface{}, error) {
			v := reflect.New(t.Elem())
			err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
			if err != nil {
				return nil, err
			}
			return v.Interface(), nil
		}, true
	case t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(textUnmarshalerType):
		return func(s string) (interface{}, error) {
			v := reflect.New(t)
			err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
			if err != nil {
				return nil, err
			}
			return v.Elem().Interface(), nil
		}, true
	}
	return nil, false
}

type kindParser func(s string, bits int) (reflect.Value, error)

var kindParsers = map[reflect.Kind]kindParser{
	reflect.Bool:    parseBool,
	reflect.Int:     parseInt,
	reflect.Int8:    parseInt,
	reflect.Int16:   parseInt,
	reflect.Int32:   parseInt,
	reflect.Int64:   parseInt,
	reflect.Uint:    parseUint,
	reflect.Uint8:   parseUint,
	reflect.Uint16:  parseUint,
	reflect.Uint32:  parseUint,
	reflect.Uint64:  parseUint,
	reflect.Float32: parseFloat,
	reflect.Float64: parseFloat,
	reflect.String:  parseString,
}

// kindFunc - converts by the underlying kind and then to the named type.
func kindFunc(t reflect.Type) Func {
	return func(s string) (interface{}, error) {
		parse := kindParsers[t.Kind()]
		bits := 0
		if t.Kind() != reflect.Bool && t.Kind() != reflect.String {
			bits = t.Bits()
		}
		v, err := parse(s, bits)
		if err != nil {
			return nil, err
		}
		return v.Convert(t).Interface(), nil
	}
}

func parseBool(s string, _ int) (reflect.Value, error) {
	b, err := strconv.ParseBool(s)
	return reflect.ValueOf(b), err
}

func parseInt(s string, bits int) (reflect.Value, error) {
	i, err := strconv.ParseInt(s, 10, bits)
	return reflect.ValueOf(i), err
}

func parseUint(s string, bits int) (reflect.Value, error) {
	u, err := strconv.ParseUint(s, 10, bits)
	return reflect.ValueOf(u), err
}

func parseFloat(s string, bits int) (reflect.Value, error) {
	f, err := strconv.ParseFloat(s, bits)
	return reflect.ValueOf(f), err
}

func parseString(s string, _ int) (reflect.Value, error) {
	return reflect.ValueOf(s), nil
}
