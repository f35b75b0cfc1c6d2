// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package convert

import (
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Char - A single character value.
// rune is an alias of int32, so single characters get their own type.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

// ByteSize - A size in bytes that accepts human units, for example: 10MB, 1.5 GiB, 512.
type ByteSize uint64

func (b ByteSize) String() string {
	return humanize.Bytes(uint64(b))
}

// FloatPrecision - Mantissa precision in bits used for *big.Float values.
var FloatPrecision uint = 256

// TimeLayouts - Layouts tried in order when converting a time.Time.
var TimeLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2 January 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

func registerBuiltins(r *Registry) {
	for _, t := range []reflect.Type{
		TypeOf[bool](),
		TypeOf[int](), TypeOf[int8](), TypeOf[int16](), TypeOf[int32](), TypeOf[int64](),
		TypeOf[uint](), TypeOf[uint8](), TypeOf[uint16](), TypeOf[uint32](), TypeOf[uint64](),
		TypeOf[float32](), TypeOf[float64](),
		TypeOf[string](),
	} {
		r.Register(t, kindFunc(t))
	}

	Register(r, parseChar)
	Register(r, parseTime)
	Register(r, time.ParseDuration)
	Register(r, url.Parse)
	Register(r, func(s string) (url.URL, error) {
		u, err := url.Parse(s)
		if err != nil {
			return url.URL{}, err
		}
		return *u, nil
	})
	Register(r, parseBigInt)
	Register(r, parseBigRat)
	Register(r, func(s string) (*big.Float, error) {
		f, _, err := big.ParseFloat(s, 10, FloatPrecision, big.ToNearestEven)
		return f, err
	})
	Register(r, uuid.Parse)
	Register(r, semver.NewVersion)
	Register(r, func(s string) (ByteSize, error) {
		n, err := humanize.ParseBytes(s)
		return ByteSize(n), err
	})
}

func parseChar(s string) (Char, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %d", utf8.RuneCountInString(s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range TimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %s", strconv.Quote(s))
}

func parseBigInt(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %s", strconv.Quote(s))
	}
	return i, nil
}

func parseBigRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal %s", strconv.Quote(s))
	}
	return r, nil
}
