// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparser

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/DavidGamba/go-argparser/text"
)

// ErrorNameConflict - A name is missing, invalid or already registered.
var ErrorNameConflict = errors.New("name conflict")

// ErrorInvalidDefinition - The option kind, capture policy, types or default don't fit together.
var ErrorInvalidDefinition = errors.New("invalid option definition")

// ErrorMissingValue - An option couldn't capture the values it requires.
var ErrorMissingValue = errors.New("missing value")

// ErrorUnexpectedValue - A value was assigned to an option that takes none.
var ErrorUnexpectedValue = errors.New("unexpected value")

// ErrorConversion - A value couldn't be converted to the option type.
var ErrorConversion = errors.New("conversion error")

// ErrorOptionAlreadyHandled - An option was passed more than once.
var ErrorOptionAlreadyHandled = errors.New("option already handled")

// ErrorRequiredOptionNotSpecified - A required option without a default wasn't passed.
var ErrorRequiredOptionNotSpecified = errors.New("required option not specified")

// ErrorUnrecognizedArgument - Parse found an argument no option claimed.
var ErrorUnrecognizedArgument = errors.New("unrecognized argument")

// NameConflictError - Registration error for an option name.
type NameConflictError struct {
	Option   string // Preferred name of the option being registered
	Name     string // Offending name, empty when the option has no names
	Existing string // Option already using Name, empty when Name is invalid
}

func (e *NameConflictError) Error() string {
	switch {
	case e.Name == "":
		return text.ErrorNameMissing
	case e.Existing != "":
		return fmt.Sprintf(text.ErrorNameConflict, e.Name, e.Option, e.Existing)
	default:
		return fmt.Sprintf(text.ErrorNameInvalid, e.Name, e.Option)
	}
}

func (e *NameConflictError) Unwrap() error { return ErrorNameConflict }

// DefinitionError - Registration error for an inconsistent option.
type DefinitionError struct {
	Option string
	Err    error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf(text.ErrorInvalidDefinition, e.Option, e.Err)
}

func (e *DefinitionError) Unwrap() []error { return []error{ErrorInvalidDefinition, e.Err} }

// MissingValueError - The option capture policy wasn't satisfied.
type MissingValueError struct {
	Option      string
	Requirement string // For example: "2 values", "at least 1 value"
	Got         int
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf(text.ErrorMissingValue, e.Option, e.Requirement, e.Got)
}

func (e *MissingValueError) Unwrap() error { return ErrorMissingValue }

// UnexpectedValueError - A value was assigned to an option that takes none.
type UnexpectedValueError struct {
	Option string
	Value  string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf(text.ErrorUnexpectedValue, e.Option, e.Value)
}

func (e *UnexpectedValueError) Unwrap() error { return ErrorUnexpectedValue }

// ConversionError - A captured value failed to convert.
// It unwraps to both ErrorConversion and the converter error.
type ConversionError struct {
	Option string
	Value  string
	Type   reflect.Type
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf(text.ErrorConversion, e.Value, e.Option, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() []error { return []error{ErrorConversion, e.Err} }

// OptionAlreadyHandledError - The option was matched a second time.
type OptionAlreadyHandledError struct {
	Option string
}

func (e *OptionAlreadyHandledError) Error() string {
	return fmt.Sprintf(text.ErrorOptionAlreadyHandled, e.Option)
}

func (e *OptionAlreadyHandledError) Unwrap() error { return ErrorOptionAlreadyHandled }

// RequiredOptionNotSpecifiedError - A required option wasn't passed and has no default.
type RequiredOptionNotSpecifiedError struct {
	Option string
}

func (e *RequiredOptionNotSpecifiedError) Error() string {
	return fmt.Sprintf(text.ErrorRequiredOptionNotSpecified, e.Option)
}

func (e *RequiredOptionNotSpecifiedError) Unwrap() error { return ErrorRequiredOptionNotSpecified }

// UnrecognizedArgumentError - Returned by Parse for the first argument no option claimed.
type UnrecognizedArgumentError struct {
	Argument   string
	IsOption   bool   // The argument looked like an option
	Suggestion string // Closest registered option, only for option like arguments
}

func (e *UnrecognizedArgumentError) Error() string {
	switch {
	case e.Suggestion != "":
		return fmt.Sprintf(text.ErrorUnrecognizedOptionSuggestion, e.Argument, e.Suggestion)
	case e.IsOption:
		return fmt.Sprintf(text.ErrorUnrecognizedOption, e.Argument)
	default:
		return fmt.Sprintf(text.ErrorUnexpectedArgument, e.Argument)
	}
}

func (e *UnrecognizedArgumentError) Unwrap() error { return ErrorUnrecognizedArgument }
