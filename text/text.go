// This file is part of go-argparser.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// They are variables so they can be overridden, for example, to translate them.
package text

// ErrorNameMissing holds the text for an option declared without long and short names.
var ErrorNameMissing = "option must define a long name or a short name"

// ErrorNameInvalid holds the text for a name that can't be used on the command line.
// It has string placeholders for the name and the option.
var ErrorNameInvalid = "name '%s' of option '%s' is not valid: names can't contain spaces or '=' and can't start with '-' or '/'"

// ErrorNameConflict holds the text for a name already registered by another option.
// It has string placeholders for the name, the option being registered and the existing option.
var ErrorNameConflict = "name '%s' of option '%s' is already used by option '%s'"

// ErrorInvalidDefinition holds the text for an option definition error.
// It has string placeholders for the option and the reason.
var ErrorInvalidDefinition = "option '%s' definition error: %s"

// ErrorMissingValue holds the text for an option that couldn't capture its values.
// It has placeholders for the option, the requirement and the number of values found.
var ErrorMissingValue = "missing value for option '%s': requires %s, got %d"

// ErrorUnexpectedValue holds the text for a value assigned to an option that doesn't take one.
// It has string placeholders for the option and the value.
var ErrorUnexpectedValue = "option '%s' doesn't take a value, got '%s'"

// ErrorConversion holds the text for a value that can't be converted.
// It has placeholders for the value, the option, the target type and the cause.
var ErrorConversion = "can't convert '%s' for option '%s' to %s: %s"

// ErrorOptionAlreadyHandled holds the text for an option passed more than once.
// It has a string placeholder for the option.
var ErrorOptionAlreadyHandled = "option '%s' has already been handled"

// ErrorRequiredOptionNotSpecified holds the text for a required option that wasn't passed.
// It has a string placeholder for the option.
var ErrorRequiredOptionNotSpecified = "missing required option '%s'"

// ErrorUnrecognizedOption holds the text for an unknown option.
// It has a string placeholder for the argument.
var ErrorUnrecognizedOption = "unrecognized option '%s'"

// ErrorUnrecognizedOptionSuggestion holds the text for an unknown option with a close match.
// It has string placeholders for the argument and the suggestion.
var ErrorUnrecognizedOptionSuggestion = "unrecognized option '%s', did you mean '%s'?"

// ErrorUnexpectedArgument holds the text for a plain argument nobody claimed.
// It has a string placeholder for the argument.
var ErrorUnexpectedArgument = "unexpected argument '%s'"

// ErrorNotEnumMember holds the text for a value that isn't one of the enumeration members.
// It has placeholders for the value and the valid members.
var ErrorNotEnumMember = "'%s' is not one of %q"
