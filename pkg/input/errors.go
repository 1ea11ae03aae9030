// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"errors"
	"fmt"
)

// ErrHelp is reported by Parse when the help flag was set on the command
// line. Callers should match it with errors.Is and print the usage text
// carried by the *HelpRequestedError in the chain.
var ErrHelp = errors.New("help requested")

// ConfigError reports a misuse of the library API rather than a problem
// with the command line being parsed: registering colliding aliases,
// registering an option without names, or retrieving a value under an
// unknown name or the wrong type.
//
// Registration-time misuse panics with a *ConfigError; retrieval-time
// misuse returns one.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// UnknownArgumentError is returned when the scan hits a token that is not
// a registered alias. The user-facing message is fixed; Token carries the
// offending argv entry for callers that want to report it themselves.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return "Invalid arguments provided!"
}

// MissingArgumentError is returned when a single-valued option has no
// payload token, or a compound option consumed zero payload tokens.
// Option holds the alias as it appeared on the command line, not the
// canonical name.
type MissingArgumentError struct {
	Option     string
	AtLeastOne bool // compound options need one or more payload tokens
}

func (e *MissingArgumentError) Error() string {
	if e.AtLeastOne {
		return fmt.Sprintf("After the %s option should be at least an extra argument!", e.Option)
	}
	return fmt.Sprintf("After the %s option should be an extra argument!", e.Option)
}

// MissingOptionError is returned when a required option was never
// assigned during the scan and has no default value to fall back on.
type MissingOptionError struct {
	Name string // the option's canonical name
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("Missing option %s", e.Name)
}

// ConstraintError is returned when a constraint rejects an option's
// candidate value. Message is the text the constraint was registered
// with; when empty, Error falls back to a generic one.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	if e.Message == "" {
		return "Constraint not satisfied."
	}
	return e.Message
}

// TransformError is returned when an option's transformation rejects the
// raw command-line payload. It preserves the underlying conversion error
// for errors.Is/As chains.
type TransformError struct {
	Option string // the option's canonical name
	Err    error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("invalid value for option %s: %v", e.Option, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// HelpRequestedError aborts parsing when the help flag was set. Usage
// carries the generated usage text so callers can display it. It matches
// ErrHelp under errors.Is.
type HelpRequestedError struct {
	Usage string
}

func (e *HelpRequestedError) Error() string {
	return "help requested"
}

func (e *HelpRequestedError) Unwrap() error {
	return ErrHelp
}
