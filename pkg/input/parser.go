// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "fmt"

// helpName is the alias the post-scan help check looks for, mirroring the
// conventional short help flag.
const helpName = "-h"

// Parser owns a registry of options and scans argv vectors against it.
// Configure it with AddOption or AddHelpOption, run Parse once, then read
// values with GetValue. The zero Parser is not ready; use NewParser.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	options map[string]Option // canonical name → option
	aliases map[string]string // every alias → canonical name
	order   []string          // canonical names in registration order

	program     string
	description string
	author      string
}

// NewParser returns an empty parser.
func NewParser() *Parser {
	return &Parser{
		options: make(map[string]Option),
		aliases: make(map[string]string),
	}
}

// Program sets the executable name shown in usage text. When unset, the
// base name of os.Args[0] is used.
func (p *Parser) Program(name string) *Parser {
	p.program = name
	return p
}

// Describe sets the program description shown in the manual.
func (p *Parser) Describe(text string) *Parser {
	p.description = text
	return p
}

// Author sets the author credited in the manual.
func (p *Parser) Author(name string) *Parser {
	p.author = name
	return p
}

// AddOption registers fully-configured options. It panics with a
// *ConfigError when an option has no names, an alias is empty, or any
// alias is already taken — registering options is programmer territory,
// like redefining a flag in the standard library. Registration is atomic
// per option: a panicked registration leaves the parser untouched.
func (p *Parser) AddOption(opts ...Option) *Parser {
	for _, opt := range opts {
		p.register(opt)
	}
	return p
}

// AddHelpOption registers the conventional -h/--help flag. Parse reports
// a *HelpRequestedError when it ends up true.
func (p *Parser) AddHelpOption() *Parser {
	return p.AddOption(Flag(helpName, "--help").
		Describe("Shows how to use the program.").
		Default(false))
}

func (p *Parser) register(opt Option) {
	names := opt.Names()
	if len(names) == 0 {
		panic(&ConfigError{Msg: "option has no names"})
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			panic(&ConfigError{Msg: "option has an empty name"})
		}
		if seen[name] || p.isAlias(name) {
			panic(&ConfigError{Msg: "Option already exists!"})
		}
		seen[name] = true
	}
	canonical := names[0]
	for _, name := range names {
		p.aliases[name] = canonical
	}
	p.options[canonical] = opt
	p.order = append(p.order, canonical)
}

// Parse scans argv against the registered options. argv follows the
// process convention: index 0 is the program name and is skipped, so
// callers pass os.Args whole.
//
// The scan is a single pass. Every token must be a registered alias; the
// alias then consumes its payload according to its kind — nothing for
// flags, the next token for singles, every token up to the next alias
// for compounds — and the assignment runs the option's value pipeline.
// After the scan, a true help flag aborts with a *HelpRequestedError
// carrying the usage text; otherwise the first registered option that is
// required but got neither value nor default aborts with a
// *MissingOptionError. Parsing is fail-fast: assignments made before a
// failure remain visible.
func (p *Parser) Parse(argv []string) error {
	for i := 1; i < len(argv); {
		opt, ok := p.lookup(argv[i])
		if !ok {
			return &UnknownArgumentError{Token: argv[i]}
		}
		consumed, err := p.parseOption(opt, argv, i)
		if err != nil {
			return err
		}
		i += consumed
	}
	if err := p.checkHelp(); err != nil {
		return err
	}
	return p.checkMissing()
}

// parseOption assigns the option found at argv[i] and returns how many
// tokens it consumed, the alias itself included.
func (p *Parser) parseOption(opt Option, argv []string, i int) (int, error) {
	switch o := opt.(type) {
	case *FlagOption:
		set := true
		if o.HasDefault() {
			set = !o.defaultVal.(bool)
		}
		return 1, o.assign(set)
	case *SingleOption:
		if i+1 >= len(argv) || p.isAlias(argv[i+1]) {
			return 0, &MissingArgumentError{Option: argv[i]}
		}
		return 2, o.assign(argv[i+1])
	case *CompoundOption:
		var values []string
		for j := i + 1; j < len(argv) && !p.isAlias(argv[j]); j++ {
			values = append(values, argv[j])
		}
		if len(values) == 0 {
			return 0, &MissingArgumentError{Option: argv[i], AtLeastOne: true}
		}
		return 1 + len(values), o.assign(values)
	default:
		panic(fmt.Sprintf("input: unknown option kind %T", opt))
	}
}

// checkHelp implements the help short-circuit: an option registered
// under the -h alias whose boolean value-or-default is true aborts with
// the usage text. It runs before the missing-option check so help works
// on an otherwise incomplete command line.
func (p *Parser) checkHelp() error {
	opt, ok := p.lookup(helpName)
	if !ok {
		return nil
	}
	v, err := opt.core().valueOrDefault()
	if err != nil {
		return nil
	}
	if set, ok := v.(bool); ok && set {
		return &HelpRequestedError{Usage: p.Usage()}
	}
	return nil
}

func (p *Parser) checkMissing() error {
	for _, canonical := range p.order {
		opt := p.options[canonical]
		if opt.IsRequired() && !opt.HasValue() && !opt.HasDefault() {
			return &MissingOptionError{Name: canonical}
		}
	}
	return nil
}

func (p *Parser) lookup(name string) (Option, bool) {
	canonical, ok := p.aliases[name]
	if !ok {
		return nil, false
	}
	return p.options[canonical], true
}

func (p *Parser) isAlias(token string) bool {
	_, ok := p.aliases[token]
	return ok
}

// GetValue returns the value held by the named option — any alias
// resolves — falling back to its default when parsing never assigned
// one. It is a package-level function because Go methods cannot take
// type parameters.
//
// An unknown name, an option with neither value nor default, and a
// request under the wrong type all return a *ConfigError.
func GetValue[T any](p *Parser, name string) (T, error) {
	var zero T
	opt, ok := p.lookup(name)
	if !ok {
		return zero, &ConfigError{Msg: fmt.Sprintf("option %s is not registered", name)}
	}
	v, err := opt.core().valueOrDefault()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ConfigError{Msg: fmt.Sprintf("option %s holds %T, not %T", name, v, zero)}
	}
	return t, nil
}
