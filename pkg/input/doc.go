// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input declares command-line interfaces as option values and
// parses argv vectors against them.
//
// An interface is built from three option kinds, each carrying aliases,
// an optional description, an optional default, validation constraints
// and a value conversion:
//   - flags (FlagOption): presence is the payload
//   - single-valued options (SingleOption): one token follows the alias
//   - compound options (CompoundOption): every token up to the next
//     registered alias follows it
//
// The library never prints, logs or exits. Parsing either succeeds or
// returns a typed error; values come back through GetValue.
//
// # Declaring options
//
// Options are configured by chaining and handed to a Parser:
//
//	parser := input.NewParser().
//	    Program("imgscale").
//	    AddHelpOption().
//	    AddOption(
//	        input.Single("-i", "--input").Describe("Input file path."),
//	        input.Flag("-v", "--verbose").Describe("Verbose output.").Default(true),
//	        input.Compound("-s", "--sizes").ToInt().Describe("Target sizes."),
//	    )
//
// Registering a colliding alias is a programming error and panics, the
// same way the standard library treats a redefined flag.
//
// # Parsing and reading values
//
// Parse takes the whole argv vector; index 0 is the program name and is
// skipped:
//
//	if err := parser.Parse(os.Args); err != nil {
//	    // handle; errors.Is(err, input.ErrHelp) means -h was set
//	}
//	sizes, err := input.GetValue[[]int](parser, "--sizes")
//
// GetValue is generic because the stored values are typed by their
// transformations: a SingleOption with ToInt holds an int, a
// CompoundOption with ToInt holds a []int, an untransformed option holds
// its raw payload.
//
// # Value pipeline
//
// Every assignment runs constraints first and then the transformation:
//
//	input.Single("-q", "--quality").
//	    Constrain(input.Check(func(s string) bool { return s != "" }, "quality is empty")).
//	    ToInt()
//
// TransformFirst flips the order so constraints see the converted value:
//
//	input.Single("-q", "--quality").
//	    ToInt().
//	    TransformFirst().
//	    Constrain(input.Check(func(q int) bool { return q >= 1 && q <= 100 }, "quality out of range"))
//
// Defaults take neither path: they are returned exactly as configured.
//
// # Flags toggle their default
//
// A flag with a default stores the negation of it when present, so
// Default(true) turns -v into an off switch:
//
//	input.Flag("-v", "--verbose").Default(true)
//
// # Errors
//
// Parse reports failures as typed errors — *UnknownArgumentError,
// *MissingArgumentError, *ConstraintError, *TransformError,
// *MissingOptionError — and help as *HelpRequestedError, which carries
// the usage text and matches ErrHelp under errors.Is. API misuse
// (duplicate aliases, retrieving under a wrong name or type) surfaces as
// *ConfigError.
package input
