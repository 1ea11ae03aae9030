// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command imgscale demonstrates the input package: required and defaulted
// options, toggled flags, greedy compound options, typed transformations
// and constraints. It parses its command line and prints the resolved
// configuration as JSON or YAML.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/gianluisdiana/inputparser/pkg/input"
	"github.com/gianluisdiana/inputparser/pkg/tui"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var engineBaseline = semver.MustParse("2.0.0")

func buildParser() *input.Parser {
	return input.NewParser().
		Program("imgscale").
		Describe("Scales an image to a set of target widths.").
		Author("AUTHORS").
		AddHelpOption().
		AddOption(
			input.Single("-i", "--input").
				Describe("Source image path."),
			input.Compound("-s", "--sizes").
				Describe("Target widths in pixels.").
				ToInt().
				TransformFirst().
				Constrain(input.Check(allPositive, "sizes must be positive integers")),
			input.Single("-q", "--quality").
				Describe("Output quality between 1 and 100.").
				ToInt().
				TransformFirst().
				Constrain(input.Check(func(q int) bool { return q >= 1 && q <= 100 }, "quality must be between 1 and 100")).
				Default(90),
			input.Flag("-v", "--verbose").
				Describe("Verbose progress output; pass -v to silence.").
				Default(true),
			input.Single("--job-id").
				Describe("Job identifier; defaults to a fresh one.").
				Transform(input.To(uuid.Parse)).
				Default(uuid.New()),
			input.Single("--min-engine").
				Describe("Minimum scaling engine version.").
				Transform(input.To(semver.NewVersion)).
				TransformFirst().
				Constrain(input.Check(engineSupported, "engine versions below 2.0.0 are unsupported")).
				Default(engineBaseline),
			input.Single("-f", "--format").
				Describe("Output format: json or yaml.").
				Constrain(input.Check(validFormat, `format must be "json" or "yaml"`)).
				Default("json"),
		)
}

func allPositive(sizes []int) bool {
	for _, s := range sizes {
		if s <= 0 {
			return false
		}
	}
	return true
}

func engineSupported(v *semver.Version) bool {
	return !v.LessThan(engineBaseline)
}

func validFormat(f string) bool {
	return f == "json" || f == "yaml"
}

type result struct {
	Input     string `json:"input" yaml:"input"`
	Sizes     []int  `json:"sizes" yaml:"sizes"`
	Quality   int    `json:"quality" yaml:"quality"`
	Verbose   bool   `json:"verbose" yaml:"verbose"`
	JobID     string `json:"jobId" yaml:"jobId"`
	MinEngine string `json:"minEngine" yaml:"minEngine"`
}

func main() {
	parser := buildParser()
	if err := parser.Parse(os.Args); err != nil {
		var helpErr *input.HelpRequestedError
		if errors.As(err, &helpErr) {
			fmt.Print(helpErr.Usage)
			return
		}
		fmt.Fprintln(os.Stderr, color.RedString("imgscale: %v", err))
		os.Exit(1)
	}

	res := result{
		Input:     mustGet[string](parser, "--input"),
		Sizes:     mustGet[[]int](parser, "--sizes"),
		Quality:   mustGet[int](parser, "--quality"),
		Verbose:   mustGet[bool](parser, "--verbose"),
		JobID:     mustGet[uuid.UUID](parser, "--job-id").String(),
		MinEngine: mustGet[*semver.Version](parser, "--min-engine").String(),
	}

	if res.Verbose {
		c := tui.Detect(os.Stderr)
		fmt.Fprintln(os.Stderr, c.Wrap(tui.ColorBold, "imgscale configuration"))
	}

	var out []byte
	var err error
	switch mustGet[string](parser, "--format") {
	case "yaml":
		out, err = yaml.Marshal(res)
	default:
		out, err = json.MarshalIndent(res, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("imgscale: %v", err))
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// mustGet reads a value whose presence and type the option declarations
// above already guarantee.
func mustGet[T any](p *input.Parser, name string) T {
	v, err := input.GetValue[T](p, name)
	if err != nil {
		panic(err)
	}
	return v
}
