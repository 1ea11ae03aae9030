// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sum adds up the integers passed to its compound -n option.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gianluisdiana/inputparser/pkg/input"
)

func main() {
	parser := input.NewParser().
		Program("sum").
		AddHelpOption().
		AddOption(input.Compound("-n", "--numbers").
			Describe("Integers to add.").
			ToInt())

	if err := parser.Parse(os.Args); err != nil {
		var helpErr *input.HelpRequestedError
		if errors.As(err, &helpErr) {
			fmt.Print(helpErr.Usage)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	numbers, err := input.GetValue[[]int](parser, "-n")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	total := 0
	for _, n := range numbers {
		total += n
	}
	fmt.Println(total)
}
