// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUsage_Format(t *testing.T) {
	p := NewParser().Program("./exec_name").
		AddHelpOption().
		AddOption(
			Single("-i", "--input").Describe("Input file path."),
			Flag("-v", "--verbose").Default(false),
			Compound("-s", "--sizes").Describe("Target sizes."),
		)

	want := "Usage: ./exec_name [-h] <-i value> [-v] <-s value1 value2 ...>\n" +
		"\n" +
		"-h -> Shows how to use the program.\n" +
		"-i -> Input file path.\n" +
		"-s -> Target sizes.\n" +
		"\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("Usage() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsage_Idempotent(t *testing.T) {
	p := NewParser().Program("prog").
		AddHelpOption().
		AddOption(Single("-i", "--input").Describe("Input file path."))

	first := p.Usage()
	if diff := cmp.Diff(first, p.Usage()); diff != "" {
		t.Fatalf("Usage() changed between calls (-first +second):\n%s", diff)
	}

	// Parsing assigns values but must not affect the text.
	if err := p.Parse([]string{"prog", "-i", "in.png"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(first, p.Usage()); diff != "" {
		t.Errorf("Usage() changed after Parse (-before +after):\n%s", diff)
	}
}

func TestManual_Format(t *testing.T) {
	p := NewParser().Program("imgscale").
		Describe("Scales images.").
		Author("AUTHORS").
		AddHelpOption().
		AddOption(Single("-i", "--input").Describe("Input file path."))

	want := "NAME:\n" +
		"\timgscale\n" +
		"\n" +
		"SYNOPSIS:\n" +
		"\timgscale [-h] <-i value>\n" +
		"\n" +
		"DESCRIPTION:\n" +
		"\tScales images.\n" +
		"\n" +
		"-h, --help:\n" +
		"\tShows how to use the program.\n" +
		"\n" +
		"-i, --input:\n" +
		"\tInput file path.\n" +
		"\n" +
		"AUTHOR:\n" +
		"\tWritten by AUTHORS\n"
	if diff := cmp.Diff(want, p.Manual()); diff != "" {
		t.Errorf("Manual() mismatch (-want +got):\n%s", diff)
	}
}

func TestManual_OmitsEmptySections(t *testing.T) {
	p := NewParser().Program("p").AddOption(Single("-s", "--single"))

	want := "NAME:\n" +
		"\tp\n" +
		"\n" +
		"SYNOPSIS:\n" +
		"\tp <-s value>\n"
	if diff := cmp.Diff(want, p.Manual()); diff != "" {
		t.Errorf("Manual() mismatch (-want +got):\n%s", diff)
	}
}
