// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Usage returns the synopsis line plus the per-option description list:
//
//	Usage: imgscale <-i value> [-v] [-h]
//
//	-i -> Input file path.
//	-h -> Shows how to use the program.
//
// Options appear in registration order, required ones wrapped in angle
// brackets and optional ones in square brackets; options without a
// description are left out of the list. Repeated calls return identical
// text.
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(p.programName())
	for _, canonical := range p.order {
		b.WriteString(" ")
		b.WriteString(optionGroup(p.options[canonical]))
	}
	b.WriteString("\n\n")
	for _, canonical := range p.order {
		opt := p.options[canonical]
		if opt.Description() == "" {
			continue
		}
		b.WriteString(canonical)
		b.WriteString(" -> ")
		b.WriteString(opt.Description())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Manual returns a man-page-style rendering of the program: NAME and
// SYNOPSIS, a DESCRIPTION section with the program text and one entry
// per described option listing every alias, and an AUTHOR credit.
// Sections without data are omitted.
func (p *Parser) Manual() string {
	program := p.programName()
	var b strings.Builder
	fmt.Fprintf(&b, "NAME:\n\t%s\n", program)
	b.WriteString("\nSYNOPSIS:\n\t")
	b.WriteString(program)
	for _, canonical := range p.order {
		b.WriteString(" ")
		b.WriteString(optionGroup(p.options[canonical]))
	}
	b.WriteString("\n")
	if p.description != "" || p.anyDescribed() {
		b.WriteString("\nDESCRIPTION:\n")
		if p.description != "" {
			fmt.Fprintf(&b, "\t%s\n", p.description)
		}
		for _, canonical := range p.order {
			opt := p.options[canonical]
			if opt.Description() == "" {
				continue
			}
			fmt.Fprintf(&b, "\n%s:\n\t%s\n", strings.Join(opt.Names(), ", "), opt.Description())
		}
	}
	if p.author != "" {
		fmt.Fprintf(&b, "\nAUTHOR:\n\tWritten by %s\n", p.author)
	}
	return b.String()
}

// optionGroup renders one option for a synopsis line: the canonical name
// and payload placeholder, wrapped in angle brackets when required and
// square brackets when optional.
func optionGroup(opt Option) string {
	lb, rb := "[", "]"
	if opt.IsRequired() {
		lb, rb = "<", ">"
	}
	return lb + opt.core().name() + opt.core().placeholder + rb
}

func (p *Parser) programName() string {
	if p.program != "" {
		return p.program
	}
	return filepath.Base(os.Args[0])
}

func (p *Parser) anyDescribed() bool {
	for _, canonical := range p.order {
		if p.options[canonical].Description() != "" {
			return true
		}
	}
	return false
}
