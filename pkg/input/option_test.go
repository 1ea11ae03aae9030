// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestOption_FreshState(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"flag", Flag("-f", "--flag")},
		{"single", Single("-s", "--single")},
		{"compound", Compound("-c", "--compound")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.opt.IsRequired() {
				t.Error("IsRequired() = false, want true for a fresh option")
			}
			if tt.opt.HasValue() {
				t.Error("HasValue() = true, want false for a fresh option")
			}
			if tt.opt.HasDefault() {
				t.Error("HasDefault() = true, want false for a fresh option")
			}
			if tt.opt.Description() != "" {
				t.Errorf("Description() = %q, want empty", tt.opt.Description())
			}
		})
	}
}

func TestOption_DefaultClearsRequired(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"flag", Flag("-f").Default(true)},
		{"single", Single("-s").Default("x")},
		{"compound", Compound("-c").Default([]string{"x"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opt.IsRequired() {
				t.Error("IsRequired() = true, want false after Default")
			}
			if !tt.opt.HasDefault() {
				t.Error("HasDefault() = false, want true after Default")
			}
			if tt.opt.HasValue() {
				t.Error("HasValue() = true, want false: a default is not a value")
			}
		})
	}
}

func TestOption_Names(t *testing.T) {
	opt := Single("-s", "--single", "--long-single")
	want := []string{"-s", "--single", "--long-single"}
	got := opt.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOption_PipelineOrder(t *testing.T) {
	t.Run("check then transform by default", func(t *testing.T) {
		// The constraint sees the raw token, so it must be written
		// against string even though the stored value is an int.
		p := NewParser().AddOption(
			Single("-n", "--number").
				Constrain(Check(func(s string) bool { return !strings.HasPrefix(s, "0") }, "no leading zeros")).
				ToInt(),
		)
		err := p.Parse([]string{"prog", "-n", "07"})
		if err == nil || err.Error() != "no leading zeros" {
			t.Fatalf("Parse(07) error = %v, want %q", err, "no leading zeros")
		}

		p = NewParser().AddOption(
			Single("-n", "--number").
				Constrain(Check(func(s string) bool { return !strings.HasPrefix(s, "0") }, "no leading zeros")).
				ToInt(),
		)
		if err := p.Parse([]string{"prog", "-n", "42"}); err != nil {
			t.Fatalf("Parse(42) error = %v", err)
		}
		got, err := GetValue[int](p, "-n")
		if err != nil {
			t.Fatalf("GetValue() error = %v", err)
		}
		if got != 42 {
			t.Errorf("GetValue(-n) = %d, want 42", got)
		}
	})

	t.Run("transform then check with TransformFirst", func(t *testing.T) {
		even := Check(func(n int) bool { return n%2 == 0 }, "must be even")
		p := NewParser().AddOption(
			Single("-n", "--number").ToInt().TransformFirst().Constrain(even),
		)
		err := p.Parse([]string{"prog", "-n", "7"})
		if err == nil || err.Error() != "must be even" {
			t.Fatalf("Parse(7) error = %v, want %q", err, "must be even")
		}

		p = NewParser().AddOption(
			Single("-n", "--number").ToInt().TransformFirst().Constrain(even),
		)
		if err := p.Parse([]string{"prog", "-n", "8"}); err != nil {
			t.Fatalf("Parse(8) error = %v", err)
		}
		got, err := GetValue[int](p, "-n")
		if err != nil {
			t.Fatalf("GetValue() error = %v", err)
		}
		if got != 8 {
			t.Errorf("GetValue(-n) = %d, want 8", got)
		}
	})
}

func TestOption_FailedAssignmentLeavesNoValue(t *testing.T) {
	opt := Single("-n", "--number").
		Constrain(Check(func(s string) bool { return false }, "always rejected"))
	p := NewParser().AddOption(opt)
	if err := p.Parse([]string{"prog", "-n", "1"}); err == nil {
		t.Fatal("Parse() error = nil, want constraint rejection")
	}
	if opt.HasValue() {
		t.Error("HasValue() = true after rejected assignment, want false")
	}
	if _, err := GetValue[string](p, "-n"); err == nil {
		t.Error("GetValue() error = nil, want config error: nothing was stored")
	}
}

func TestOption_ConstraintMessages(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantMsg string
	}{
		{
			name:    "custom message",
			message: "number out of range",
			wantMsg: "number out of range",
		},
		{
			name:    "empty message falls back",
			message: "",
			wantMsg: "Constraint not satisfied.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser().AddOption(
				Single("-n").Constrain(Check(func(string) bool { return false }, tt.message)),
			)
			err := p.Parse([]string{"prog", "-n", "1"})
			if err == nil {
				t.Fatal("Parse() error = nil, want constraint rejection")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Parse() error = %q, want %q", err, tt.wantMsg)
			}
			var cErr *ConstraintError
			if !errors.As(err, &cErr) {
				t.Errorf("Parse() error type = %T, want *ConstraintError", err)
			}
		})
	}
}

func TestOption_FirstFailingConstraintWins(t *testing.T) {
	p := NewParser().AddOption(
		Single("-n").Constrain(
			Check(func(string) bool { return false }, "first"),
			Check(func(string) bool { return false }, "second"),
		),
	)
	err := p.Parse([]string{"prog", "-n", "1"})
	if err == nil || err.Error() != "first" {
		t.Errorf("Parse() error = %v, want %q", err, "first")
	}
}

func TestOption_TransformErrorWrapsCause(t *testing.T) {
	p := NewParser().AddOption(Single("-n", "--number").ToInt())
	err := p.Parse([]string{"prog", "-n", "abc"})
	if err == nil {
		t.Fatal("Parse(abc) error = nil, want transform error")
	}
	var tfErr *TransformError
	if !errors.As(err, &tfErr) {
		t.Fatalf("Parse() error type = %T, want *TransformError", err)
	}
	if tfErr.Option != "-n" {
		t.Errorf("TransformError.Option = %q, want %q", tfErr.Option, "-n")
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Error("TransformError does not unwrap to the strconv cause")
	}
}

func TestOption_MistypedConstraintPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Parse did not panic for a constraint typed against the wrong value")
		}
	}()

	// The option stores its raw string; an int-typed constraint without
	// TransformFirst is a programming error.
	p := NewParser().AddOption(
		Single("-n").ToInt().Constrain(Check(func(n int) bool { return n > 0 }, "")),
	)
	_ = p.Parse([]string{"prog", "-n", "1"})
}

func TestOption_FlagPipelineRunsOnToggle(t *testing.T) {
	// The toggled value, not the default, goes through the pipeline.
	var seen []bool
	p := NewParser().AddOption(
		Flag("-v").Default(true).
			Constrain(Check(func(b bool) bool { seen = append(seen, b); return true }, "")),
	)
	if err := p.Parse([]string{"prog", "-v"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(seen) != 1 || seen[0] != false {
		t.Errorf("constraint saw %v, want [false]", seen)
	}
}
