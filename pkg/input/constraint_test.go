// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		c       Constraint
		v       any
		wantErr string // empty means accepted
	}{
		{
			name: "accepting predicate",
			c:    Check(func(n int) bool { return n > 0 }, "must be positive"),
			v:    3,
		},
		{
			name:    "rejecting predicate reports its message",
			c:       Check(func(n int) bool { return n > 0 }, "must be positive"),
			v:       -3,
			wantErr: "must be positive",
		},
		{
			name:    "empty message falls back",
			c:       Check(func(string) bool { return false }, ""),
			v:       "x",
			wantErr: "Constraint not satisfied.",
		},
		{
			name: "slice predicate",
			c:    Check(func(vs []string) bool { return len(vs) > 1 }, "need at least two"),
			v:    []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.validate(tt.v)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate(%v) error = %v, want nil", tt.v, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validate(%v) error = nil, want %q", tt.v, tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("validate(%v) error = %q, want %q", tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestCheck_PredicatePanicPropagates(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("a panicking predicate was swallowed, want propagation")
		}
	}()

	c := Check(func(string) bool { panic("boom") }, "")
	_ = c.validate("x")
}

func TestCheck_ValueReachesPredicateUnchanged(t *testing.T) {
	var got string
	c := Check(func(s string) bool { got = s; return true }, "")
	if err := c.validate("payload"); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if got != "payload" {
		t.Errorf("predicate saw %q, want %q", got, "payload")
	}
}
