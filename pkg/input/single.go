// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "strconv"

// SingleOption is an option followed by exactly one payload token. The
// token right after the alias becomes the raw value; parsing fails when
// none remains or the next token is itself a registered alias.
type SingleOption struct {
	optionCore
}

// Single builds a single-valued option known under the given aliases.
// The first alias is the canonical name.
func Single(names ...string) *SingleOption {
	return &SingleOption{newOptionCore(" value", names)}
}

// Describe sets the usage description.
func (o *SingleOption) Describe(text string) *SingleOption {
	o.describe(text)
	return o
}

// Default sets the fallback returned when the option never appears and
// marks the option optional. The default lives in value space: it is
// returned as configured, never constraint-checked nor transformed.
func (o *SingleOption) Default(v any) *SingleOption {
	o.setDefault(v)
	return o
}

// Required sets whether the missing-option check applies.
func (o *SingleOption) Required(r bool) *SingleOption {
	o.setRequired(r)
	return o
}

// Constrain appends validation constraints, evaluated in order on every
// assignment.
func (o *SingleOption) Constrain(cs ...Constraint) *SingleOption {
	o.addConstraints(cs)
	return o
}

// Transform installs the value conversion; the last call wins. Use To to
// adapt a typed function.
func (o *SingleOption) Transform(t Transform) *SingleOption {
	o.setTransform(t)
	return o
}

// TransformFirst makes assignments transform the payload before checking
// constraints, so constraints see the converted value instead of the raw
// token.
func (o *SingleOption) TransformFirst() *SingleOption {
	o.setTransformFirst()
	return o
}

// ToInt parses the payload token with strconv.Atoi.
func (o *SingleOption) ToInt() *SingleOption {
	return o.Transform(To(strconv.Atoi))
}

// ToFloat64 parses the payload token as a 64-bit float.
func (o *SingleOption) ToFloat64() *SingleOption {
	return o.Transform(To(parseFloat64))
}

// ToFloat32 parses the payload token as a 32-bit float.
func (o *SingleOption) ToFloat32() *SingleOption {
	return o.Transform(To(parseFloat32))
}
