// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "strconv"

// CompoundOption is an option followed by one or more payload tokens,
// consumed greedily until the next registered alias or the end of argv.
// The raw value is the []string of consumed tokens; consuming zero of
// them is a parse error.
type CompoundOption struct {
	optionCore
}

// Compound builds a compound option known under the given aliases. The
// first alias is the canonical name.
func Compound(names ...string) *CompoundOption {
	return &CompoundOption{newOptionCore(" value1 value2 ...", names)}
}

// Describe sets the usage description.
func (o *CompoundOption) Describe(text string) *CompoundOption {
	o.describe(text)
	return o
}

// Default sets the fallback returned when the option never appears and
// marks the option optional. The default lives in value space: it is
// returned as configured, never constraint-checked nor transformed.
func (o *CompoundOption) Default(v any) *CompoundOption {
	o.setDefault(v)
	return o
}

// Required sets whether the missing-option check applies.
func (o *CompoundOption) Required(r bool) *CompoundOption {
	o.setRequired(r)
	return o
}

// Constrain appends validation constraints, evaluated in order on every
// assignment.
func (o *CompoundOption) Constrain(cs ...Constraint) *CompoundOption {
	o.addConstraints(cs)
	return o
}

// Transform installs the value conversion; the last call wins. Use
// EachTo for per-token conversions or AllTo to fold the whole slice.
func (o *CompoundOption) Transform(t Transform) *CompoundOption {
	o.setTransform(t)
	return o
}

// TransformFirst makes assignments transform the payload before checking
// constraints, so constraints see the converted value instead of the raw
// token slice.
func (o *CompoundOption) TransformFirst() *CompoundOption {
	o.setTransformFirst()
	return o
}

// ToInt parses every payload token with strconv.Atoi, storing a []int.
func (o *CompoundOption) ToInt() *CompoundOption {
	return o.Transform(EachTo(strconv.Atoi))
}

// ToFloat64 parses every payload token as a 64-bit float, storing a
// []float64.
func (o *CompoundOption) ToFloat64() *CompoundOption {
	return o.Transform(EachTo(parseFloat64))
}

// ToFloat32 parses every payload token as a 32-bit float, storing a
// []float32.
func (o *CompoundOption) ToFloat32() *CompoundOption {
	return o.Transform(EachTo(parseFloat32))
}
