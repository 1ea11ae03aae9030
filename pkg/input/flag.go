// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

// FlagOption is a boolean option: its presence on the command line is the
// whole payload. Parsing a flag assigns true — or the negation of its
// default when one was configured, so a flag defaulting to true acts as
// an off switch.
type FlagOption struct {
	optionCore
}

// Flag builds a flag option known under the given aliases. The first
// alias is the canonical name.
func Flag(names ...string) *FlagOption {
	return &FlagOption{newOptionCore("", names)}
}

// Describe sets the usage description.
func (o *FlagOption) Describe(text string) *FlagOption {
	o.describe(text)
	return o
}

// Default sets the value used when the flag is absent and marks the
// option optional. A flag that does appear stores the negation of this
// default.
func (o *FlagOption) Default(v bool) *FlagOption {
	o.setDefault(v)
	return o
}

// Required sets whether the missing-option check applies.
func (o *FlagOption) Required(r bool) *FlagOption {
	o.setRequired(r)
	return o
}

// Constrain appends validation constraints, evaluated in order on every
// assignment.
func (o *FlagOption) Constrain(cs ...Constraint) *FlagOption {
	o.addConstraints(cs)
	return o
}

// Transform installs the value conversion; the last call wins. Use
// FlagTo to adapt a typed function.
func (o *FlagOption) Transform(t Transform) *FlagOption {
	o.setTransform(t)
	return o
}

// TransformFirst makes assignments transform the payload before checking
// constraints, so constraints see the converted value instead of the raw
// bool.
func (o *FlagOption) TransformFirst() *FlagOption {
	o.setTransformFirst()
	return o
}

// ToInt stores the flag as 1 when set and 0 when not.
func (o *FlagOption) ToInt() *FlagOption {
	return o.Transform(FlagTo(boolToInt))
}

// ToFloat64 stores the flag as 1.0 when set and 0.0 when not.
func (o *FlagOption) ToFloat64() *FlagOption {
	return o.Transform(FlagTo(boolToFloat64))
}

// ToFloat32 is ToFloat64 with a 32-bit result.
func (o *FlagOption) ToFloat32() *FlagOption {
	return o.Transform(FlagTo(boolToFloat32))
}
