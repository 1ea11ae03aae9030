// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "fmt"

// Option is the interface shared by the three option kinds: FlagOption,
// SingleOption and CompoundOption. The set is closed; build options with
// Flag, Single and Compound and configure them by chaining before handing
// them to Parser.AddOption.
type Option interface {
	// Names returns the option's aliases. The first one is canonical: it
	// identifies the option in usage text and in missing-option errors.
	Names() []string
	// Description returns the text shown in usage output.
	Description() string
	// IsRequired reports whether the missing-option check applies to the
	// option. Fresh options are required; setting a default clears it.
	IsRequired() bool
	// HasValue reports whether a value was assigned during parsing.
	HasValue() bool
	// HasDefault reports whether a default value was configured.
	HasDefault() bool

	// core seals the interface and gives the parser access to the shared
	// option state.
	core() *optionCore
}

// optionCore holds the state and value pipeline common to every option
// kind. The concrete kinds embed it and wrap its mutators so chained
// calls keep their concrete type.
type optionCore struct {
	names          []string
	description    string
	required       bool
	transformFirst bool

	value      any
	hasValue   bool
	defaultVal any
	hasDefault bool

	transform   Transform
	constraints []Constraint

	// placeholder trails the canonical name in usage text: empty for
	// flags, " value" for singles, " value1 value2 ..." for compounds.
	placeholder string
}

func newOptionCore(placeholder string, names []string) optionCore {
	return optionCore{
		names:       names,
		required:    true,
		placeholder: placeholder,
	}
}

func (o *optionCore) Names() []string     { return o.names }
func (o *optionCore) Description() string { return o.description }
func (o *optionCore) IsRequired() bool    { return o.required }
func (o *optionCore) HasValue() bool      { return o.hasValue }
func (o *optionCore) HasDefault() bool    { return o.hasDefault }

func (o *optionCore) core() *optionCore { return o }

// name returns the canonical alias. Only valid on registered options;
// AddOption rejects empty name lists.
func (o *optionCore) name() string { return o.names[0] }

func (o *optionCore) describe(text string) { o.description = text }

// setDefault stores the fallback value and marks the option optional.
// Setting a default is the only operation that clears requiredness
// implicitly; Required(true) afterwards re-arms the flag, but the
// missing-option check still never fires for an option with a default.
func (o *optionCore) setDefault(v any) {
	o.defaultVal = v
	o.hasDefault = true
	o.required = false
}

func (o *optionCore) setRequired(r bool) { o.required = r }

func (o *optionCore) addConstraints(cs []Constraint) {
	o.constraints = append(o.constraints, cs...)
}

func (o *optionCore) setTransform(t Transform) { o.transform = t }

func (o *optionCore) setTransformFirst() { o.transformFirst = true }

// assign runs the value pipeline on a raw payload: constraints against
// the raw value and then the transformation, or the other way around
// after TransformFirst. Nothing is stored unless every step passes, so a
// failed assignment leaves the option exactly as it was.
func (o *optionCore) assign(raw any) error {
	if o.transformFirst && o.transform != nil {
		v, err := o.applyTransform(raw)
		if err != nil {
			return err
		}
		if err := o.checkConstraints(v); err != nil {
			return err
		}
		o.storeValue(v)
		return nil
	}
	if err := o.checkConstraints(raw); err != nil {
		return err
	}
	v := raw
	if o.transform != nil {
		var err error
		v, err = o.applyTransform(raw)
		if err != nil {
			return err
		}
	}
	o.storeValue(v)
	return nil
}

func (o *optionCore) applyTransform(raw any) (any, error) {
	v, err := o.transform(raw)
	if err != nil {
		return nil, &TransformError{Option: o.name(), Err: err}
	}
	return v, nil
}

// checkConstraints evaluates constraints in registration order; the first
// rejection wins.
func (o *optionCore) checkConstraints(v any) error {
	for _, c := range o.constraints {
		if err := c.validate(v); err != nil {
			return err
		}
	}
	return nil
}

func (o *optionCore) storeValue(v any) {
	o.value = v
	o.hasValue = true
}

// valueOrDefault returns the assigned value, falling back to the default.
// Defaults never pass through the pipeline: they are returned exactly as
// configured, unchecked and untransformed.
func (o *optionCore) valueOrDefault() (any, error) {
	if o.hasValue {
		return o.value, nil
	}
	if o.hasDefault {
		return o.defaultVal, nil
	}
	return nil, &ConfigError{Msg: fmt.Sprintf("option %s has no value and no default", o.name())}
}
