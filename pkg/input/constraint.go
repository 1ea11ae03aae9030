// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

// Constraint is a validation rule attached to an option: a predicate over
// a candidate value plus the message reported when the predicate rejects
// it. Constraints run against the raw command-line payload by default, or
// against the transformed value when the option was configured with
// TransformFirst.
type Constraint struct {
	check   func(any) bool
	message string
}

// Check builds a Constraint from a typed predicate. An empty message
// makes rejections report "Constraint not satisfied."
//
// The type parameter must match the value the constraint sees at parse
// time: the raw payload type (bool, string or []string depending on the
// option kind), or the transformed type under TransformFirst. A mismatch
// is a programming error and panics during Parse. A panic raised by the
// predicate itself propagates unchanged.
func Check[T any](pred func(T) bool, message string) Constraint {
	return Constraint{
		check:   func(v any) bool { return pred(v.(T)) },
		message: message,
	}
}

func (c Constraint) validate(v any) error {
	if c.check(v) {
		return nil
	}
	return &ConstraintError{Message: c.message}
}
