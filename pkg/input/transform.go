// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "strconv"

// Transform converts an option's raw command-line payload into its stored
// value. The raw payload is a bool for flags, a string for single-valued
// options and a []string for compound options. A Transform runs exactly
// once per assignment; returning an error aborts the assignment and
// surfaces as a *TransformError.
//
// Build Transforms with the typed adapters To, FlagTo, AllTo and EachTo
// rather than by hand, so conversions are written against their natural
// types. Attaching an adapter of the wrong shape to an option kind is a
// programming error and panics at parse time.
type Transform func(raw any) (any, error)

// To adapts a string conversion for single-valued options. strconv
// functions fit directly:
//
//	Single("-p", "--port").Transform(To(strconv.Atoi))
func To[T any](fn func(string) (T, error)) Transform {
	return func(raw any) (any, error) {
		return fn(raw.(string))
	}
}

// FlagTo adapts a bool conversion for flag options.
func FlagTo[T any](fn func(bool) (T, error)) Transform {
	return func(raw any) (any, error) {
		return fn(raw.(bool))
	}
}

// AllTo adapts a whole-slice conversion for compound options, folding
// every payload token into a single value.
func AllTo[T any](fn func([]string) (T, error)) Transform {
	return func(raw any) (any, error) {
		return fn(raw.([]string))
	}
}

// EachTo adapts a per-element conversion for compound options. The
// stored value becomes a []T with one entry per payload token; the first
// element the conversion rejects aborts the assignment.
func EachTo[T any](fn func(string) (T, error)) Transform {
	return func(raw any) (any, error) {
		tokens := raw.([]string)
		out := make([]T, 0, len(tokens))
		for _, tok := range tokens {
			v, err := fn(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// Conversions backing the ToInt/ToFloat64/ToFloat32 builder methods.

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func boolToInt(b bool) (int, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func boolToFloat64(b bool) (float64, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func boolToFloat32(b bool) (float32, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}
