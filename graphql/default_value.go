/**
 * Copyright (c) 2020, The Calyx Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import "fmt"

type defaultValueState uint8

const (
	defaultValueNotProvided defaultValueState = iota
	defaultValueNull
	defaultValueValue
)

// DefaultValue carries the default of an argument or input field as one of three distinguishable
// states: not provided, explicit null, or an explicit value. "No default" and "defaults to null"
// mean different things to a schema consumer (the former makes an argument required when its type
// is non-null), so the two must never collapse into each other on the way through conversion.
//
// The zero value of DefaultValue is the "not provided" state; a definition that says nothing about
// defaults therefore has none.
type DefaultValue struct {
	state defaultValueState
	value interface{}
}

// NoDefaultValue returns the "not provided" state explicitly. It is identical to a zero-valued
// DefaultValue.
func NoDefaultValue() DefaultValue {
	return DefaultValue{}
}

// NullDefaultValue returns the state that defaults to an explicit null.
func NullDefaultValue() DefaultValue {
	return DefaultValue{state: defaultValueNull}
}

// DefaultValueOf returns a default of the given value. A nil value collapses to
// NullDefaultValue(); presence is what the tri-state tracks, and a caller holding a nil interface
// has said "null".
func DefaultValueOf(value interface{}) DefaultValue {
	if value == nil {
		return NullDefaultValue()
	}
	return DefaultValue{
		state: defaultValueValue,
		value: value,
	}
}

// IsProvided returns true unless the state is "not provided". Note that an explicit null counts as
// provided.
func (d DefaultValue) IsProvided() bool {
	return d.state != defaultValueNotProvided
}

// IsNull returns true if the default is an explicit null.
func (d DefaultValue) IsNull() bool {
	return d.state == defaultValueNull
}

// Value returns the default value, or nil when the state is "not provided" or explicit null. Use
// IsProvided and IsNull to tell the nil cases apart.
func (d DefaultValue) Value() interface{} {
	return d.value
}

// String makes the three states readable in test output and error messages.
func (d DefaultValue) String() string {
	switch d.state {
	case defaultValueNull:
		return "null"
	case defaultValueValue:
		return fmt.Sprintf("%v", d.value)
	}
	return "<not provided>"
}
