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

import (
	"fmt"
)

// ScalarResultCoercer coerces a result value into a value represented in the Scalar type. Please
// read "Result Coercion" in [0] to provide appropriate implementation.
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces an input value (from a query document or variables) into a value
// represented in the Scalar type. Please read "Input Coercion" in [0] to provide appropriate
// implementation.
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceInputValue coerces the given input value.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions as
// ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarInputFunc implements ScalarInputCoercer.
var _ ScalarInputCoercer = (CoerceScalarInputFunc)(nil)

// A ScalarMarker identifies a scalar type in a TypeRef: either one of the builtin markers below,
// or a *ScalarDefinition describing a custom scalar. The marker set is open on the registry side —
// a custom ScalarRegistry may understand markers of its own — but closed for the default registry.
type ScalarMarker interface {
	scalarName() string
}

// BuiltinScalar marks one of the five scalar types every schema has available without defining
// anything.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type BuiltinScalar uint8

// Enumeration of BuiltinScalar
const (
	StringScalar BuiltinScalar = iota
	IntScalar
	FloatScalar
	BooleanScalar
	IDScalar
)

// scalarName implements ScalarMarker.
func (builtin BuiltinScalar) scalarName() string {
	switch builtin {
	case StringScalar:
		return "String"
	case IntScalar:
		return "Int"
	case FloatScalar:
		return "Float"
	case BooleanScalar:
		return "Boolean"
	case IDScalar:
		return "ID"
	}
	return "Unknown"
}

// Scalar represents a scalar type in a schema.
//
// The builtin scalars are package singletons (see String, Int, Float, Boolean and ID); custom
// scalars are built from ScalarDefinition's by the registry and memoized in the build's TypeMap.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Scalar) graphqlNamedType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// Name implements TypeWithName.
func (t *Scalar) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Scalar) Description() string {
	return t.description
}

// String implements Type.
func (t *Scalar) String() string {
	return t.Name()
}

// CoerceResultValue implements LeafType. Without a result coercer the value passes through
// unchanged; the definition opted out of result checking.
func (t *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	if t.resultCoercer == nil {
		return value, nil
	}
	return t.resultCoercer.CoerceResultValue(value)
}

// CoerceInputValue parses an input value into the scalar's value space. Without an input coercer
// the value passes through unchanged.
func (t *Scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	if t.inputCoercer == nil {
		return value, nil
	}
	return t.inputCoercer.CoerceInputValue(value)
}

// Scalar implements LeafType.
var _ LeafType = (*Scalar)(nil)

// ScalarRegistry resolves scalar markers into Scalar types on behalf of a Converter. The registry
// receives the TypeMap shared by the build so that the scalars it creates are memoized by name in
// the same universe as every other named type.
type ScalarRegistry interface {
	ResolveScalar(marker ScalarMarker, typeMap *TypeMap) (*Scalar, error)
}

// DefaultScalarRegistry maps builtin markers to the builtin singletons and builds custom scalars
// from *ScalarDefinition markers, caching them in the given TypeMap. The builtin singletons are
// never inserted into the map.
type DefaultScalarRegistry struct{}

// DefaultScalarRegistry implements ScalarRegistry.
var _ ScalarRegistry = DefaultScalarRegistry{}

// ResolveScalar implements ScalarRegistry.
func (DefaultScalarRegistry) ResolveScalar(marker ScalarMarker, typeMap *TypeMap) (*Scalar, error) {
	switch marker := marker.(type) {
	case BuiltinScalar:
		switch marker {
		case StringScalar:
			return String(), nil
		case IntScalar:
			return Int(), nil
		case FloatScalar:
			return Float(), nil
		case BooleanScalar:
			return Boolean(), nil
		case IDScalar:
			return ID(), nil
		}
		return nil, NewError(
			fmt.Sprintf("Unknown builtin scalar marker %d.", uint8(marker)),
			ErrKindUnrecognizedTypeKind)

	case *ScalarDefinition:
		if marker == nil {
			return nil, NewError("Must provide definition for Scalar.")
		}
		if len(marker.Name) == 0 {
			return nil, NewError("Must provide name for Scalar.")
		}

		if entry, ok := typeMap.Lookup(marker.Name); ok {
			scalar, ok := entry.Implementation().(*Scalar)
			if !ok {
				return nil, NewError(
					fmt.Sprintf("Cannot build a Scalar type named %q: the type map already binds the "+
						"name to a different kind of type.", marker.Name),
					ErrKindWrongKindForBuilder)
			}
			return scalar, nil
		}

		scalar := &Scalar{
			name:          marker.Name,
			description:   marker.Description,
			resultCoercer: marker.ResultCoercer,
			inputCoercer:  marker.InputCoercer,
		}
		if err := typeMap.Insert(marker.Name, marker, scalar); err != nil {
			return nil, err
		}
		return scalar, nil
	}

	return nil, NewError(
		fmt.Sprintf("Unsupported scalar marker %q (%T).", marker.scalarName(), marker),
		ErrKindUnrecognizedTypeKind)
}

// FromScalar resolves a scalar marker into a Scalar through the converter's registry. Builtin
// markers map to the builtin singletons; custom scalars are memoized by name in the converter's
// TypeMap.
func (conv *Converter) FromScalar(marker ScalarMarker) (*Scalar, error) {
	if marker == nil {
		return nil, NewError("Must provide a scalar marker.")
	}
	return conv.scalars.ResolveScalar(marker, conv.typeMap)
}
