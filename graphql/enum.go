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

// EnumValue is a single value of an Enum type. The name appears in queries and results; the
// internal value is what resolvers produce and receive.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// Name of the enum value
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value
func (v *EnumValue) Description() string {
	return v.description
}

// Value returns the internal value.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.deprecation
}

// Enum represents an enum type built from an EnumDefinition.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type Enum struct {
	def *EnumDefinition

	// Values in declaration order
	values []*EnumValue

	// nameMap indexes values by name for coercion and lookups.
	nameMap map[string]*EnumValue
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Enum) graphqlNamedType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements TypeWithName.
func (t *Enum) Name() string {
	return t.def.Name
}

// Description implements TypeWithDescription.
func (t *Enum) Description() string {
	return t.def.Description
}

// String implements Type.
func (t *Enum) String() string {
	return t.Name()
}

// Values returns the values of the enum in declaration order.
func (t *Enum) Values() []*EnumValue {
	return t.values
}

// Value finds the enum value with the given name, or nil if the enum has none.
func (t *Enum) Value(name string) *EnumValue {
	return t.nameMap[name]
}

// CoerceResultValue implements LeafType: it maps an internal value produced by a resolver back to
// the name that represents it in a result.
func (t *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for _, enumValue := range t.values {
		if enumValue.value == value {
			return enumValue.name, nil
		}
	}
	return nil, NewCoercionError("Enum %q cannot represent value: %s", t.Name(), Inspect(value))
}

// CoerceInputValue maps a name appearing in an input (a query document or variables) to the
// internal value it stands for.
func (t *Enum) CoerceInputValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, NewCoercionError(
			"Enum %q cannot represent non-string value: %s", t.Name(), Inspect(value))
	}
	enumValue := t.nameMap[name]
	if enumValue == nil {
		return nil, NewCoercionError("Value %q does not exist in %q enum.", name, t.Name())
	}
	return enumValue.value, nil
}

// Enum implements LeafType.
var _ LeafType = (*Enum)(nil)

// enumBuilder builds an Enum through the converter's two-phase protocol. Enums reference no other
// types, so the populate phase never recurses; going through the same protocol anyway keeps the
// memoization story uniform across kinds.
type enumBuilder struct {
	def *EnumDefinition
}

// enumBuilder implements typeBuilder.
var _ typeBuilder = (*enumBuilder)(nil)

// typeName implements typeBuilder.
func (builder *enumBuilder) typeName() string {
	return builder.def.Name
}

// definition implements typeBuilder.
func (builder *enumBuilder) definition() Definition {
	return builder.def
}

// instantiate implements typeBuilder.
func (builder *enumBuilder) instantiate() (Type, error) {
	return &Enum{def: builder.def}, nil
}

// populate implements typeBuilder.
func (builder *enumBuilder) populate(t Type, conv *Converter) error {
	var (
		enum      = t.(*Enum)
		valueDefs = builder.def.Values
		values    = make([]*EnumValue, 0, len(valueDefs))
		nameMap   = make(map[string]*EnumValue, len(valueDefs))
	)

	for i := range valueDefs {
		valueDef := &valueDefs[i]
		if len(valueDef.Name) == 0 {
			return NewError(
				fmt.Sprintf("Enum %q contains a value definition without name.", builder.def.Name),
				ErrKindInternal)
		}

		value := &EnumValue{
			name:        valueDef.Name,
			description: valueDef.Description,
			value:       valueDef.Value,
		}
		// The name represents itself when no internal value is bound.
		if value.value == nil {
			value.value = valueDef.Name
		}
		if len(valueDef.DeprecationReason) > 0 {
			value.deprecation = &Deprecation{Reason: valueDef.DeprecationReason}
		}

		values = append(values, value)
		nameMap[value.name] = value
	}

	enum.values = values
	enum.nameMap = nameMap
	return nil
}

// FromEnum converts an enum definition into an Enum. Idempotent over the converter's TypeMap.
func (conv *Converter) FromEnum(def *EnumDefinition) (*Enum, error) {
	if def == nil {
		return nil, NewError("Must provide definition for Enum.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	if entry, ok := conv.typeMap.Lookup(def.Name); ok {
		enum, ok := entry.Implementation().(*Enum)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("Cannot build an Enum type named %q: the type map already binds the name to "+
					"a different kind of type.", def.Name),
				ErrKindWrongKindForBuilder)
		}
		return enum, nil
	}

	t, err := conv.build(&enumBuilder{def: def})
	if err != nil {
		return nil, err
	}
	return t.(*Enum), nil
}
