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

// InputObject represents an input object type built from a TypeDefinition with TypeKindInput.
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputObject struct {
	def    *TypeDefinition
	fields InputFieldMap
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*InputObject) graphqlNamedType() {}

// Name implements TypeWithName.
func (t *InputObject) Name() string {
	return t.def.Name
}

// Description implements TypeWithDescription.
func (t *InputObject) Description() string {
	return t.def.Description
}

// String implements Type.
func (t *InputObject) String() string {
	return t.Name()
}

// Fields returns the fields of the input object.
func (t *InputObject) Fields() InputFieldMap {
	return t.fields
}

// InputObject implements NamedType.
var _ NamedType = (*InputObject)(nil)

// InputField is a field of an InputObject. Unlike output fields it has no arguments or resolver,
// but it may carry a default value.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue DefaultValue
}

// Name of the input field
func (field *InputField) Name() string {
	return field.name
}

// Description of the input field
func (field *InputField) Description() string {
	return field.description
}

// Type of value that can be given to the field
func (field *InputField) Type() Type {
	return field.ttype
}

// Default returns the field's default in tri-state form.
func (field *InputField) Default() DefaultValue {
	return field.defaultValue
}

// HasDefaultValue returns true if the field has a default value (which may be an explicit null).
func (field *InputField) HasDefaultValue() bool {
	return field.defaultValue.IsProvided()
}

// DefaultValue returns the default value of the field, or nil when the default is an explicit
// null or was never provided. Use Default to distinguish the nil cases.
func (field *InputField) DefaultValue() interface{} {
	return field.defaultValue.Value()
}

// IsRequiredInputField returns true if a value must be supplied for the field when the enclosing
// input object is given.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Object-Required-Fields
func IsRequiredInputField(field *InputField) bool {
	return IsNonNullType(field.Type()) && !field.HasDefaultValue()
}

// InputFieldMap maps field name to the InputField.
type InputFieldMap map[string]*InputField

// inputObjectBuilder builds an InputObject through the converter's two-phase protocol.
type inputObjectBuilder struct {
	def *TypeDefinition
}

// inputObjectBuilder implements typeBuilder.
var _ typeBuilder = (*inputObjectBuilder)(nil)

// typeName implements typeBuilder.
func (builder *inputObjectBuilder) typeName() string {
	return builder.def.Name
}

// definition implements typeBuilder.
func (builder *inputObjectBuilder) definition() Definition {
	return builder.def
}

// instantiate implements typeBuilder.
func (builder *inputObjectBuilder) instantiate() (Type, error) {
	return &InputObject{def: builder.def}, nil
}

// populate implements typeBuilder.
func (builder *inputObjectBuilder) populate(t Type, conv *Converter) error {
	inputObject := t.(*InputObject)

	fields, err := conv.buildInputFieldMap(builder.def.Fields)
	if err != nil {
		return err
	}
	inputObject.fields = fields

	return nil
}

// FromInput converts an input object type definition into an InputObject.
//
// Input objects are memoized and populated in two phases exactly like objects and interfaces.
// Repeated conversion therefore yields one instance per name, and an input type whose field
// references itself (e.g., through an optional filter) builds fine.
func (conv *Converter) FromInput(def *TypeDefinition) (*InputObject, error) {
	if def == nil {
		return nil, NewError("Must provide definition for InputObject.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}
	if def.Kind != TypeKindInput {
		return nil, NewError(
			fmt.Sprintf("Cannot build an InputObject type from definition %q which describes an %s type.",
				def.Name, def.Kind),
			ErrKindWrongKindForBuilder)
	}

	if entry, ok := conv.typeMap.Lookup(def.Name); ok {
		inputObject, ok := entry.Implementation().(*InputObject)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("Cannot build an InputObject type named %q: the type map already binds the "+
					"name to a different kind of type.", def.Name),
				ErrKindWrongKindForBuilder)
		}
		return inputObject, nil
	}

	t, err := conv.build(&inputObjectBuilder{def: def})
	if err != nil {
		return nil, err
	}
	return t.(*InputObject), nil
}
