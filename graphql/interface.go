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

// Interface represents an interface type built from a TypeDefinition with TypeKindInterface.
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible, and what fields are in common across all types.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Interfaces
type Interface struct {
	def        *TypeDefinition
	fields     FieldMap
	interfaces []*Interface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Interface) graphqlNamedType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// Name implements TypeWithName.
func (t *Interface) Name() string {
	return t.def.Name
}

// Description implements TypeWithDescription.
func (t *Interface) Description() string {
	return t.def.Description
}

// String implements Type.
func (t *Interface) String() string {
	return t.Name()
}

// Fields returns the fields that any implementing type must provide.
func (t *Interface) Fields() FieldMap {
	return t.fields
}

// Interfaces returns the interfaces this interface itself implements.
func (t *Interface) Interfaces() []*Interface {
	return t.interfaces
}

// Interface implements AbstractType.
var _ AbstractType = (*Interface)(nil)

// interfaceBuilder builds an Interface through the converter's two-phase protocol.
type interfaceBuilder struct {
	def *TypeDefinition
}

// interfaceBuilder implements typeBuilder.
var _ typeBuilder = (*interfaceBuilder)(nil)

// typeName implements typeBuilder.
func (builder *interfaceBuilder) typeName() string {
	return builder.def.Name
}

// definition implements typeBuilder.
func (builder *interfaceBuilder) definition() Definition {
	return builder.def
}

// instantiate implements typeBuilder.
func (builder *interfaceBuilder) instantiate() (Type, error) {
	return &Interface{def: builder.def}, nil
}

// populate implements typeBuilder.
func (builder *interfaceBuilder) populate(t Type, conv *Converter) error {
	iface := t.(*Interface)

	// Interfaces may implement interfaces.
	if numInterfaces := len(builder.def.Interfaces); numInterfaces > 0 {
		interfaces := make([]*Interface, numInterfaces)
		for i, interfaceDef := range builder.def.Interfaces {
			implemented, err := conv.FromInterface(interfaceDef)
			if err != nil {
				return err
			}
			interfaces[i] = implemented
		}
		iface.interfaces = interfaces
	}

	fields, err := conv.buildFieldMap(builder.def.Fields)
	if err != nil {
		return err
	}
	iface.fields = fields

	return nil
}

// FromInterface converts an interface type definition into an Interface. Like FromObject, it is
// idempotent and cycle-safe over the converter's TypeMap.
func (conv *Converter) FromInterface(def *TypeDefinition) (*Interface, error) {
	if def == nil {
		return nil, NewError("Must provide definition for Interface.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}
	if def.Kind != TypeKindInterface {
		return nil, NewError(
			fmt.Sprintf("Cannot build an Interface type from definition %q which describes an %s type.",
				def.Name, def.Kind),
			ErrKindWrongKindForBuilder)
	}

	if entry, ok := conv.typeMap.Lookup(def.Name); ok {
		iface, ok := entry.Implementation().(*Interface)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("Cannot build an Interface type named %q: the type map already binds the "+
					"name to a different kind of type.", def.Name),
				ErrKindWrongKindForBuilder)
		}
		return iface, nil
	}

	t, err := conv.build(&interfaceBuilder{def: def})
	if err != nil {
		return nil, err
	}
	return t.(*Interface), nil
}
