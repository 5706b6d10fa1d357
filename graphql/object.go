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
	"reflect"
)

// Object represents an object type built from a TypeDefinition with TypeKindObject.
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Object struct {
	def        *TypeDefinition
	fields     FieldMap
	interfaces []*Interface
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Object) graphqlNamedType() {}

// Name implements TypeWithName.
func (t *Object) Name() string {
	return t.def.Name
}

// Description implements TypeWithDescription.
func (t *Object) Description() string {
	return t.def.Description
}

// String implements Type.
func (t *Object) String() string {
	return t.Name()
}

// Fields returns the fields of the object.
func (t *Object) Fields() FieldMap {
	return t.fields
}

// Interfaces returns the interfaces implemented by the object.
func (t *Object) Interfaces() []*Interface {
	return t.interfaces
}

// Implements returns true if the object implements the given interface.
func (t *Object) Implements(iface *Interface) bool {
	for _, implemented := range t.interfaces {
		if implemented == iface {
			return true
		}
	}
	return false
}

// IsTypeOf answers whether value is an instance of this object type at runtime: true when the
// dynamic type of value is the definition's Origin or a pointer to it. Without an Origin no value
// matches.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveAbstractType()
func (t *Object) IsTypeOf(value interface{}) bool {
	origin := t.def.Origin
	if origin == nil {
		return false
	}

	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return false
	}
	if valueType == origin {
		return true
	}
	return valueType.Kind() == reflect.Ptr && valueType.Elem() == origin
}

// Object implements NamedType.
var _ NamedType = (*Object)(nil)

// objectBuilder builds an Object through the converter's two-phase protocol.
type objectBuilder struct {
	def *TypeDefinition
}

// objectBuilder implements typeBuilder.
var _ typeBuilder = (*objectBuilder)(nil)

// typeName implements typeBuilder.
func (builder *objectBuilder) typeName() string {
	return builder.def.Name
}

// definition implements typeBuilder.
func (builder *objectBuilder) definition() Definition {
	return builder.def
}

// instantiate implements typeBuilder. The skeleton carries the definition only; fields and
// interfaces arrive in populate, after the skeleton is registered.
func (builder *objectBuilder) instantiate() (Type, error) {
	return &Object{def: builder.def}, nil
}

// populate implements typeBuilder.
func (builder *objectBuilder) populate(t Type, conv *Converter) error {
	object := t.(*Object)

	// Resolve implemented interfaces first, each through the interface builder.
	if numInterfaces := len(builder.def.Interfaces); numInterfaces > 0 {
		interfaces := make([]*Interface, numInterfaces)
		for i, interfaceDef := range builder.def.Interfaces {
			iface, err := conv.FromInterface(interfaceDef)
			if err != nil {
				return err
			}
			interfaces[i] = iface
		}
		object.interfaces = interfaces
	}

	// Materialize the field map. Field types resolve through the converter and terminate on the
	// skeleton registered above when they cycle back to this type.
	fields, err := conv.buildFieldMap(builder.def.Fields)
	if err != nil {
		return err
	}
	object.fields = fields

	return nil
}

// FromObject converts an object type definition into an Object. Conversion is idempotent: the
// first call builds and memoizes the type and later calls (including recursive ones made while
// this type's fields are being populated) return the memoized instance.
func (conv *Converter) FromObject(def *TypeDefinition) (*Object, error) {
	if def == nil {
		return nil, NewError("Must provide definition for Object.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}
	if def.Kind != TypeKindObject {
		return nil, NewError(
			fmt.Sprintf("Cannot build an Object type from definition %q which describes an %s type.",
				def.Name, def.Kind),
			ErrKindWrongKindForBuilder)
	}

	if entry, ok := conv.typeMap.Lookup(def.Name); ok {
		object, ok := entry.Implementation().(*Object)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("Cannot build an Object type named %q: the type map already binds the name "+
					"to a different kind of type.", def.Name),
				ErrKindWrongKindForBuilder)
		}
		return object, nil
	}

	t, err := conv.build(&objectBuilder{def: def})
	if err != nil {
		return nil, err
	}
	return t.(*Object), nil
}
