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
	"context"
	"reflect"
)

// Definitions are the passive data a Converter consumes: they describe types by name, kind and
// structure, and reference each other through TypeRef values. Nothing in this file builds
// anything; a definition graph stays inert until handed to a Converter.

// TypeKind tags a TypeDefinition with the kind of type it describes. The builders verify the tag
// before building so a definition handed to the wrong builder fails with
// ErrKindWrongKindForBuilder instead of producing a type of the wrong kind.
type TypeKind uint8

// Enumeration of TypeKind
const (
	// TypeKindObject is the zero value; a TypeDefinition describes an object type unless marked
	// otherwise.
	TypeKindObject TypeKind = iota
	TypeKindInput
	TypeKindInterface
)

func (kind TypeKind) String() string {
	switch kind {
	case TypeKindObject:
		return "Object"
	case TypeKindInput:
		return "Input"
	case TypeKindInterface:
		return "Interface"
	}
	return "Unknown"
}

// TypeDefinition describes an object, input object or interface type.
type TypeDefinition struct {
	// Name of the defining type; required.
	Name string

	// Description provides documentation for the type.
	Description string

	// Kind selects the builder this definition may be handed to.
	Kind TypeKind

	// Origin optionally binds the definition to the Go type whose values represent instances of
	// this type at runtime. Object types use it to answer IsTypeOf and unions use it for default
	// member classification. A value matches when its dynamic type is Origin or a pointer to
	// Origin.
	Origin reflect.Type

	// Fields of the type, in declaration order. For input object definitions each entry describes
	// an input field (Arguments, Resolver and IsSubscription are meaningless there; Default is
	// meaningful only there).
	Fields []FieldDefinition

	// Interfaces implemented by this type. Valid for object and interface definitions; interfaces
	// may themselves implement interfaces.
	Interfaces []*TypeDefinition
}

// FieldDefinition describes a field of an object, interface or input object type.
type FieldDefinition struct {
	// Name of the field; required.
	Name string

	// Description provides documentation for the field.
	Description string

	// Type of the value this field yields (or accepts, for input fields).
	Type TypeRef

	// Arguments accepted by the field, in declaration order.
	Arguments []ArgumentDefinition

	// Default carries the tri-state default value. It is consulted for input object fields only.
	Default DefaultValue

	// DeprecationReason marks the field deprecated when non-empty.
	DeprecationReason string

	// IsSubscription marks the field as a subscription root field. Conversion then installs
	// Resolver as the field's subscriber and gives the field an identity resolver, so executors
	// pass each streamed event through unchanged.
	IsSubscription bool

	// Resolver computes the field value at execution time. The engine stores the handle without
	// inspecting it; nil is allowed and leaves the choice to the executor's default.
	Resolver FieldResolver
}

// ArgumentDefinition describes an argument accepted by a field or a directive.
type ArgumentDefinition struct {
	// Name of the argument; required.
	Name string

	// Description provides documentation for the argument.
	Description string

	// Type of the value the argument accepts.
	Type TypeRef

	// Default carries the tri-state default value: not provided, explicit null, or an explicit
	// value. The three states survive conversion unchanged.
	Default DefaultValue
}

// EnumValueDefinition describes a single value of an enum type.
type EnumValueDefinition struct {
	// Name of the enum value; required.
	Name string

	// Description provides documentation for the value.
	Description string

	// Value is the internal value the name stands for in resolver results. When nil, the name
	// itself is used.
	Value interface{}

	// DeprecationReason marks the value deprecated when non-empty.
	DeprecationReason string
}

// EnumDefinition describes an enum type as an ordered list of named values.
type EnumDefinition struct {
	// Name of the defining enum; required.
	Name string

	// Description provides documentation for the enum.
	Description string

	// Values in declaration order.
	Values []EnumValueDefinition
}

// UnionDefinition describes a union type.
type UnionDefinition struct {
	// Name of the defining union; required.
	Name string

	// Description provides documentation for the union.
	Description string

	// Members are the possible types of the union. Each must resolve to an Object type.
	Members []TypeRef

	// ResolverFactory, when given, builds the runtime type resolver for the union. The factory
	// receives the TypeMap the converter memoizes named types in, so the resolver can look
	// implementations up by name. When nil, the union classifies runtime values against the
	// members' Origin types.
	ResolverFactory TypeResolverFactory
}

// ScalarDefinition describes a custom scalar type. It doubles as the ScalarMarker that refers to
// the scalar from a TypeRef, so the same value both names and defines the type.
type ScalarDefinition struct {
	// Name of the defining scalar; required.
	Name string

	// Description provides documentation for the scalar.
	Description string

	// ResultCoercer prepares values of this scalar for inclusion in a result.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values into values of this scalar.
	InputCoercer ScalarInputCoercer
}

// scalarName implements ScalarMarker.
func (def *ScalarDefinition) scalarName() string {
	return def.Name
}

// DirectiveDefinition describes a directive.
type DirectiveDefinition struct {
	// Name of the directive (without the "@" prefix); required.
	Name string

	// Description provides documentation for the directive.
	Description string

	// Locations lists where the directive may be applied.
	Locations []DirectiveLocation

	// Arguments accepted by the directive, in declaration order.
	Arguments []ArgumentDefinition
}

//===----------------------------------------------------------------------------------------====//
// Definition marker
//===----------------------------------------------------------------------------------------====//

// Definition is implemented by the definition variants that can be recorded in a TypeMap entry:
// *TypeDefinition, *EnumDefinition, *UnionDefinition and *ScalarDefinition. Directive definitions
// are excluded; directives are never cached.
type Definition interface {
	graphqlDefinition()
}

// graphqlDefinition implements Definition.
func (*TypeDefinition) graphqlDefinition() {}

// graphqlDefinition implements Definition.
func (*EnumDefinition) graphqlDefinition() {}

// graphqlDefinition implements Definition.
func (*UnionDefinition) graphqlDefinition() {}

// graphqlDefinition implements Definition.
func (*ScalarDefinition) graphqlDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Runtime type resolution
//===----------------------------------------------------------------------------------------====//

// TypeResolver determines the concrete Object type of a value at execution time on behalf of an
// abstract type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ResolveAbstractType()
type TypeResolver interface {
	// Resolve returns the member Object type that value belongs to. It returns an Error with
	// ErrKindWrongReturnTypeForUnion when value cannot be classified.
	Resolve(ctx context.Context, value interface{}) (*Object, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}) (*Object, error)

// Resolve calls f(ctx, value).
func (f TypeResolverFunc) Resolve(ctx context.Context, value interface{}) (*Object, error) {
	return f(ctx, value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = (TypeResolverFunc)(nil)

// TypeResolverFactory builds a TypeResolver for a union once the union's type universe is known.
type TypeResolverFactory interface {
	// NewTypeResolver is invoked during conversion with the TypeMap shared by the build.
	NewTypeResolver(typeMap *TypeMap) (TypeResolver, error)
}

// TypeResolverFactoryFunc is an adapter to allow the use of ordinary functions as
// TypeResolverFactory.
type TypeResolverFactoryFunc func(typeMap *TypeMap) (TypeResolver, error)

// NewTypeResolver calls f(typeMap).
func (f TypeResolverFactoryFunc) NewTypeResolver(typeMap *TypeMap) (TypeResolver, error) {
	return f(typeMap)
}

// TypeResolverFactoryFunc implements TypeResolverFactory.
var _ TypeResolverFactory = (TypeResolverFactoryFunc)(nil)
