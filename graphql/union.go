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
	"fmt"
	"strings"

	"github.com/calyxql/calyx/internal/util"
)

// Union represents a union type built from a UnionDefinition.
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually used
// when the field is resolved.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Unions
type Union struct {
	def           *UnionDefinition
	possibleTypes []*Object
	typeResolver  TypeResolver
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Union) graphqlNamedType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// Name implements TypeWithName.
func (t *Union) Name() string {
	return t.def.Name
}

// Description implements TypeWithDescription.
func (t *Union) Description() string {
	return t.def.Description
}

// String implements Type.
func (t *Union) String() string {
	return t.Name()
}

// PossibleTypes returns the member Object types of the union in declaration order.
func (t *Union) PossibleTypes() []*Object {
	return t.possibleTypes
}

// ContainsType returns true if the given object is a member of the union.
func (t *Union) ContainsType(object *Object) bool {
	for _, possibleType := range t.possibleTypes {
		if possibleType == object {
			return true
		}
	}
	return false
}

// TypeResolver returns the resolver that classifies runtime values into member types.
func (t *Union) TypeResolver() TypeResolver {
	return t.typeResolver
}

// ResolveType classifies value into one of the union's member types. A value no member accounts
// for yields an Error with ErrKindWrongReturnTypeForUnion; this is an execution-time condition,
// not a schema defect.
func (t *Union) ResolveType(ctx context.Context, value interface{}) (*Object, error) {
	return t.typeResolver.Resolve(ctx, value)
}

// Union implements AbstractType.
var _ AbstractType = (*Union)(nil)

// originTypeResolver is the resolver installed when a union definition brings no factory: it
// matches the runtime value's type against the members' Origin bindings.
type originTypeResolver struct {
	union *Union
}

// originTypeResolver implements TypeResolver.
var _ TypeResolver = (*originTypeResolver)(nil)

// Resolve implements TypeResolver.
func (resolver *originTypeResolver) Resolve(ctx context.Context, value interface{}) (*Object, error) {
	union := resolver.union
	for _, object := range union.possibleTypes {
		if object.IsTypeOf(value) {
			return object, nil
		}
	}

	names := make([]string, len(union.possibleTypes))
	for i, object := range union.possibleTypes {
		names[i] = object.Name()
	}
	var expected strings.Builder
	util.OrList(&expected, names, 5, false)

	return nil, NewError(
		fmt.Sprintf("Union %q cannot resolve the runtime type of value %s: expected an instance of %s.",
			union.Name(), Inspect(value), expected.String()),
		ErrKindWrongReturnTypeForUnion)
}

// unionBuilder builds a Union through the converter's two-phase protocol.
type unionBuilder struct {
	def *UnionDefinition
}

// unionBuilder implements typeBuilder.
var _ typeBuilder = (*unionBuilder)(nil)

// typeName implements typeBuilder.
func (builder *unionBuilder) typeName() string {
	return builder.def.Name
}

// definition implements typeBuilder.
func (builder *unionBuilder) definition() Definition {
	return builder.def
}

// instantiate implements typeBuilder.
func (builder *unionBuilder) instantiate() (Type, error) {
	return &Union{def: builder.def}, nil
}

// populate implements typeBuilder.
func (builder *unionBuilder) populate(t Type, conv *Converter) error {
	union := t.(*Union)

	// Resolve members through named-type dispatch: a member is the named type itself, never a
	// modifier composition over it.
	if numMembers := len(builder.def.Members); numMembers > 0 {
		possibleTypes := make([]*Object, numMembers)
		for i, memberRef := range builder.def.Members {
			memberType, err := conv.fromNamedRef(memberRef)
			if err != nil {
				return err
			}
			object, ok := memberType.(*Object)
			if !ok {
				return NewError(
					fmt.Sprintf("Union type %q can only include Object types, it cannot include %s.",
						builder.def.Name, memberType.String()),
					ErrKindUnallowedReturnTypeForUnion)
			}
			possibleTypes[i] = object
		}
		union.possibleTypes = possibleTypes
	}

	// Install the runtime type resolver: the definition's factory gets the shared TypeMap, so the
	// resolver it builds can see every type of this universe; without a factory the union falls
	// back to origin matching.
	if factory := builder.def.ResolverFactory; factory != nil {
		typeResolver, err := factory.NewTypeResolver(conv.typeMap)
		if err != nil {
			return err
		}
		union.typeResolver = typeResolver
	} else {
		union.typeResolver = &originTypeResolver{union: union}
	}

	return nil
}

// FromUnion converts a union definition into a Union. Idempotent over the converter's TypeMap.
func (conv *Converter) FromUnion(def *UnionDefinition) (*Union, error) {
	if def == nil {
		return nil, NewError("Must provide definition for Union.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}

	if entry, ok := conv.typeMap.Lookup(def.Name); ok {
		union, ok := entry.Implementation().(*Union)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("Cannot build a Union type named %q: the type map already binds the name to "+
					"a different kind of type.", def.Name),
				ErrKindWrongKindForBuilder)
		}
		return union, nil
	}

	t, err := conv.build(&unionBuilder{def: def})
	if err != nil {
		return nil, err
	}
	return t.(*Union), nil
}
