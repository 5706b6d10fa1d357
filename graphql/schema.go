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

// DirectiveList is a list of Directive.
type DirectiveList []*Directive

// Lookup finds a directive with given name in the list.
func (directiveList DirectiveList) Lookup(name string) *Directive {
	for _, directive := range directiveList {
		if directive.Name() == name {
			return directive
		}
	}
	return nil
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription describe the GraphQL Root Operations defined by the schema.
	// Query is required.
	Query        *TypeDefinition
	Mutation     *TypeDefinition
	Subscription *TypeDefinition

	// Directives to be defined by the schema, in addition to the standard ones.
	Directives []*DirectiveDefinition

	// If true, the standard directives such as @skip will not be included in the defining schema.
	// The directives provided in Directives will be the exact list of directives represented and
	// allowed.
	ExcludeStandardDirectives bool

	// AdditionalTypes are built into the schema's type universe even when nothing reachable from
	// the root operations refers to them. This is how union members reachable only through a type
	// resolver, or types served purely for introspection, enter the schema.
	AdditionalTypes []TypeRef

	// TypeMap, when given, seeds the build with an existing type universe and receives the types
	// this schema adds. When nil, the schema builds a universe of its own.
	TypeMap *TypeMap

	// Scalars and NameConverter configure the converter driving the build. See ConverterConfig.
	Scalars       ScalarRegistry
	NameConverter NameConverter
}

// Schema Definition
//
// A GraphQL service's collective type system capabilities are referred to as that service's
// "schema". A schema is defined in terms of the types and directives it supports as well as the
// root operation types for each kind of operation: query, mutation, and subscription; this
// determines the place in the type system where those operations begin.
//
// Definitions including types and directives in schema are assumed to be immutable after creation.
// This allows us to cache the results for some operations such as PossibleTypes.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Schema
type Schema struct {
	// query, mutation and subscription are root operation objects.
	query        *Object
	mutation     *Object
	subscription *Object

	// typeMap contains all named types defined in the schema.
	typeMap *TypeMap

	// directives contains all directives defined in the schema.
	directives DirectiveList

	// implementations keeps track of all implementations by interface.
	implementations map[*Interface][]*Object
}

// NewSchema builds a Schema from the given config. All types are built through one converter, so
// every named type reachable from the roots, the directives and the additional types lands in a
// single shared TypeMap.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	if config == nil || config.Query == nil {
		return nil, NewError("Must provide root query type for Schema.")
	}

	conv := NewConverter(&ConverterConfig{
		TypeMap:       config.TypeMap,
		Scalars:       config.Scalars,
		NameConverter: config.NameConverter,
	})

	schema := &Schema{}

	// Build root operation types.
	query, err := conv.FromObject(config.Query)
	if err != nil {
		return nil, err
	}
	schema.query = query

	if config.Mutation != nil {
		mutation, err := conv.FromObject(config.Mutation)
		if err != nil {
			return nil, err
		}
		schema.mutation = mutation
	}

	if config.Subscription != nil {
		subscription, err := conv.FromObject(config.Subscription)
		if err != nil {
			return nil, err
		}
		schema.subscription = subscription
	}

	// Build directives. Argument types resolve through the same converter so any named types they
	// mention join the schema's universe.
	numDirectives := len(config.Directives)
	standardDirectives := StandardDirectives()
	if config.ExcludeStandardDirectives {
		schema.directives = make(DirectiveList, 0, numDirectives)
	} else {
		schema.directives = make(DirectiveList, 0, numDirectives+len(standardDirectives))
	}
	for _, directiveDef := range config.Directives {
		directive, err := conv.FromDirective(directiveDef)
		if err != nil {
			return nil, err
		}
		schema.directives = append(schema.directives, directive)
	}
	if !config.ExcludeStandardDirectives {
		schema.directives = append(schema.directives, standardDirectives...)
	}

	// Force-register the additional types. The built types need no further mention; named types
	// among them are now memoized in the map.
	for _, ref := range config.AdditionalTypes {
		if _, err := conv.FromTypeRef(ref); err != nil {
			return nil, err
		}
	}

	schema.typeMap = conv.TypeMap()

	// Keep track of all implementations by interface.
	implementations := map[*Interface][]*Object{}
	schema.typeMap.Range(func(name string, entry ConcreteType) bool {
		if object, ok := entry.Implementation().(*Object); ok {
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range object.Interfaces() {
				implementations[iface] = append(implementations[iface], object)
			}
		}
		return true
	})
	schema.implementations = implementations

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() *TypeMap {
	return schema.typeMap
}

// Type finds a named type in the schema. The builtin scalars are part of every schema without
// appearing in its TypeMap; their names resolve here unless the map binds them to something else
// (e.g., a custom scalar registry redefined them).
func (schema *Schema) Type(name string) Type {
	if t := schema.typeMap.LookupType(name); t != nil {
		return t
	}
	switch name {
	case "Int":
		return Int()
	case "Float":
		return Float()
	case "String":
		return String()
	case "Boolean":
		return Boolean()
	case "ID":
		return ID()
	}
	return nil
}

// Directives keeps track of all valid directives within the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Directive finds a directive with given name in the schema.
func (schema *Schema) Directive(name string) *Directive {
	return schema.directives.Lookup(name)
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For Interface, this is
// the list of Object types that implement it. For Union, this is the list of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t]
	default:
		return nil
	}
}

// IsPossibleType returns true if the given object is a concrete type of the abstract type in the
// schema.
func (schema *Schema) IsPossibleType(t AbstractType, object *Object) bool {
	for _, possibleType := range schema.PossibleTypes(t) {
		if possibleType == object {
			return true
		}
	}
	return false
}
