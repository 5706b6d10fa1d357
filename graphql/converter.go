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

	"github.com/calyxql/calyx/internal/util"
)

//===----------------------------------------------------------------------------------------====//
// Name conversion
//===----------------------------------------------------------------------------------------====//

// NameConverter rewrites field and argument names on their way from a definition into a schema
// type. Definitions commonly carry names in the convention of the system they were generated from
// (e.g., snake_case); a NameConverter installed on the Converter maps them into the convention the
// schema should expose. Type names are never rewritten.
type NameConverter interface {
	ConvertName(name string) string
}

// NameConverterFunc is an adapter to allow the use of ordinary functions as NameConverter.
type NameConverterFunc func(name string) string

// ConvertName calls f(name).
func (f NameConverterFunc) ConvertName(name string) string {
	return f(name)
}

// NameConverterFunc implements NameConverter.
var _ NameConverter = (NameConverterFunc)(nil)

// CamelCaseNameConverter rewrites snake_case names into the lowerCamelCase convention commonly
// used for GraphQL fields (e.g., "display_name" becomes "displayName").
var CamelCaseNameConverter NameConverter = NameConverterFunc(util.CamelCase)

// SnakeCaseNameConverter rewrites camel case names into snake_case, for schemas that should expose
// the snake convention of the system they front (e.g., "displayName" becomes "display_name").
var SnakeCaseNameConverter NameConverter = NameConverterFunc(util.SnakeCase)

//===----------------------------------------------------------------------------------------====//
// Converter
//===----------------------------------------------------------------------------------------====//

// ConverterConfig provides the setup for creating a Converter.
type ConverterConfig struct {
	// TypeMap memoizes the named types built during conversion. Handing the same map to a series
	// of converters grows one type universe across builds. When nil, the converter starts with an
	// empty map of its own.
	TypeMap *TypeMap

	// Scalars resolves scalar markers into Scalar types. When nil, DefaultScalarRegistry is used,
	// which knows the builtin markers and *ScalarDefinition.
	Scalars ScalarRegistry

	// NameConverter, when given, rewrites field and argument names during conversion. When nil,
	// names are taken as they appear in definitions.
	NameConverter NameConverter
}

// Converter builds concrete schema types from a graph of definitions.
//
// A Converter carries the state of one build: the TypeMap that memoizes named types, the scalar
// registry, and the optional name converter. All state is local to the converter; two converters
// share nothing unless handed the same TypeMap. A build is a single-goroutine affair and a
// Converter must not be used concurrently.
//
// Conversion enters through the From* methods. Each named type is built at most once per TypeMap:
// the first request runs the two-phase build below and every later request (including recursive
// requests made while the type is still being populated) returns the memoized instance.
//
// Any error aborts the build. The TypeMap may then hold partially populated types, so the caller
// is expected to discard the converter together with its map; no attempt is made to roll entries
// back.
type Converter struct {
	typeMap       *TypeMap
	scalars       ScalarRegistry
	nameConverter NameConverter
}

// NewConverter creates a Converter from the config. A nil config is valid and selects the defaults
// for every field.
func NewConverter(config *ConverterConfig) *Converter {
	if config == nil {
		config = &ConverterConfig{}
	}

	conv := &Converter{
		typeMap:       config.TypeMap,
		scalars:       config.Scalars,
		nameConverter: config.NameConverter,
	}
	if conv.typeMap == nil {
		conv.typeMap = NewTypeMap()
	}
	if conv.scalars == nil {
		conv.scalars = DefaultScalarRegistry{}
	}
	return conv
}

// TypeMap returns the map the converter memoizes named types in.
func (conv *Converter) TypeMap() *TypeMap {
	return conv.typeMap
}

//===----------------------------------------------------------------------------------------====//
// Two-phase build protocol
//===----------------------------------------------------------------------------------------====//

// typeBuilder is the protocol every named type is built through. build drives it in two phases:
// instantiate allocates a skeleton which is registered in the TypeMap under typeName, then
// populate completes the skeleton. Registration happens between the phases, so a reference back to
// the type being built (self-referential or through a cycle of definitions) resolves to the
// skeleton instead of starting the build over.
type typeBuilder interface {
	// typeName returns the name the built type is registered under.
	typeName() string

	// definition returns the definition to record in the TypeMap entry.
	definition() Definition

	// instantiate allocates the skeleton value of the type.
	instantiate() (Type, error)

	// populate completes the skeleton, resolving the types it references through conv.
	populate(t Type, conv *Converter) error
}

// build runs the two-phase protocol for the given builder. Callers have checked the TypeMap for an
// existing entry; build assumes a miss. When populate fails, the entry stays in the map in its
// half-built state and the error makes the caller discard the whole build.
func (conv *Converter) build(builder typeBuilder) (Type, error) {
	t, err := builder.instantiate()
	if err != nil {
		return nil, err
	}

	if err := conv.typeMap.Insert(builder.typeName(), builder.definition(), t); err != nil {
		return nil, err
	}

	if err := builder.populate(t, conv); err != nil {
		return nil, err
	}

	return t, nil
}

//===----------------------------------------------------------------------------------------====//
// Type reference resolution
//===----------------------------------------------------------------------------------------====//

// FromTypeRef resolves a type reference into the concrete type it refers to, with the nullability
// convention applied: a bare reference yields NonNull(T) and only an OptionalOf wrapper at a given
// level suppresses the NonNull at that level. A list reference wraps the (recursively resolved)
// element type in a List. For example:
//
//	ObjectRef(def)                        resolves to  def!
//	OptionalOf(ObjectRef(def))            resolves to  def
//	ListOf(ObjectRef(def))                resolves to  [def!]!
//	OptionalOf(ListOf(OptionalOf(ObjectRef(def))))  resolves to  [def]
//
// Named types resolve through the builder for their kind and are memoized in the converter's
// TypeMap; List and NonNull wrappers are created fresh on every call.
func (conv *Converter) FromTypeRef(ref TypeRef) (Type, error) {
	// Unwrap at most one Optional at this level. An Optional directly inside an Optional is not a
	// reference any builder understands and falls through to the error below.
	nullable := false
	if ref.Kind() == TypeRefKindOptional {
		nullable = true
		ref = ref.Elem()
	}

	var t Type
	if ref.Kind() == TypeRefKindList {
		elementType, err := conv.FromTypeRef(ref.Elem())
		if err != nil {
			return nil, err
		}
		list, err := NewListOfType(elementType)
		if err != nil {
			return nil, err
		}
		t = list
	} else {
		namedType, err := conv.fromNamedRef(ref)
		if err != nil {
			return nil, err
		}
		t = namedType
	}

	if nullable {
		return t, nil
	}
	return NewNonNullOfType(t)
}

// fromNamedRef resolves a reference that must refer to a named type, dispatching on the variant
// tag to the builder for the kind. Union members resolve through this path: a member is the named
// type itself, with no modifier applied.
func (conv *Converter) fromNamedRef(ref TypeRef) (Type, error) {
	switch ref.Kind() {
	case TypeRefKindObject:
		object, err := conv.FromObject(ref.TypeDefinition())
		if err != nil {
			return nil, err
		}
		return object, nil

	case TypeRefKindInput:
		inputObject, err := conv.FromInput(ref.TypeDefinition())
		if err != nil {
			return nil, err
		}
		return inputObject, nil

	case TypeRefKindInterface:
		iface, err := conv.FromInterface(ref.TypeDefinition())
		if err != nil {
			return nil, err
		}
		return iface, nil

	case TypeRefKindEnum:
		enum, err := conv.FromEnum(ref.EnumDefinition())
		if err != nil {
			return nil, err
		}
		return enum, nil

	case TypeRefKindScalar:
		scalar, err := conv.FromScalar(ref.ScalarMarker())
		if err != nil {
			return nil, err
		}
		return scalar, nil

	case TypeRefKindUnion:
		union, err := conv.FromUnion(ref.UnionDefinition())
		if err != nil {
			return nil, err
		}
		return union, nil
	}

	return nil, NewError(
		fmt.Sprintf("Cannot resolve type reference with kind %s where a named type is required.",
			ref.Kind()),
		ErrKindUnrecognizedTypeKind)
}

//===----------------------------------------------------------------------------------------====//
// Field and argument materialization
//===----------------------------------------------------------------------------------------====//

// convertName applies the configured name converter, if any.
func (conv *Converter) convertName(name string) string {
	if conv.nameConverter == nil {
		return name
	}
	return conv.nameConverter.ConvertName(name)
}

// buildFieldMap materializes the fields of an object or interface type.
func (conv *Converter) buildFieldMap(fieldDefs []FieldDefinition) (FieldMap, error) {
	if len(fieldDefs) == 0 {
		return nil, nil
	}

	fields := make(FieldMap, len(fieldDefs))
	for i := range fieldDefs {
		field, err := conv.fromFieldDef(&fieldDefs[i])
		if err != nil {
			return nil, err
		}
		fields[field.name] = field
	}
	return fields, nil
}

// fromFieldDef materializes one output field: resolve the field type, materialize arguments, carry
// deprecation and split subscription duties.
func (conv *Converter) fromFieldDef(fieldDef *FieldDefinition) (*Field, error) {
	if len(fieldDef.Name) == 0 {
		return nil, NewError("Cannot materialize a field definition without name.", ErrKindInternal)
	}

	fieldType, err := conv.FromTypeRef(fieldDef.Type)
	if err != nil {
		return nil, err
	}

	args, err := conv.buildArgumentList(fieldDef.Arguments)
	if err != nil {
		return nil, err
	}

	field := &Field{
		name:        conv.convertName(fieldDef.Name),
		description: fieldDef.Description,
		ttype:       fieldType,
		args:        args,
		resolver:    fieldDef.Resolver,
	}
	if len(fieldDef.DeprecationReason) > 0 {
		field.deprecation = &Deprecation{Reason: fieldDef.DeprecationReason}
	}

	// A subscription field splits duties: the definition's resolver becomes the subscriber that
	// produces the event stream, and the field resolves each streamed event as its own value.
	if fieldDef.IsSubscription {
		field.subscriber = fieldDef.Resolver
		field.resolver = theIdentityResolver
	}

	return field, nil
}

// buildArgumentList materializes the arguments of a field or a directive in definition order.
func (conv *Converter) buildArgumentList(argDefs []ArgumentDefinition) (ArgumentList, error) {
	if len(argDefs) == 0 {
		return nil, nil
	}

	args := make(ArgumentList, len(argDefs))
	for i := range argDefs {
		argDef := &argDefs[i]
		if len(argDef.Name) == 0 {
			return nil, NewError(
				"Cannot materialize an argument definition without name.", ErrKindInternal)
		}

		argType, err := conv.FromTypeRef(argDef.Type)
		if err != nil {
			return nil, err
		}

		args[i] = Argument{
			name:         conv.convertName(argDef.Name),
			description:  argDef.Description,
			ttype:        argType,
			defaultValue: argDef.Default,
		}
	}
	return args, nil
}

// buildInputFieldMap materializes the fields of an input object type. Input fields carry the
// tri-state default through unchanged; Arguments, Resolver and IsSubscription in the definitions
// are meaningless here and are ignored.
func (conv *Converter) buildInputFieldMap(fieldDefs []FieldDefinition) (InputFieldMap, error) {
	if len(fieldDefs) == 0 {
		return nil, nil
	}

	fields := make(InputFieldMap, len(fieldDefs))
	for i := range fieldDefs {
		fieldDef := &fieldDefs[i]
		if len(fieldDef.Name) == 0 {
			return nil, NewError(
				"Cannot materialize a field definition without name.", ErrKindInternal)
		}

		fieldType, err := conv.FromTypeRef(fieldDef.Type)
		if err != nil {
			return nil, err
		}

		field := &InputField{
			name:         conv.convertName(fieldDef.Name),
			description:  fieldDef.Description,
			ttype:        fieldType,
			defaultValue: fieldDef.Default,
		}
		fields[field.name] = field
	}
	return fields, nil
}
