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

// TypeRefKind tags the variant held by a TypeRef. The set is closed: the converter routes on the
// tag with an exhaustive switch, and any value outside the enumeration below (including the zero
// value) is rejected with ErrKindUnrecognizedTypeKind instead of being guessed at.
type TypeRefKind uint8

// Enumeration of TypeRefKind
const (
	// TypeRefKindInvalid is the zero value of TypeRefKind. A zero-valued TypeRef refers to
	// nothing.
	TypeRefKindInvalid TypeRefKind = iota

	// Named type references; each carries the definition of the type it refers to.
	TypeRefKindObject
	TypeRefKindInput
	TypeRefKindInterface
	TypeRefKindEnum
	TypeRefKindScalar
	TypeRefKindUnion

	// Modifier references; each wraps an element reference.
	TypeRefKindList
	TypeRefKindOptional
)

func (kind TypeRefKind) String() string {
	switch kind {
	case TypeRefKindInvalid:
		return "Invalid"
	case TypeRefKindObject:
		return "Object"
	case TypeRefKindInput:
		return "Input"
	case TypeRefKindInterface:
		return "Interface"
	case TypeRefKindEnum:
		return "Enum"
	case TypeRefKindScalar:
		return "Scalar"
	case TypeRefKindUnion:
		return "Union"
	case TypeRefKindList:
		return "List"
	case TypeRefKindOptional:
		return "Optional"
	}
	return "Unknown"
}

// A TypeRef refers to a type from within a definition graph: either a named definition (object,
// input object, interface, enum, scalar or union) or a modifier (list, optional) applied to an
// element reference. TypeRef is a small value type; definitions reference each other through it so
// that the graph stays passive data until a Converter walks it.
//
// References are non-null by default. A bare reference converts to NonNull(T); wrap it in
// OptionalOf to get the nullable T. This follows the convention of the definition graphs this
// engine consumes, where nullability is the annotated exception rather than the default.
type TypeRef struct {
	kind   TypeRefKind
	def    *TypeDefinition
	enum   *EnumDefinition
	union  *UnionDefinition
	scalar ScalarMarker
	elem   *TypeRef
}

// ObjectRef refers to the object type described by def.
func ObjectRef(def *TypeDefinition) TypeRef {
	return TypeRef{kind: TypeRefKindObject, def: def}
}

// InputRef refers to the input object type described by def.
func InputRef(def *TypeDefinition) TypeRef {
	return TypeRef{kind: TypeRefKindInput, def: def}
}

// InterfaceRef refers to the interface type described by def.
func InterfaceRef(def *TypeDefinition) TypeRef {
	return TypeRef{kind: TypeRefKindInterface, def: def}
}

// EnumRef refers to the enum type described by def.
func EnumRef(def *EnumDefinition) TypeRef {
	return TypeRef{kind: TypeRefKindEnum, enum: def}
}

// ScalarRef refers to the scalar type identified by the given marker. The marker is either one of
// the builtin markers (e.g., IntScalar) or a *ScalarDefinition for a custom scalar.
func ScalarRef(scalar ScalarMarker) TypeRef {
	return TypeRef{kind: TypeRefKindScalar, scalar: scalar}
}

// UnionRef refers to the union type described by def.
func UnionRef(def *UnionDefinition) TypeRef {
	return TypeRef{kind: TypeRefKindUnion, union: def}
}

// ListOf refers to a list whose elements are referred by elem.
func ListOf(elem TypeRef) TypeRef {
	return TypeRef{kind: TypeRefKindList, elem: &elem}
}

// OptionalOf marks the referred type as nullable. It suppresses the NonNull wrapper that
// conversion would otherwise apply at this level.
func OptionalOf(elem TypeRef) TypeRef {
	return TypeRef{kind: TypeRefKindOptional, elem: &elem}
}

// Kind returns the variant tag.
func (ref TypeRef) Kind() TypeRefKind {
	return ref.kind
}

// TypeDefinition returns the referred definition for Object, Input and Interface references, and
// nil for any other kind.
func (ref TypeRef) TypeDefinition() *TypeDefinition {
	return ref.def
}

// EnumDefinition returns the referred definition for Enum references, and nil for any other kind.
func (ref TypeRef) EnumDefinition() *EnumDefinition {
	return ref.enum
}

// UnionDefinition returns the referred definition for Union references, and nil for any other
// kind.
func (ref TypeRef) UnionDefinition() *UnionDefinition {
	return ref.union
}

// ScalarMarker returns the referred scalar marker for Scalar references, and nil for any other
// kind.
func (ref TypeRef) ScalarMarker() ScalarMarker {
	return ref.scalar
}

// Elem returns the element reference for List and Optional references, and a zero-valued (invalid)
// TypeRef for any other kind.
func (ref TypeRef) Elem() TypeRef {
	if ref.elem == nil {
		return TypeRef{}
	}
	return *ref.elem
}

// String returns a notation for the reference: the definition name for named references, "[T]"
// for lists and "T?" for optionals.
func (ref TypeRef) String() string {
	switch ref.kind {
	case TypeRefKindObject, TypeRefKindInput, TypeRefKindInterface:
		if ref.def != nil {
			return ref.def.Name
		}
	case TypeRefKindEnum:
		if ref.enum != nil {
			return ref.enum.Name
		}
	case TypeRefKindScalar:
		if ref.scalar != nil {
			return ref.scalar.scalarName()
		}
	case TypeRefKindUnion:
		if ref.union != nil {
			return ref.union.Name
		}
	case TypeRefKindList:
		return "[" + ref.Elem().String() + "]"
	case TypeRefKindOptional:
		return ref.Elem().String() + "?"
	}
	return "<invalid>"
}
