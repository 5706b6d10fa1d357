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

// IsEqualType returns true if the two types are the same type, where List and NonNull wrappers
// (which are created fresh on every conversion) compare structurally over their inner types.
func IsEqualType(typeA Type, typeB Type) bool {
	// Equivalent types are equal.
	if typeA == typeB {
		return true
	}

	// If either type is non-null, the other must also be non-null.
	if typeA, ok := typeA.(*NonNull); ok {
		if typeB, ok := typeB.(*NonNull); ok {
			return IsEqualType(typeA.InnerType(), typeB.InnerType())
		}
		return false
	}

	// If either type is a list, the other must also be a list.
	if typeA, ok := typeA.(*List); ok {
		if typeB, ok := typeB.(*List); ok {
			return IsEqualType(typeA.ElementType(), typeB.ElementType())
		}
		return false
	}

	return false
}

// IsTypeSubTypeOf returns true if maybeSubType is either equal to or a subset of superType
// (covariant).
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sel-FAHbhBHCAACGB35P
func IsTypeSubTypeOf(schema *Schema, maybeSubType Type, superType Type) bool {
	// Equivalent type is a valid subtype.
	if maybeSubType == superType {
		return true
	}

	// If superType is non-null, maybeSubType must also be non-null.
	if superType, ok := superType.(*NonNull); ok {
		if maybeSubType, ok := maybeSubType.(*NonNull); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType.InnerType())
		}
		return false
	}
	// A non-null subtype is also a valid subtype of a nullable supertype.
	if maybeSubType, ok := maybeSubType.(*NonNull); ok {
		return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType)
	}

	// If superType is a list, maybeSubType must also be a list.
	if superType, ok := superType.(*List); ok {
		if maybeSubType, ok := maybeSubType.(*List); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.ElementType(), superType.ElementType())
		}
		return false
	}
	// A list is never a subtype of a non-list type.
	if _, ok := maybeSubType.(*List); ok {
		return false
	}

	// If superType is an abstract type, maybeSubType may be a currently possible object type.
	if superType, ok := superType.(AbstractType); ok {
		if maybeSubType, ok := maybeSubType.(*Object); ok {
			return schema.IsPossibleType(superType, maybeSubType)
		}
	}

	// Otherwise, the child type is not a valid subtype of the parent type.
	return false
}

// DoTypesOverlap checks whether two composite types "overlap", that is, some type could be a value
// of both. Two composite types overlap when they are equal, or when one is an abstract type some
// possible type of which is a subtype of the other.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Selection-Merging
func DoTypesOverlap(schema *Schema, typeA Type, typeB Type) bool {
	// Equivalent types overlap.
	if typeA == typeB {
		return true
	}

	if typeA, ok := typeA.(AbstractType); ok {
		if typeB, ok := typeB.(AbstractType); ok {
			// Two abstract types overlap when at least one possible type of one is a possible type
			// of the other.
			for _, possibleType := range schema.PossibleTypes(typeA) {
				if schema.IsPossibleType(typeB, possibleType) {
					return true
				}
			}
			return false
		}
		// An abstract type overlaps an object type when the object is one of its possible types.
		if typeB, ok := typeB.(*Object); ok {
			return schema.IsPossibleType(typeA, typeB)
		}
		return false
	}

	if typeB, ok := typeB.(AbstractType); ok {
		if typeA, ok := typeA.(*Object); ok {
			return schema.IsPossibleType(typeB, typeA)
		}
	}

	// Otherwise the types do not overlap.
	return false
}
