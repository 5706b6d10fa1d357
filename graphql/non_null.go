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

// NonNull is the type for a value that is never null.
//
// Like List, NonNull values are not memoized; conversion wraps the memoized inner type in a fresh
// NonNull. A NonNull never wraps another NonNull.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	elementType Type
	notation    string
}

// NewNonNullOfType defines a NonNull type wrapping the given inner type.
func NewNonNullOfType(elementType Type) (*NonNull, error) {
	if elementType == nil {
		return nil, NewError("Must provide a non-nil inner type for NonNull.")
	}
	if !IsNullableType(elementType) {
		return nil, NewError(
			fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", elementType.String()))
	}
	return &NonNull{
		elementType: elementType,
		notation:    fmt.Sprintf("%s!", elementType.String()),
	}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(elementType Type) *NonNull {
	t, err := NewNonNullOfType(elementType)
	if err != nil {
		panic(err)
	}
	return t
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// InnerType returns the type wrapped by this non-null.
func (t *NonNull) InnerType() Type {
	return t.elementType
}

// UnwrappedType implements WrappingType.
func (t *NonNull) UnwrappedType() Type {
	return t.InnerType()
}

// String implements Type.
func (t *NonNull) String() string {
	return t.notation
}

// NonNull implements WrappingType.
var _ WrappingType = (*NonNull)(nil)
