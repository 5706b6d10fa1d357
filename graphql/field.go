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
)

// FieldResolver resolves a field value during execution.
//
// The engine stores resolver handles without calling or inspecting them; binding arguments and
// execution state to a call is the executor's business.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Source is the value that has been resolved by the field's enclosing object.
	Resolve(ctx context.Context, source interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}) (interface{}, error)

// Resolve calls f(ctx, source).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return f(ctx, source)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// identityResolver returns the source value unchanged. Subscription fields get it as their
// resolver: the subscriber produces the event stream, and each event then passes through
// unmodified as the field value.
type identityResolver struct{}

// Resolve implements FieldResolver.
func (identityResolver) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return source, nil
}

var theIdentityResolver identityResolver

// Field represents a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field struct {
	name        string
	description string
	ttype       Type
	args        ArgumentList
	resolver    FieldResolver
	subscriber  FieldResolver
	deprecation *Deprecation
}

// Name of the field
func (field *Field) Name() string {
	return field.name
}

// Description of the field
func (field *Field) Description() string {
	return field.description
}

// Type of value yielded by the field
func (field *Field) Type() Type {
	return field.ttype
}

// Args returns the arguments the field accepts, in declaration order.
func (field *Field) Args() ArgumentList {
	return field.args
}

// Resolver returns the resolver that computes the field value. For subscription fields this is the
// identity resolver.
func (field *Field) Resolver() FieldResolver {
	return field.resolver
}

// Subscriber returns the resolver that produces the event stream for a subscription field, or nil
// for ordinary fields.
func (field *Field) Subscriber() FieldResolver {
	return field.subscriber
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (field *Field) Deprecation() *Deprecation {
	return field.deprecation
}

// FieldMap maps field name to the Field.
type FieldMap map[string]*Field

// Argument represents an argument in a field or a directive. All arguments are named and either
// accept a value at query time or fall back to their default.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue DefaultValue
}

// MockArgument creates an Argument from raw data. It is mainly for testing purpose: arguments are
// normally materialized from ArgumentDefinition's during conversion.
func MockArgument(name string, description string, t Type, defaultValue DefaultValue) Argument {
	return Argument{
		name:         name,
		description:  description,
		ttype:        t,
		defaultValue: defaultValue,
	}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// Default returns the argument's default in tri-state form. Absence, explicit null and an explicit
// value all survive conversion and can be told apart here.
func (arg *Argument) Default() DefaultValue {
	return arg.defaultValue
}

// HasDefaultValue returns true if the argument has a default value (which may be an explicit
// null).
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue.IsProvided()
}

// DefaultValue returns the default value of the argument, or nil when the default is an explicit
// null or was never provided. Use Default to distinguish the nil cases.
func (arg *Argument) DefaultValue() interface{} {
	return arg.defaultValue.Value()
}

// IsRequiredArgument returns true if a value must be provided to the argument for execution.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Required-Arguments
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

// ArgumentList holds the arguments of a field or a directive in declaration order while still
// answering by-name lookups.
type ArgumentList []Argument

// Lookup finds the argument with the given name, or nil when the list has none.
func (args ArgumentList) Lookup(name string) *Argument {
	for i := range args {
		if args[i].name == name {
			return &args[i]
		}
	}
	return nil
}
