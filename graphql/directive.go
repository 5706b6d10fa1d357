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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://graphql.github.io/graphql-spec/June2018/#DirectiveLocations
const (
	// Executable directive location
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation                             = "MUTATION"
	DirectiveLocationSubscription                         = "SUBSCRIPTION"
	DirectiveLocationField                                = "FIELD"
	DirectiveLocationFragmentDefinition                   = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread                       = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment                       = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition                   = "VARIABLE_DEFINITION"

	// Type system directive location
	DirectiveLocationSchema               = "SCHEMA"
	DirectiveLocationScalar               = "SCALAR"
	DirectiveLocationObject               = "OBJECT"
	DirectiveLocationFieldDefinition      = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            = "INTERFACE"
	DirectiveLocationUnion                = "UNION"
	DirectiveLocationEnum                 = "ENUM"
	DirectiveLocationEnumValue            = "ENUM_VALUE"
	DirectiveLocationInputObject          = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition = "INPUT_FIELD_DEFINITION"
)

// Directive is used by the GraphQL runtime as a way of modifying a validator, execution or client
// tool behavior.
//
// Directives are not types: they never enter a TypeMap and nothing refers to a directive through a
// TypeRef. Each conversion of a DirectiveDefinition produces a fresh Directive; only the argument
// types it mentions are shared through the converter's map.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Directives
type Directive struct {
	name        string
	description string
	locations   []DirectiveLocation
	args        ArgumentList
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

// FromDirective materializes a Directive from its definition. Argument types resolve through the
// converter, so named types an argument mentions land in the converter's TypeMap like any other
// reference.
func (conv *Converter) FromDirective(def *DirectiveDefinition) (*Directive, error) {
	if def == nil {
		return nil, NewError("Must provide definition for Directive.")
	}
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}

	args, err := conv.buildArgumentList(def.Arguments)
	if err != nil {
		return nil, err
	}

	locations := def.Locations
	if len(locations) > 0 {
		locations = make([]DirectiveLocation, len(def.Locations))
		copy(locations, def.Locations)
	}

	return &Directive{
		name:        def.Name,
		description: def.Description,
		locations:   locations,
		args:        args,
		notation:    "@" + def.Name,
	}, nil
}

// NewDirective creates a Directive from a DirectiveDefinition with a converter of its own. Types
// referenced by the arguments are built into a private TypeMap; convert through
// Converter.FromDirective instead to share them with a schema build.
func NewDirective(def *DirectiveDefinition) (*Directive, error) {
	return NewConverter(nil).FromDirective(def)
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(def *DirectiveDefinition) *Directive {
	directive, err := NewDirective(def)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive
func (d *Directive) Name() string {
	return d.name
}

// Description provides documentation for the directive.
func (d *Directive) Description() string {
	return d.description
}

// Locations specifies the places where the directive must only be used.
func (d *Directive) Locations() []DirectiveLocation {
	return d.locations
}

// Args indicates the arguments taken by the directive.
func (d *Directive) Args() ArgumentList {
	return d.args
}

// String implements fmt.Stringer. It returns the "@name" notation of the directive.
func (d *Directive) String() string {
	return d.notation
}
