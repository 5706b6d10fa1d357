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

// Package graphql builds GraphQL schema types from plain definition values.
//
// Definition-Converter-Type Design
//
// The package splits a schema into two layers. Definitions (TypeDefinition, EnumDefinition,
// UnionDefinition, ScalarDefinition, DirectiveDefinition) are inert data: they describe types by
// name, kind and structure, and refer to each other through TypeRef values. A Converter turns a
// definition graph into the concrete types (Object, Interface, InputObject, Enum, Union, Scalar)
// an engine consumes.
//
// Because definitions reference each other as plain values rather than through package-level
// variables, a dependency graph with cycles (including self reference) never trips Go's
// "initialization loop" detection. The Converter completes the picture at conversion time: every
// named type is registered in the build's TypeMap before its fields are populated, so a reference
// back to a type under construction resolves to the in-progress instance instead of recursing.
//
// Note that each named type is built at most once per TypeMap. A conversion memoizes the built
// type under its name; later conversions of the same definition against the same map return the
// memoized instance, and changes made to a definition after its type was built do not reflect to
// the built type.
//
// NewSchema assembles the root operation types, directives and any additional types into a Schema
// through a single Converter, producing one type universe for the whole schema.
package graphql
