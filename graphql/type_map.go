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

import "fmt"

// ConcreteType is a TypeMap entry: the definition a named type was built from, paired with the
// type built from it.
type ConcreteType struct {
	definition Definition
	impl       Type
}

// Definition returns the definition the entry was built from.
func (t ConcreteType) Definition() Definition {
	return t.definition
}

// Implementation returns the built type.
func (t ConcreteType) Implementation() Type {
	return t.impl
}

// TypeMap memoizes every named type built during conversion, keyed by type name. It is what makes
// conversion idempotent (a name maps to at most one concrete type) and cycle-safe (an entry is
// inserted before the type behind it is fully populated, so self- and mutual references resolve to
// the in-progress skeleton instead of recursing).
//
// A TypeMap may be handed to several converters in turn to grow one type universe across builds.
// It is not safe for concurrent use; conversion is a single-goroutine affair.
//
// Built-in scalars are package singletons and never appear in a TypeMap.
type TypeMap struct {
	entries map[string]ConcreteType

	// Type names in insertion order. Iteration over a Go map is randomized; keeping the order
	// explicit makes Range and TypeNames deterministic.
	names []string
}

// NewTypeMap creates an empty TypeMap. The zero value is ready to use as well.
func NewTypeMap() *TypeMap {
	return &TypeMap{}
}

// Lookup finds the entry built for the given name.
func (m *TypeMap) Lookup(name string) (ConcreteType, bool) {
	entry, ok := m.entries[name]
	return entry, ok
}

// LookupType is a convenience around Lookup that returns the built type, or nil when the name has
// no entry.
func (m *TypeMap) LookupType(name string) Type {
	entry, ok := m.entries[name]
	if !ok {
		return nil
	}
	return entry.impl
}

// Insert records the type built for the given name. Inserting a name that is already taken is an
// internal error; builders must check Lookup first and only build on a miss.
func (m *TypeMap) Insert(name string, def Definition, impl Type) error {
	if len(name) == 0 {
		return NewError("Cannot insert a type without name into the type map.", ErrKindInternal)
	}
	if _, exists := m.entries[name]; exists {
		return NewError(
			fmt.Sprintf("Cannot insert type %q into the type map: the name is already taken.", name),
			ErrKindInternal)
	}

	if m.entries == nil {
		m.entries = map[string]ConcreteType{}
	}
	m.entries[name] = ConcreteType{
		definition: def,
		impl:       impl,
	}
	m.names = append(m.names, name)
	return nil
}

// Len returns the number of entries.
func (m *TypeMap) Len() int {
	return len(m.entries)
}

// TypeNames returns the names of all entries in insertion order.
func (m *TypeMap) TypeNames() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Range calls f for every entry in insertion order until f returns false.
func (m *TypeMap) Range(f func(name string, entry ConcreteType) bool) {
	for _, name := range m.names {
		if !f(name, m.entries[name]) {
			return
		}
	}
}
