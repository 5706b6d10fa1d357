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

package graphql_test

import (
	"fmt"

	"github.com/calyxql/calyx/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Interface", func() {
	var conv *graphql.Converter

	BeforeEach(func() {
		conv = graphql.NewConverter(nil)
	})

	It("defines an interface with fields", func() {
		iface, err := conv.FromInterface(&graphql.TypeDefinition{
			Name:        "Named",
			Description: "Anything with a name.",
			Kind:        graphql.TypeKindInterface,
			Fields: []graphql.FieldDefinition{
				{Name: "name", Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar))},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(iface.Name()).Should(Equal("Named"))
		Expect(iface.Description()).Should(Equal("Anything with a name."))

		name := iface.Fields()["name"]
		Expect(name).ShouldNot(BeNil())
		Expect(name.Type()).Should(Equal(graphql.String()))
	})

	It("may implement interfaces itself", func() {
		nodeDef := &graphql.TypeDefinition{
			Name: "Node",
			Kind: graphql.TypeKindInterface,
			Fields: []graphql.FieldDefinition{
				{Name: "id", Type: graphql.ScalarRef(graphql.IDScalar)},
			},
		}

		resource, err := conv.FromInterface(&graphql.TypeDefinition{
			Name:       "Resource",
			Kind:       graphql.TypeKindInterface,
			Interfaces: []*graphql.TypeDefinition{nodeDef},
			Fields: []graphql.FieldDefinition{
				{Name: "id", Type: graphql.ScalarRef(graphql.IDScalar)},
				{Name: "url", Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar))},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		node, err := conv.FromInterface(nodeDef)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resource.Interfaces()).Should(Equal([]*graphql.Interface{node}))
	})

	It("resolves mutually recursive interfaces", func() {
		friendlyDef := &graphql.TypeDefinition{
			Name: "Friendly",
			Kind: graphql.TypeKindInterface,
		}
		friendlyDef.Fields = []graphql.FieldDefinition{
			// A self reference through a list.
			{Name: "bestFriend", Type: graphql.OptionalOf(graphql.InterfaceRef(friendlyDef))},
			{Name: "friends", Type: graphql.ListOf(graphql.OptionalOf(graphql.InterfaceRef(friendlyDef)))},
		}

		iface, err := conv.FromInterface(friendlyDef)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(iface.Fields()["bestFriend"].Type()).Should(BeIdenticalTo(iface))

		friends := iface.Fields()["friends"].Type()
		nonNull, ok := friends.(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		list, ok := nonNull.InnerType().(*graphql.List)
		Expect(ok).Should(BeTrue())
		Expect(list.ElementType()).Should(BeIdenticalTo(iface))
	})

	It("memoizes conversion by type name", func() {
		def := &graphql.TypeDefinition{
			Name: "Node",
			Kind: graphql.TypeKindInterface,
			Fields: []graphql.FieldDefinition{
				{Name: "id", Type: graphql.ScalarRef(graphql.IDScalar)},
			},
		}

		iface, err := conv.FromInterface(def)
		Expect(err).ShouldNot(HaveOccurred())

		again, err := conv.FromInterface(def)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(again).Should(BeIdenticalTo(iface))
	})

	It("stringifies to type name", func() {
		iface, err := conv.FromInterface(&graphql.TypeDefinition{
			Name: "Interface",
			Kind: graphql.TypeKindInterface,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fmt.Sprintf("%s", iface)).Should(Equal("Interface"))
		Expect(fmt.Sprintf("%v", iface)).Should(Equal("Interface"))
	})

	It("rejects creating type without name", func() {
		_, err := conv.FromInterface(&graphql.TypeDefinition{
			Name: "",
			Kind: graphql.TypeKindInterface,
		})
		Expect(err).Should(MatchError("Must provide name for Interface."))
	})

	It("rejects a nil definition", func() {
		_, err := conv.FromInterface(nil)
		Expect(err).Should(MatchError("Must provide definition for Interface."))
	})

	It("rejects a definition of a different kind", func() {
		_, err := conv.FromInterface(&graphql.TypeDefinition{
			Name: "SomeObject",
			Kind: graphql.TypeKindObject,
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindWrongKindForBuilder))
	})

	It("rejects a name already bound to a different kind of type", func() {
		_, err := conv.FromObject(&graphql.TypeDefinition{Name: "Clash"})
		Expect(err).ShouldNot(HaveOccurred())

		_, err = conv.FromInterface(&graphql.TypeDefinition{
			Name: "Clash",
			Kind: graphql.TypeKindInterface,
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindWrongKindForBuilder))
	})
})
