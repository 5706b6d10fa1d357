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
	"context"

	"github.com/calyxql/calyx/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field", func() {
	var conv *graphql.Converter

	BeforeEach(func() {
		conv = graphql.NewConverter(nil)
	})

	Describe("Argument", func() {
		It("exposes the data given to MockArgument", func() {
			arg := graphql.MockArgument(
				"limit", "Maximum number of results.", graphql.Int(), graphql.DefaultValueOf(10))

			Expect(arg.Name()).Should(Equal("limit"))
			Expect(arg.Description()).Should(Equal("Maximum number of results."))
			Expect(arg.Type()).Should(Equal(graphql.Int()))
			Expect(arg.HasDefaultValue()).Should(BeTrue())
			Expect(arg.DefaultValue()).Should(Equal(10))
		})

		It("tells required arguments from optional ones", func() {
			required := graphql.MockArgument(
				"id", "", graphql.MustNewNonNullOfType(graphql.ID()), graphql.NoDefaultValue())
			Expect(graphql.IsRequiredArgument(&required)).Should(BeTrue())

			defaulted := graphql.MockArgument(
				"id", "", graphql.MustNewNonNullOfType(graphql.ID()), graphql.DefaultValueOf("0"))
			Expect(graphql.IsRequiredArgument(&defaulted)).Should(BeFalse())

			nullable := graphql.MockArgument("id", "", graphql.ID(), graphql.NoDefaultValue())
			Expect(graphql.IsRequiredArgument(&nullable)).Should(BeFalse())

			// An explicit null default satisfies the argument as well.
			nullDefault := graphql.MockArgument(
				"id", "", graphql.MustNewNonNullOfType(graphql.ID()), graphql.NullDefaultValue())
			Expect(graphql.IsRequiredArgument(&nullDefault)).Should(BeFalse())
		})
	})

	Describe("ArgumentList", func() {
		It("looks arguments up by name", func() {
			args := graphql.ArgumentList{
				graphql.MockArgument("first", "", graphql.Int(), graphql.NoDefaultValue()),
				graphql.MockArgument("after", "", graphql.String(), graphql.NoDefaultValue()),
			}

			Expect(args.Lookup("after")).Should(BeIdenticalTo(&args[1]))
			Expect(args.Lookup("before")).Should(BeNil())
		})

		It("finds nothing in an empty list", func() {
			var args graphql.ArgumentList
			Expect(args.Lookup("anything")).Should(BeNil())
		})
	})

	Describe("resolvers", func() {
		It("carries the definition's resolver on ordinary fields", func() {
			resolver := graphql.FieldResolverFunc(
				func(ctx context.Context, source interface{}) (interface{}, error) {
					return "world", nil
				})

			object, err := conv.FromObject(&graphql.TypeDefinition{
				Name: "Query",
				Fields: []graphql.FieldDefinition{
					{
						Name:     "hello",
						Type:     graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
						Resolver: resolver,
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			hello := object.Fields()["hello"]
			Expect(hello.Subscriber()).Should(BeNil())
			Expect(hello.Resolver()).ShouldNot(BeNil())

			Expect(hello.Resolver().Resolve(context.Background(), nil)).Should(Equal("world"))
		})

		It("splits subscription fields into subscriber and identity resolver", func() {
			subscriber := graphql.FieldResolverFunc(
				func(ctx context.Context, source interface{}) (interface{}, error) {
					return "a stream", nil
				})

			object, err := conv.FromObject(&graphql.TypeDefinition{
				Name: "Subscription",
				Fields: []graphql.FieldDefinition{
					{
						Name:           "onMessage",
						Type:           graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
						IsSubscription: true,
						Resolver:       subscriber,
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			onMessage := object.Fields()["onMessage"]
			Expect(onMessage.Subscriber()).ShouldNot(BeNil())
			Expect(onMessage.Subscriber().Resolve(context.Background(), nil)).Should(Equal("a stream"))

			// Each streamed event passes through the field as its own value.
			Expect(onMessage.Resolver()).ShouldNot(BeNil())
			event := map[string]interface{}{"text": "hi"}
			Expect(onMessage.Resolver().Resolve(context.Background(), event)).Should(Equal(event))
		})
	})

	It("rejects a field definition without name", func() {
		_, err := conv.FromObject(&graphql.TypeDefinition{
			Name: "Broken",
			Fields: []graphql.FieldDefinition{
				{Type: graphql.ScalarRef(graphql.StringScalar)},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInternal))
	})

	It("rejects an argument definition without name", func() {
		_, err := conv.FromObject(&graphql.TypeDefinition{
			Name: "Broken",
			Fields: []graphql.FieldDefinition{
				{
					Name: "field",
					Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
					Arguments: []graphql.ArgumentDefinition{
						{Type: graphql.ScalarRef(graphql.StringScalar)},
					},
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInternal))
	})
})
