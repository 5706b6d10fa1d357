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

var _ = Describe("Directive", func() {
	It("builds a directive from a definition", func() {
		directive, err := graphql.NewDirective(&graphql.DirectiveDefinition{
			Name:        "length",
			Description: "Constrains the length of a string field.",
			Locations: []graphql.DirectiveLocation{
				graphql.DirectiveLocationFieldDefinition,
			},
			Arguments: []graphql.ArgumentDefinition{
				{Name: "max", Type: graphql.ScalarRef(graphql.IntScalar)},
				{
					Name:    "min",
					Type:    graphql.OptionalOf(graphql.ScalarRef(graphql.IntScalar)),
					Default: graphql.DefaultValueOf(0),
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(directive.Name()).Should(Equal("length"))
		Expect(directive.Description()).Should(Equal("Constrains the length of a string field."))
		Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
			graphql.DirectiveLocationFieldDefinition,
		}))

		args := directive.Args()
		Expect(len(args)).Should(Equal(2))

		max := args.Lookup("max")
		Expect(max).ShouldNot(BeNil())
		Expect(max.Type()).Should(Equal(graphql.MustNewNonNullOfType(graphql.Int())))
		Expect(graphql.IsRequiredArgument(max)).Should(BeTrue())

		min := args.Lookup("min")
		Expect(min).ShouldNot(BeNil())
		Expect(min.Type()).Should(Equal(graphql.Int()))
		Expect(min.DefaultValue()).Should(Equal(0))
	})

	It("stringifies to @-notation", func() {
		directive, err := graphql.NewDirective(&graphql.DirectiveDefinition{
			Name: "auth",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fmt.Sprintf("%s", directive)).Should(Equal("@auth"))
		Expect(fmt.Sprintf("%v", directive)).Should(Equal("@auth"))
	})

	It("rejects creating directive without name", func() {
		_, err := graphql.NewDirective(&graphql.DirectiveDefinition{})
		Expect(err).Should(MatchError("Must provide name for Directive."))

		Expect(func() {
			graphql.MustNewDirective(&graphql.DirectiveDefinition{})
		}).Should(Panic())
	})

	It("rejects a nil definition", func() {
		_, err := graphql.NewDirective(nil)
		Expect(err).Should(MatchError("Must provide definition for Directive."))
	})

	It("shares argument types with the converter's build", func() {
		conv := graphql.NewConverter(nil)

		episodeDef := &graphql.EnumDefinition{
			Name:   "Episode",
			Values: []graphql.EnumValueDefinition{{Name: "NEWHOPE"}},
		}

		directive, err := conv.FromDirective(&graphql.DirectiveDefinition{
			Name: "appearsIn",
			Locations: []graphql.DirectiveLocation{
				graphql.DirectiveLocationFieldDefinition,
			},
			Arguments: []graphql.ArgumentDefinition{
				{Name: "episode", Type: graphql.EnumRef(episodeDef)},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		// The argument type landed in the converter's map like any other reference.
		episode := conv.TypeMap().LookupType("Episode")
		Expect(episode).ShouldNot(BeNil())

		arg := directive.Args().Lookup("episode")
		Expect(arg.Type()).Should(Equal(graphql.MustNewNonNullOfType(episode)))
	})

	Describe("standard directives", func() {
		// graphql-js/src/type/__tests__/directive-test.js
		It("defines @skip", func() {
			skip := graphql.SkipDirective()
			Expect(skip.Name()).Should(Equal("skip"))
			Expect(skip.String()).Should(Equal("@skip"))
			Expect(skip.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
				graphql.DirectiveLocationFragmentSpread,
				graphql.DirectiveLocationInlineFragment,
			}))

			ifArg := skip.Args().Lookup("if")
			Expect(ifArg).ShouldNot(BeNil())
			Expect(ifArg.Type()).Should(Equal(graphql.MustNewNonNullOfType(graphql.Boolean())))
			Expect(graphql.IsRequiredArgument(ifArg)).Should(BeTrue())
		})

		It("defines @include", func() {
			include := graphql.IncludeDirective()
			Expect(include.Name()).Should(Equal("include"))
			Expect(include.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
				graphql.DirectiveLocationFragmentSpread,
				graphql.DirectiveLocationInlineFragment,
			}))

			ifArg := include.Args().Lookup("if")
			Expect(ifArg).ShouldNot(BeNil())
			Expect(ifArg.Type()).Should(Equal(graphql.MustNewNonNullOfType(graphql.Boolean())))
		})

		It("defines @deprecated with a default reason", func() {
			deprecated := graphql.DeprecatedDirective()
			Expect(deprecated.Name()).Should(Equal("deprecated"))
			Expect(deprecated.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationFieldDefinition,
				graphql.DirectiveLocationEnumValue,
			}))

			reason := deprecated.Args().Lookup("reason")
			Expect(reason).ShouldNot(BeNil())
			Expect(reason.Type()).Should(Equal(graphql.String()))
			Expect(reason.HasDefaultValue()).Should(BeTrue())
			Expect(reason.DefaultValue()).Should(Equal(graphql.DefaultDeprecationReason))
			Expect(graphql.IsRequiredArgument(reason)).Should(BeFalse())
		})

		It("lists the three standard directives in order", func() {
			Expect(graphql.StandardDirectives()).Should(Equal([]*graphql.Directive{
				graphql.SkipDirective(),
				graphql.IncludeDirective(),
				graphql.DeprecatedDirective(),
			}))
		})
	})
})
