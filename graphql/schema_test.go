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
	"github.com/calyxql/calyx/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Type System: Schema", func() {
	newQueryDef := func() *graphql.TypeDefinition {
		return &graphql.TypeDefinition{
			Name: "Query",
			Fields: []graphql.FieldDefinition{
				{
					Name: "hello",
					Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
				},
			},
		}
	}

	Describe("Root operation types", func() {
		It("requires a query root", func() {
			_, err := graphql.NewSchema(nil)
			Expect(err).Should(MatchError("Must provide root query type for Schema."))

			_, err = graphql.NewSchema(&graphql.SchemaConfig{})
			Expect(err).Should(MatchError("Must provide root query type for Schema."))

			Expect(func() {
				graphql.MustNewSchema(&graphql.SchemaConfig{})
			}).Should(Panic())
		})

		It("defines a query root", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
			})

			query := schema.Query()
			Expect(query).ShouldNot(BeNil())
			Expect(query.Name()).Should(Equal("Query"))
			Expect(schema.TypeMap().LookupType("Query")).Should(BeIdenticalTo(query))

			Expect(schema.Mutation()).Should(BeNil())
			Expect(schema.Subscription()).Should(BeNil())
		})

		It("defines mutation and subscription roots", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
				Mutation: &graphql.TypeDefinition{
					Name: "Mutation",
					Fields: []graphql.FieldDefinition{
						{
							Name: "setHello",
							Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
						},
					},
				},
				Subscription: &graphql.TypeDefinition{
					Name: "Subscription",
					Fields: []graphql.FieldDefinition{
						{
							Name:           "helloChanged",
							Type:           graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
							IsSubscription: true,
						},
					},
				},
			})

			Expect(schema.Mutation()).ShouldNot(BeNil())
			Expect(schema.Mutation().Name()).Should(Equal("Mutation"))
			Expect(schema.Subscription()).ShouldNot(BeNil())
			Expect(schema.Subscription().Name()).Should(Equal("Subscription"))

			Expect(schema.TypeMap().LookupType("Mutation")).Should(BeIdenticalTo(schema.Mutation()))
			Expect(schema.TypeMap().LookupType("Subscription")).Should(BeIdenticalTo(schema.Subscription()))
		})
	})

	// graphql-js/src/type/__tests__/schema-test.js@2fcd55e
	Describe("Type Map", func() {
		It("includes interface possible types in the type map", func() {
			ifaceDef := &graphql.TypeDefinition{
				Name: "SomeInterface",
				Kind: graphql.TypeKindInterface,
			}
			subTypeDef := &graphql.TypeDefinition{
				Name:       "SomeSubType",
				Interfaces: []*graphql.TypeDefinition{ifaceDef},
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name:       "Query",
					Interfaces: []*graphql.TypeDefinition{ifaceDef},
				},
				AdditionalTypes: []graphql.TypeRef{
					graphql.ObjectRef(subTypeDef),
				},
			})

			iface, ok := schema.TypeMap().LookupType("SomeInterface").(*graphql.Interface)
			Expect(ok).Should(BeTrue())
			subType, ok := schema.TypeMap().LookupType("SomeSubType").(*graphql.Object)
			Expect(ok).Should(BeTrue())

			Expect(schema.PossibleTypes(iface)).Should(ConsistOf(schema.Query(), subType))
			Expect(schema.IsPossibleType(iface, subType)).Should(BeTrue())
		})

		It("includes nested input objects in the map", func() {
			nestedDef := &graphql.TypeDefinition{
				Name: "NestedInputObject",
				Kind: graphql.TypeKindInput,
			}
			someInputDef := &graphql.TypeDefinition{
				Name: "SomeInputObject",
				Kind: graphql.TypeKindInput,
				Fields: []graphql.FieldDefinition{
					{
						Name: "nested",
						Type: graphql.OptionalOf(graphql.InputRef(nestedDef)),
					},
				},
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name: "Query",
					Fields: []graphql.FieldDefinition{
						{
							Name: "something",
							Type: graphql.OptionalOf(graphql.ScalarRef(graphql.StringScalar)),
							Arguments: []graphql.ArgumentDefinition{
								{
									Name: "input",
									Type: graphql.OptionalOf(graphql.InputRef(someInputDef)),
								},
							},
						},
					},
				},
			})

			Expect(schema.TypeMap().LookupType("SomeInputObject")).ShouldNot(BeNil())
			Expect(schema.TypeMap().LookupType("NestedInputObject")).ShouldNot(BeNil())
		})

		It("includes input types only used in directives", func() {
			fooDef := &graphql.TypeDefinition{
				Name: "Foo",
				Kind: graphql.TypeKindInput,
			}
			barDef := &graphql.TypeDefinition{
				Name: "Bar",
				Kind: graphql.TypeKindInput,
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
				Directives: []*graphql.DirectiveDefinition{
					{
						Name: "dir",
						Locations: []graphql.DirectiveLocation{
							graphql.DirectiveLocationObject,
						},
						Arguments: []graphql.ArgumentDefinition{
							{
								Name: "arg",
								Type: graphql.OptionalOf(graphql.InputRef(fooDef)),
							},
							{
								Name: "argList",
								Type: graphql.OptionalOf(graphql.ListOf(graphql.OptionalOf(graphql.InputRef(barDef)))),
							},
						},
					},
				},
			})

			Expect(schema.TypeMap().LookupType("Foo")).ShouldNot(BeNil())
			Expect(schema.TypeMap().LookupType("Bar")).ShouldNot(BeNil())
		})
	})

	Describe("Type lookup", func() {
		It("resolves built-in scalar names without them entering the map", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
			})

			Expect(schema.Type("Int")).Should(BeIdenticalTo(graphql.Int()))
			Expect(schema.Type("Float")).Should(BeIdenticalTo(graphql.Float()))
			Expect(schema.Type("String")).Should(BeIdenticalTo(graphql.String()))
			Expect(schema.Type("Boolean")).Should(BeIdenticalTo(graphql.Boolean()))
			Expect(schema.Type("ID")).Should(BeIdenticalTo(graphql.ID()))

			_, found := schema.TypeMap().Lookup("String")
			Expect(found).Should(BeFalse())
		})

		It("returns nil for unknown names", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
			})
			Expect(schema.Type("Unknown")).Should(BeNil())
		})

		It("prefers schema types over the built-in fallback", func() {
			// A custom scalar may take over a built-in name.
			fakeStringDef := &graphql.ScalarDefinition{
				Name: "String",
				ResultCoercer: graphql.CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
					return nil, nil
				}),
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name: "Query",
					Fields: []graphql.FieldDefinition{
						{
							Name: "fake",
							Type: graphql.OptionalOf(graphql.ScalarRef(fakeStringDef)),
						},
					},
				},
			})

			fake := schema.Type("String")
			Expect(fake).ShouldNot(BeNil())
			Expect(fake).ShouldNot(BeIdenticalTo(graphql.String()))
			Expect(schema.TypeMap().LookupType("String")).Should(BeIdenticalTo(fake))
		})
	})

	Describe("A name maps to one type", func() {
		It("resolves same-named definitions of one kind to the first built type", func() {
			sameName1 := &graphql.TypeDefinition{Name: "SameName"}
			sameName2 := &graphql.TypeDefinition{Name: "SameName"}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name: "Query",
					Fields: []graphql.FieldDefinition{
						{
							Name: "a",
							Type: graphql.OptionalOf(graphql.ObjectRef(sameName1)),
						},
						{
							Name: "b",
							Type: graphql.OptionalOf(graphql.ObjectRef(sameName2)),
						},
					},
				},
			})

			fields := schema.Query().Fields()
			Expect(fields["a"].Type()).Should(BeIdenticalTo(fields["b"].Type()))

			entry, found := schema.TypeMap().Lookup("SameName")
			Expect(found).Should(BeTrue())
			Expect(entry.Definition()).Should(BeIdenticalTo(sameName1))
		})

		It("rejects a name already bound to a different kind of type", func() {
			thingObjectDef := &graphql.TypeDefinition{Name: "Thing"}
			thingEnumDef := &graphql.EnumDefinition{Name: "Thing"}

			config := &graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name: "Query",
					Fields: []graphql.FieldDefinition{
						{
							Name: "a",
							Type: graphql.OptionalOf(graphql.ObjectRef(thingObjectDef)),
						},
						{
							Name: "b",
							Type: graphql.OptionalOf(graphql.EnumRef(thingEnumDef)),
						},
					},
				},
			}

			_, err := graphql.NewSchema(config)
			Expect(err).Should(HaveOccurred())
			Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindWrongKindForBuilder))

			Expect(func() {
				graphql.MustNewSchema(config)
			}).Should(Panic())
		})
	})

	Describe("Standard Directives", func() {
		It("includes standard directives by default", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
			})
			for _, directive := range graphql.StandardDirectives() {
				Expect(schema.Directives()).Should(ContainElement(directive))
			}
			Expect(schema.Directive("skip")).ShouldNot(BeNil())
			Expect(schema.Directive("include")).ShouldNot(BeNil())
			Expect(schema.Directive("deprecated")).ShouldNot(BeNil())
		})

		It("appends standard directives after custom ones", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
				Directives: []*graphql.DirectiveDefinition{
					{
						Name: "auth",
						Locations: []graphql.DirectiveLocation{
							graphql.DirectiveLocationField,
						},
					},
				},
			})

			directives := schema.Directives()
			Expect(directives).Should(HaveLen(1 + len(graphql.StandardDirectives())))
			Expect(directives[0].Name()).Should(Equal("auth"))
			Expect(schema.Directive("auth")).Should(BeIdenticalTo(directives[0]))
		})

		It("returns nil for unknown directive names", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: newQueryDef(),
			})
			Expect(schema.Directive("unknown")).Should(BeNil())
		})

		Context("when ExcludeStandardDirectives is set", func() {
			It("does not include standard directives", func() {
				schema := graphql.MustNewSchema(&graphql.SchemaConfig{
					Query:                     newQueryDef(),
					ExcludeStandardDirectives: true,
				})
				Expect(schema.Directives()).Should(BeEmpty())
				Expect(schema.Directive("skip")).Should(BeNil())
			})

			It("keeps the provided directives as the exact list", func() {
				schema := graphql.MustNewSchema(&graphql.SchemaConfig{
					Query:                     newQueryDef(),
					ExcludeStandardDirectives: true,
					Directives: []*graphql.DirectiveDefinition{
						{
							Name: "auth",
							Locations: []graphql.DirectiveLocation{
								graphql.DirectiveLocationField,
							},
						},
					},
				})
				Expect(schema.Directives()).Should(HaveLen(1))
				Expect(schema.Directives()[0].Name()).Should(Equal("auth"))
			})
		})
	})

	Describe("Sharing a TypeMap", func() {
		It("builds into a provided map and reuses its types", func() {
			episodeDef := &graphql.EnumDefinition{
				Name: "Episode",
				Values: []graphql.EnumValueDefinition{
					{Name: "NEWHOPE"},
					{Name: "EMPIRE"},
					{Name: "JEDI"},
				},
			}

			typeMap := graphql.NewTypeMap()
			conv := graphql.NewConverter(&graphql.ConverterConfig{TypeMap: typeMap})
			episode, err := conv.FromEnum(episodeDef)
			Expect(err).ShouldNot(HaveOccurred())

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: &graphql.TypeDefinition{
					Name: "Query",
					Fields: []graphql.FieldDefinition{
						{
							Name: "episode",
							Type: graphql.OptionalOf(graphql.EnumRef(episodeDef)),
						},
					},
				},
				TypeMap: typeMap,
			})

			Expect(schema.TypeMap()).Should(BeIdenticalTo(typeMap))
			Expect(schema.Type("Episode")).Should(BeIdenticalTo(episode))
		})
	})
})
