/**
 * Copyright (c) 2019, The Artemis Authors.
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

package introspection

// Names of the built-in scalar types
const (
	IntTypeName     = "Int"
	FloatTypeName   = "Float"
	StringTypeName  = "String"
	BooleanTypeName = "Boolean"
	IDTypeName      = "ID"
)

// addStandardTypes registers the built-in scalars and the directives every schema supports.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
func addStandardTypes(builder *SchemaBuilder) {
	builder.MustAddType(IntTypeName, NewScalarType(IntTypeName,
		"The `Int` scalar type represents non-fractional signed whole numeric values. Int can "+
			"represent values between -(2^31) and 2^31 - 1."))
	builder.MustAddType(FloatTypeName, NewScalarType(FloatTypeName,
		"The `Float` scalar type represents signed double-precision fractional values as specified "+
			"by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point)."))
	builder.MustAddType(StringTypeName, NewScalarType(StringTypeName,
		"The `String` scalar type represents textual data, represented as UTF-8 character "+
			"sequences. The String type is most often used by GraphQL to represent free-form "+
			"human-readable text."))
	builder.MustAddType(BooleanTypeName, NewScalarType(BooleanTypeName,
		"The `Boolean` scalar type represents `true` or `false`."))
	builder.MustAddType(IDTypeName, NewScalarType(IDTypeName,
		"The `ID` scalar type represents a unique identifier, often used to refetch an object or "+
			"as key for a cache. The ID type appears in a JSON response as a String; however, it is "+
			"not intended to be human-readable."))

	nonNullBoolean := builder.NonNullOf(builder.LookupType(BooleanTypeName))
	conditionalLocations := []string{
		string(DirectiveLocationField),
		string(DirectiveLocationFragmentSpread),
		string(DirectiveLocationInlineFragment),
	}

	builder.AddDirective(MustNewDirective(DirectiveConfig{
		Name:        "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations:   conditionalLocations,
		Args: []*InputValue{
			NewInputValue(InputValueConfig{
				Name:        "if",
				Description: "Skipped when true.",
				Type:        nonNullBoolean,
			}),
		},
	}))

	builder.AddDirective(MustNewDirective(DirectiveConfig{
		Name:        "include",
		Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations:   conditionalLocations,
		Args: []*InputValue{
			NewInputValue(InputValueConfig{
				Name:        "if",
				Description: "Included when true.",
				Type:        nonNullBoolean,
			}),
		},
	}))

	builder.AddDirective(MustNewDirective(DirectiveConfig{
		Name:        "deprecated",
		Description: "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []string{
			string(DirectiveLocationFieldDefinition),
			string(DirectiveLocationEnumValue),
		},
		Args: []*InputValue{
			NewInputValue(InputValueConfig{
				Name: "reason",
				Description: "Explains why this element was deprecated, usually also including a " +
					"suggestion for how to access supported similar data. Formatted in " +
					"[Markdown](https://daringfireball.net/projects/markdown/).",
				Type:         builder.LookupType(StringTypeName),
				DefaultValue: `"` + DefaultDeprecationReason + `"`,
			}),
		},
	}))
}
