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

// Names of the types that describe a schema
const (
	SchemaTypeName            = "__Schema"
	TypeTypeName              = "__Type"
	TypeKindTypeName          = "__TypeKind"
	FieldTypeName             = "__Field"
	InputValueTypeName        = "__InputValue"
	EnumValueTypeName         = "__EnumValue"
	DirectiveTypeName         = "__Directive"
	DirectiveLocationTypeName = "__DirectiveLocation"
)

var typeKindDescriptions = map[TypeKind]string{
	TypeKindScalar:      "Indicates this type is a scalar.",
	TypeKindObject:      "Indicates this type is an object. `fields` and `interfaces` are valid fields.",
	TypeKindInterface:   "Indicates this type is an interface. `fields` and `possibleTypes` are valid fields.",
	TypeKindUnion:       "Indicates this type is a union. `possibleTypes` is a valid field.",
	TypeKindEnum:        "Indicates this type is an enum. `enumValues` is a valid field.",
	TypeKindInputObject: "Indicates this type is an input object. `inputFields` is a valid field.",
	TypeKindList:        "Indicates this type is a list. `ofType` is a valid field.",
	TypeKindNonNull:     "Indicates this type is a non-null. `ofType` is a valid field.",
}

// addIntrospectionTypes registers the types that describe a schema. __Type refers to itself
// through ofType and to __Field, which refers back to __Type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema-Introspection
func addIntrospectionTypes(builder *SchemaBuilder) {
	var (
		schemaType = NewObjectType(SchemaTypeName,
			"A GraphQL Schema defines the capabilities of a GraphQL server. It exposes all available "+
				"types and directives on the server, as well as the entry points for query, mutation, "+
				"and subscription operations.")
		typeType = NewObjectType(TypeTypeName,
			"The fundamental unit of any GraphQL Schema is the type. There are many kinds of types in "+
				"GraphQL as represented by the `__TypeKind` enum.\n\nDepending on the kind of a type, "+
				"certain fields describe information about that type. Scalar types provide no "+
				"information beyond a name and description, while Enum types provide their values. "+
				"Object and Interface types provide the fields they describe. Abstract types, Union and "+
				"Interface, provide the Object types possible at runtime. List and NonNull types compose "+
				"other types.")
		typeKindType = NewEnumType(TypeKindTypeName,
			"An enum describing what kind of type a given `__Type` is.")
		fieldType = NewObjectType(FieldTypeName,
			"Object and Interface types are described by a list of Fields, each of which has a name, "+
				"potentially a list of arguments, and a return type.")
		inputValueType = NewObjectType(InputValueTypeName,
			"Arguments provided to Fields or Directives and the input fields of an InputObject are "+
				"represented as Input Values which describe their type and optionally a default value.")
		enumValueType = NewObjectType(EnumValueTypeName,
			"One possible value for a given Enum. Enum values are unique values, not a placeholder "+
				"for a string or numeric value. However an Enum value is returned in a JSON response as "+
				"a string.")
		directiveType = NewObjectType(DirectiveTypeName,
			"A Directive provides a way to describe alternate runtime execution and type validation "+
				"behavior in a GraphQL document.\n\nIn some cases, you need to provide options to alter "+
				"GraphQL's execution behavior in ways field arguments will not suffice, such as "+
				"conditionally including or skipping a field. Directives provide this by describing "+
				"additional information to the executor.")
		directiveLocationType = NewEnumType(DirectiveLocationTypeName,
			"A Directive can be adjacent to many parts of the GraphQL language, a "+
				"__DirectiveLocation describes one such possible adjacencies.")
	)

	builder.MustAddType(SchemaTypeName, schemaType)
	builder.MustAddType(TypeTypeName, typeType)
	builder.MustAddType(TypeKindTypeName, typeKindType)
	builder.MustAddType(FieldTypeName, fieldType)
	builder.MustAddType(InputValueTypeName, inputValueType)
	builder.MustAddType(EnumValueTypeName, enumValueType)
	builder.MustAddType(DirectiveTypeName, directiveType)
	builder.MustAddType(DirectiveLocationTypeName, directiveLocationType)

	var (
		stringType     = builder.LookupType(StringTypeName)
		nonNullString  = builder.NonNullOf(stringType)
		nonNullBoolean = builder.NonNullOf(builder.LookupType(BooleanTypeName))
		nonNullType    = builder.NonNullOf(typeType)
		typeList       = builder.NonNullOf(builder.ListOf(nonNullType))

		field = func(name string, description string, t *Type, args ...*InputValue) *Field {
			return NewField(FieldConfig{
				Name:        name,
				Description: description,
				Type:        t,
				Args:        args,
			})
		}
		includeDeprecatedArg = func() *InputValue {
			return NewInputValue(InputValueConfig{
				Name:         "includeDeprecated",
				Type:         builder.LookupType(BooleanTypeName),
				DefaultValue: "false",
			})
		}
	)

	for _, kind := range typeKinds {
		typeKindType.AddEnumValues(NewEnumValue(EnumValueConfig{
			Name:        string(kind),
			Description: typeKindDescriptions[kind],
		}))
	}

	for _, entry := range directiveLocations {
		directiveLocationType.AddEnumValues(NewEnumValue(EnumValueConfig{
			Name:        string(entry.location),
			Description: entry.description,
		}))
	}

	schemaType.AddFields(
		field("types", "A list of all types supported by this server.", typeList),
		field("queryType", "The type that query operations will be rooted at.", nonNullType),
		field("mutationType", "If this server supports mutation, the type that mutation operations will be rooted at.", typeType),
		field("subscriptionType", "If this server support subscription, the type that subscription operations will be rooted at.", typeType),
		field("directives", "A list of all directives supported by this server.",
			builder.NonNullOf(builder.ListOf(builder.NonNullOf(directiveType)))),
	)

	typeType.AddFields(
		field("kind", "", builder.NonNullOf(typeKindType)),
		field("name", "", stringType),
		field("description", "", stringType),
		field("fields", "", builder.ListOf(builder.NonNullOf(fieldType)), includeDeprecatedArg()),
		field("interfaces", "", builder.ListOf(nonNullType)),
		field("possibleTypes", "", builder.ListOf(nonNullType)),
		field("enumValues", "", builder.ListOf(builder.NonNullOf(enumValueType)), includeDeprecatedArg()),
		field("inputFields", "", builder.ListOf(builder.NonNullOf(inputValueType))),
		field("ofType", "", typeType),
	)

	inputValueList := builder.NonNullOf(builder.ListOf(builder.NonNullOf(inputValueType)))

	fieldType.AddFields(
		field("name", "", nonNullString),
		field("description", "", stringType),
		field("args", "", inputValueList),
		field("type", "", nonNullType),
		field("isDeprecated", "", nonNullBoolean),
		field("deprecationReason", "", stringType),
	)

	inputValueType.AddFields(
		field("name", "", nonNullString),
		field("description", "", stringType),
		field("type", "", nonNullType),
		field("defaultValue", "A GraphQL-formatted string representing the default value for this input value.", stringType),
	)

	enumValueType.AddFields(
		field("name", "", nonNullString),
		field("description", "", stringType),
		field("isDeprecated", "", nonNullBoolean),
		field("deprecationReason", "", stringType),
	)

	directiveType.AddFields(
		field("name", "", nonNullString),
		field("description", "", stringType),
		field("locations", "", builder.NonNullOf(builder.ListOf(builder.NonNullOf(directiveLocationType)))),
		field("args", "", inputValueList),
	)
}
