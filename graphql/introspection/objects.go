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

import (
	"context"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
)

// The functions in this file expose the type graph as service.Object values so that the
// introspection fields (__schema, __type and the fields of __Type and friends) are resolved like any
// other field. Leaf values are strings, booleans and enum tokens (response.Value); absent values are
// nil; descriptors are wrapped in further Objects as they are resolved.

func newMetaObject(typeName string, resolvers service.ResolverMap) *service.Object {
	return service.MustNewObject(service.ObjectConfig{
		TypeNames: []string{typeName},
		Resolvers: resolvers,
		Trivial:   true,
	})
}

// MetaResolvers returns the resolvers of the "__schema" and "__type(name: String!)" fields that the
// query root type of schema answers in addition to its own fields.
func MetaResolvers(schema *Schema) service.ResolverMap {
	return service.ResolverMap{
		"__schema": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Ready(NewSchemaObject(schema))
		},
		"__type": func(ctx context.Context, params service.ResolverParams) future.Future {
			name, err := service.ArgumentString(params.Arguments, "name")
			if err != nil {
				return future.Err(err)
			}
			t, exists := schema.FindType(name)
			if !exists {
				return future.Ready(nil)
			}
			return future.Ready(NewTypeObject(t))
		},
	}
}

// NewSchemaObject returns the __Schema object of schema.
func NewSchemaObject(schema *Schema) *service.Object {
	return newMetaObject(SchemaTypeName, service.ResolverMap{
		"types": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(schema.GetTypes(ctx, params.FieldParams), typeObjects)
		},
		"queryType": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(schema.GetQueryType(ctx, params.FieldParams), typeObject)
		},
		"mutationType": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(schema.GetMutationType(ctx, params.FieldParams), typeObject)
		},
		"subscriptionType": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(schema.GetSubscriptionType(ctx, params.FieldParams), typeObject)
		},
		"directives": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(schema.GetDirectives(ctx, params.FieldParams), func(value interface{}) (interface{}, error) {
				directives := value.([]*Directive)
				result := make([]interface{}, len(directives))
				for i, directive := range directives {
					result[i] = NewDirectiveObject(directive)
				}
				return result, nil
			})
		},
	})
}

// NewTypeObject returns the __Type object of t.
func NewTypeObject(t *Type) *service.Object {
	return newMetaObject(TypeTypeName, service.ResolverMap{
		"kind": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(t.GetKind(ctx, params.FieldParams), func(value interface{}) (interface{}, error) {
				return response.NewEnum(string(value.(TypeKind))), nil
			})
		},
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return t.GetName(ctx, params.FieldParams)
		},
		"description": func(ctx context.Context, params service.ResolverParams) future.Future {
			return t.GetDescription(ctx, params.FieldParams)
		},
		"fields": func(ctx context.Context, params service.ResolverParams) future.Future {
			includeDeprecated, err := service.OptionalArgumentBool(params.Arguments, "includeDeprecated")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(t.GetFields(ctx, params.FieldParams, includeDeprecated), func(value interface{}) (interface{}, error) {
				if value == nil {
					return nil, nil
				}
				fields := value.([]*Field)
				result := make([]interface{}, len(fields))
				for i, field := range fields {
					result[i] = NewFieldObject(field)
				}
				return result, nil
			})
		},
		"interfaces": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(t.GetInterfaces(ctx, params.FieldParams), typeObjects)
		},
		"possibleTypes": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(t.GetPossibleTypes(ctx, params.FieldParams), typeObjects)
		},
		"enumValues": func(ctx context.Context, params service.ResolverParams) future.Future {
			includeDeprecated, err := service.OptionalArgumentBool(params.Arguments, "includeDeprecated")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(t.GetEnumValues(ctx, params.FieldParams, includeDeprecated), func(value interface{}) (interface{}, error) {
				if value == nil {
					return nil, nil
				}
				values := value.([]*EnumValue)
				result := make([]interface{}, len(values))
				for i, enumValue := range values {
					result[i] = NewEnumValueObject(enumValue)
				}
				return result, nil
			})
		},
		"inputFields": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(t.GetInputFields(ctx, params.FieldParams), inputValueObjects)
		},
		"ofType": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(t.GetOfType(ctx, params.FieldParams), typeObject)
		},
	})
}

// NewFieldObject returns the __Field object of field.
func NewFieldObject(field *Field) *service.Object {
	return newMetaObject(FieldTypeName, service.ResolverMap{
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return field.GetName(ctx, params.FieldParams)
		},
		"description": func(ctx context.Context, params service.ResolverParams) future.Future {
			return field.GetDescription(ctx, params.FieldParams)
		},
		"args": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(field.GetArgs(ctx, params.FieldParams), inputValueObjects)
		},
		"type": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(field.GetType(ctx, params.FieldParams), typeObject)
		},
		"isDeprecated": func(ctx context.Context, params service.ResolverParams) future.Future {
			return field.GetIsDeprecated(ctx, params.FieldParams)
		},
		"deprecationReason": func(ctx context.Context, params service.ResolverParams) future.Future {
			return field.GetDeprecationReason(ctx, params.FieldParams)
		},
	})
}

// NewInputValueObject returns the __InputValue object of value.
func NewInputValueObject(value *InputValue) *service.Object {
	return newMetaObject(InputValueTypeName, service.ResolverMap{
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetName(ctx, params.FieldParams)
		},
		"description": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetDescription(ctx, params.FieldParams)
		},
		"type": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(value.GetType(ctx, params.FieldParams), typeObject)
		},
		"defaultValue": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetDefaultValue(ctx, params.FieldParams)
		},
	})
}

// NewEnumValueObject returns the __EnumValue object of value.
func NewEnumValueObject(value *EnumValue) *service.Object {
	return newMetaObject(EnumValueTypeName, service.ResolverMap{
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetName(ctx, params.FieldParams)
		},
		"description": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetDescription(ctx, params.FieldParams)
		},
		"isDeprecated": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetIsDeprecated(ctx, params.FieldParams)
		},
		"deprecationReason": func(ctx context.Context, params service.ResolverParams) future.Future {
			return value.GetDeprecationReason(ctx, params.FieldParams)
		},
	})
}

// NewDirectiveObject returns the __Directive object of directive.
func NewDirectiveObject(directive *Directive) *service.Object {
	return newMetaObject(DirectiveTypeName, service.ResolverMap{
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return directive.GetName(ctx, params.FieldParams)
		},
		"description": func(ctx context.Context, params service.ResolverParams) future.Future {
			return directive.GetDescription(ctx, params.FieldParams)
		},
		"locations": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(directive.GetLocations(ctx, params.FieldParams), func(value interface{}) (interface{}, error) {
				locations := value.([]DirectiveLocation)
				result := make([]interface{}, len(locations))
				for i, location := range locations {
					result[i] = response.NewEnum(string(location))
				}
				return result, nil
			})
		},
		"args": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(directive.GetArgs(ctx, params.FieldParams), inputValueObjects)
		},
	})
}

// typeObject maps a resolved *Type (or nil) to its Object.
func typeObject(value interface{}) (interface{}, error) {
	t, _ := value.(*Type)
	if t == nil {
		return nil, nil
	}
	return NewTypeObject(t), nil
}

// typeObjects maps resolved []*Type (or nil) to a list of Objects.
func typeObjects(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	types := value.([]*Type)
	result := make([]interface{}, len(types))
	for i, t := range types {
		result[i] = NewTypeObject(t)
	}
	return result, nil
}

// inputValueObjects maps resolved []*InputValue (or nil) to a list of Objects.
func inputValueObjects(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	values := value.([]*InputValue)
	result := make([]interface{}, len(values))
	for i, inputValue := range values {
		result[i] = NewInputValueObject(inputValue)
	}
	return result, nil
}
