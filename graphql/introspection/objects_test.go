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

package introspection_test

import (
	"context"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("introspection objects", func() {
	var (
		ctx   context.Context
		query *service.Object
	)

	// field resolves fieldName on object with the given arguments.
	field := func(object interface{}, fieldName string, args map[string]interface{}) interface{} {
		Expect(object).Should(BeAssignableToTypeOf(&service.Object{}))
		params := service.FieldParams{}
		if args != nil {
			params.Arguments = response.MustValueOf(args)
		}
		value, err := future.BlockOn(object.(*service.Object).Resolve(ctx, fieldName, params))
		Expect(err).ShouldNot(HaveOccurred())
		return value
	}

	// names resolves "name" of every object in list.
	names := func(list interface{}) []interface{} {
		items := list.([]interface{})
		result := make([]interface{}, len(items))
		for i, item := range items {
			result[i] = field(item, "name", nil)
		}
		return result
	}

	BeforeEach(func() {
		ctx = context.Background()

		builder := introspection.MustNewSchemaBuilder(introspection.SchemaBuilderConfig{
			Logger: service.NopLogger{},
		})
		nonNullID := builder.NonNullOf(builder.LookupType(introspection.IDTypeName))

		node := introspection.NewInterfaceType("Node", "Node interface for Relay support")
		node.AddFields(
			introspection.NewField(introspection.FieldConfig{Name: "id", Type: nonNullID}),
			introspection.NewField(introspection.FieldConfig{
				Name:              "legacyId",
				Type:              nonNullID,
				DeprecationReason: introspection.Deprecated("Use id instead"),
			}),
		)
		builder.MustAddType("Node", node)

		taskState := introspection.NewEnumType("TaskState", "")
		taskState.AddEnumValues(
			introspection.NewEnumValue(introspection.EnumValueConfig{Name: "New"}),
			introspection.NewEnumValue(introspection.EnumValueConfig{
				Name:              "Unassigned",
				DeprecationReason: introspection.Deprecated("Need to deprecate an enum value"),
			}),
		)
		builder.MustAddType("TaskState", taskState)

		queryType := introspection.NewObjectType("Query", "Root Query type")
		queryType.AddFields(introspection.NewField(introspection.FieldConfig{
			Name: "node",
			Args: []*introspection.InputValue{
				introspection.NewInputValue(introspection.InputValueConfig{Name: "id", Type: nonNullID}),
			},
			Type: node,
		}))
		builder.MustAddType("Query", queryType)
		builder.SetQueryType(queryType)

		schema, err := builder.Build()
		Expect(err).ShouldNot(HaveOccurred())

		query = service.MustNewObject(service.ObjectConfig{
			TypeNames: []string{"Query"},
			Resolvers: introspection.MetaResolvers(schema),
			Logger:    service.NopLogger{},
		})
	})

	It("resolves __schema", func() {
		schema := field(query, "__schema", nil)
		Expect(field(schema, "__typename", nil)).Should(Equal(introspection.SchemaTypeName))

		queryType := field(schema, "queryType", nil)
		Expect(field(queryType, "name", nil)).Should(Equal("Query"))
		Expect(field(queryType, "description", nil)).Should(Equal("Root Query type"))
		Expect(field(queryType, "kind", nil)).Should(Equal(response.NewEnum("OBJECT")))

		Expect(field(schema, "mutationType", nil)).Should(BeNil())
		Expect(field(schema, "subscriptionType", nil)).Should(BeNil())

		typeNames := names(field(schema, "types", nil))
		Expect(typeNames).Should(ContainElement("Node"))
		Expect(typeNames).Should(ContainElement(introspection.TypeTypeName))
	})

	It("resolves __type by name", func() {
		node := field(query, "__type", map[string]interface{}{"name": "Node"})
		Expect(field(node, "kind", nil)).Should(Equal(response.NewEnum("INTERFACE")))
		Expect(names(field(node, "fields", nil))).Should(Equal([]interface{}{"id"}))
		Expect(names(field(node, "fields", map[string]interface{}{"includeDeprecated": true}))).
			Should(Equal([]interface{}{"id", "legacyId"}))
		Expect(field(node, "enumValues", nil)).Should(BeNil())
		Expect(field(node, "ofType", nil)).Should(BeNil())

		Expect(field(query, "__type", map[string]interface{}{"name": "Unknown"})).Should(BeNil())
	})

	It("fails __type without a name", func() {
		_, err := future.BlockOn(query.Resolve(ctx, "__type", service.FieldParams{}))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Argument "name" is required but not provided.`))
	})

	It("resolves fields and wrapped types", func() {
		node := field(query, "__type", map[string]interface{}{"name": "Node"})
		fields := field(node, "fields", map[string]interface{}{"includeDeprecated": true}).([]interface{})

		legacyID := fields[1]
		Expect(field(legacyID, "isDeprecated", nil)).Should(Equal(true))
		Expect(field(legacyID, "deprecationReason", nil)).Should(Equal("Use id instead"))
		Expect(field(legacyID, "args", nil)).Should(BeEmpty())

		nonNullID := field(legacyID, "type", nil)
		Expect(field(nonNullID, "kind", nil)).Should(Equal(response.NewEnum("NON_NULL")))
		Expect(field(nonNullID, "name", nil)).Should(BeNil())

		id := field(nonNullID, "ofType", nil)
		Expect(field(id, "kind", nil)).Should(Equal(response.NewEnum("SCALAR")))
		Expect(field(id, "name", nil)).Should(Equal("ID"))
	})

	It("resolves arguments", func() {
		queryType := field(field(query, "__schema", nil), "queryType", nil)
		nodeField := field(queryType, "fields", nil).([]interface{})[0]

		args := field(nodeField, "args", nil).([]interface{})
		Expect(args).Should(HaveLen(1))
		Expect(field(args[0], "name", nil)).Should(Equal("id"))
		Expect(field(args[0], "defaultValue", nil)).Should(BeNil())
		Expect(field(field(args[0], "type", nil), "kind", nil)).Should(Equal(response.NewEnum("NON_NULL")))
	})

	It("resolves enum values", func() {
		taskState := field(query, "__type", map[string]interface{}{"name": "TaskState"})
		Expect(names(field(taskState, "enumValues", nil))).Should(Equal([]interface{}{"New"}))

		values := field(taskState, "enumValues", map[string]interface{}{"includeDeprecated": true}).([]interface{})
		Expect(values).Should(HaveLen(2))
		Expect(field(values[1], "isDeprecated", nil)).Should(Equal(true))
		Expect(field(values[1], "deprecationReason", nil)).Should(Equal("Need to deprecate an enum value"))
		Expect(field(values[0], "deprecationReason", nil)).Should(BeNil())
	})

	It("resolves directives", func() {
		directives := field(field(query, "__schema", nil), "directives", nil).([]interface{})
		Expect(names(directives)).Should(Equal([]interface{}{"skip", "include", "deprecated"}))

		Expect(field(directives[0], "locations", nil)).Should(Equal([]interface{}{
			response.NewEnum("FIELD"),
			response.NewEnum("FRAGMENT_SPREAD"),
			response.NewEnum("INLINE_FRAGMENT"),
		}))
		Expect(field(directives[2], "description", nil)).ShouldNot(BeNil())
	})
})
