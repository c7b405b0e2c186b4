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
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/service"
	"github.com/botobag/graphqlservice/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// resolve blocks on f and fails the test on error.
func resolve(f future.Future) interface{} {
	value, err := future.BlockOn(f)
	Expect(err).ShouldNot(HaveOccurred())
	return value
}

var _ = Describe("Type", func() {
	var (
		ctx    context.Context
		params service.FieldParams
	)

	BeforeEach(func() {
		ctx = context.Background()
		params = service.FieldParams{}
	})

	It("creates named types of each kind", func() {
		Expect(introspection.NewScalarType("Date", "").Kind()).Should(Equal(introspection.TypeKindScalar))
		Expect(introspection.NewObjectType("Task", "").Kind()).Should(Equal(introspection.TypeKindObject))
		Expect(introspection.NewInterfaceType("Node", "").Kind()).Should(Equal(introspection.TypeKindInterface))
		Expect(introspection.NewUnionType("UnionType", "").Kind()).Should(Equal(introspection.TypeKindUnion))
		Expect(introspection.NewEnumType("TaskState", "").Kind()).Should(Equal(introspection.TypeKindEnum))
		Expect(introspection.NewInputObjectType("CompleteTaskInput", "").Kind()).Should(Equal(introspection.TypeKindInputObject))

		t := introspection.NewObjectType("Task", "A task")
		Expect(t.Name()).Should(Equal("Task"))
		Expect(t.Description()).Should(Equal("A task"))
		Expect(t.OfType()).Should(BeNil())
		Expect(t.String()).Should(Equal("Task"))
	})

	It("resolves name and description", func() {
		t := introspection.NewObjectType("Task", "A task")
		Expect(resolve(t.GetKind(ctx, params))).Should(Equal(introspection.TypeKindObject))
		Expect(resolve(t.GetName(ctx, params))).Should(Equal("Task"))
		Expect(resolve(t.GetDescription(ctx, params))).Should(Equal("A task"))

		Expect(resolve(introspection.NewObjectType("Task", "").GetDescription(ctx, params))).Should(BeNil())
	})

	It("resolves fields only for object and interface types", func() {
		scalar := introspection.NewScalarType("Date", "")
		Expect(resolve(scalar.GetFields(ctx, params, nil))).Should(BeNil())
		Expect(resolve(scalar.GetInterfaces(ctx, params))).Should(BeNil())
		Expect(resolve(scalar.GetPossibleTypes(ctx, params))).Should(BeNil())
		Expect(resolve(scalar.GetEnumValues(ctx, params, nil))).Should(BeNil())
		Expect(resolve(scalar.GetInputFields(ctx, params))).Should(BeNil())
		Expect(resolve(scalar.GetOfType(ctx, params))).Should(BeNil())

		object := introspection.NewObjectType("Task", "")
		Expect(resolve(object.GetFields(ctx, params, nil))).Should(BeEmpty())
		Expect(resolve(object.GetInterfaces(ctx, params))).Should(BeEmpty())
	})

	It("panics when adding members that the kind doesn't support", func() {
		scalar := introspection.NewScalarType("Date", "")
		Expect(func() {
			scalar.AddFields(introspection.NewField(introspection.FieldConfig{Name: "year"}))
		}).Should(testutil.PanicWithGraphQLError(
			testutil.MessageEqual(`type "Date" of kind SCALAR doesn't support AddFields`),
			testutil.KindIs(graphql.ErrKindInternal),
			testutil.OpIs("introspection.Type.AddFields"),
		))

		union := introspection.NewUnionType("UnionType", "")
		Expect(func() {
			union.AddInterfaces(introspection.NewInterfaceType("Node", ""))
		}).Should(testutil.PanicWithGraphQLError(testutil.MessageContainSubstring("doesn't support AddInterfaces")))
	})

	It("skips missing members of a union", func() {
		task := introspection.NewObjectType("Task", "")
		folder := introspection.NewObjectType("Folder", "")
		union := introspection.NewUnionType("UnionType", "")
		union.AddPossibleTypes(task, nil, folder)

		Expect(union.PossibleTypes()).Should(Equal([]*introspection.Type{task, folder}))
		Expect(resolve(union.GetPossibleTypes(ctx, params))).Should(Equal([]*introspection.Type{task, folder}))
	})

	Describe("deprecation", func() {
		var (
			object   *introspection.Type
			enum     *introspection.Type
			id       *introspection.Field
			legacyID *introspection.Field
			name     *introspection.Field
		)

		BeforeEach(func() {
			id = introspection.NewField(introspection.FieldConfig{Name: "id"})
			legacyID = introspection.NewField(introspection.FieldConfig{
				Name:              "legacyId",
				DeprecationReason: introspection.Deprecated("Use id instead"),
			})
			name = introspection.NewField(introspection.FieldConfig{Name: "name"})

			object = introspection.NewObjectType("Node", "")
			object.AddFields(id, legacyID, name)

			enum = introspection.NewEnumType("TaskState", "")
			enum.AddEnumValues(
				introspection.NewEnumValue(introspection.EnumValueConfig{Name: "New"}),
				introspection.NewEnumValue(introspection.EnumValueConfig{
					Name:              "Started",
					DeprecationReason: introspection.Deprecated(""),
				}),
				introspection.NewEnumValue(introspection.EnumValueConfig{Name: "Complete"}),
			)
		})

		It("leaves out deprecated fields unless asked for", func() {
			includeDeprecated := true
			excludeDeprecated := false

			Expect(object.Fields(false)).Should(Equal([]*introspection.Field{id, name}))
			Expect(object.Fields(true)).Should(Equal([]*introspection.Field{id, legacyID, name}))
			Expect(resolve(object.GetFields(ctx, params, nil))).Should(Equal([]*introspection.Field{id, name}))
			Expect(resolve(object.GetFields(ctx, params, &excludeDeprecated))).Should(Equal([]*introspection.Field{id, name}))
			Expect(resolve(object.GetFields(ctx, params, &includeDeprecated))).Should(Equal([]*introspection.Field{id, legacyID, name}))
		})

		It("treats an empty reason as deprecated", func() {
			values := enum.EnumValues(false)
			Expect(values).Should(HaveLen(2))
			Expect(values[0].Name()).Should(Equal("New"))
			Expect(values[1].Name()).Should(Equal("Complete"))

			all := enum.EnumValues(true)
			Expect(all).Should(HaveLen(3))
			Expect(all[1].IsDeprecated()).Should(BeTrue())
			reason, deprecated := all[1].DeprecationReason()
			Expect(deprecated).Should(BeTrue())
			Expect(reason).Should(BeEmpty())
			Expect(resolve(all[1].GetDeprecationReason(ctx, params))).Should(Equal(""))
		})

		It("reports no reason for an active field", func() {
			Expect(id.IsDeprecated()).Should(BeFalse())
			Expect(resolve(id.GetIsDeprecated(ctx, params))).Should(Equal(false))
			Expect(resolve(id.GetDeprecationReason(ctx, params))).Should(BeNil())

			Expect(resolve(legacyID.GetIsDeprecated(ctx, params))).Should(Equal(true))
			Expect(resolve(legacyID.GetDeprecationReason(ctx, params))).Should(Equal("Use id instead"))
		})

		It("never hands out the stored slices", func() {
			fields := object.Fields(true)
			fields[0] = nil
			Expect(object.Fields(true)[0]).Should(Equal(id))
		})
	})

	Describe("InputValue", func() {
		It("resolves the default value only when there is one", func() {
			withDefault := introspection.NewInputValue(introspection.InputValueConfig{
				Name:         "includeDeprecated",
				DefaultValue: "false",
			})
			Expect(resolve(withDefault.GetDefaultValue(ctx, params))).Should(Equal("false"))

			withoutDefault := introspection.NewInputValue(introspection.InputValueConfig{Name: "name"})
			_, hasDefault := withoutDefault.DefaultValue()
			Expect(hasDefault).Should(BeFalse())
			Expect(resolve(withoutDefault.GetDefaultValue(ctx, params))).Should(BeNil())
		})
	})
})
